package river

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/riverview/internal/config"
	"github.com/Faultbox/riverview/internal/river/shaders"
)

func TestTerrainModelView(t *testing.T) {
	got := TerrainModelView(mgl32.Ident4()).Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	want := mgl32.Vec4{0.15, 0.3, 0.45, 1}
	if !got.ApproxEqual(want) {
		t.Errorf("terrain point = %v, want %v", got, want)
	}

	// The fixed scale is applied in object space, before the scene transform.
	scene := mgl32.Translate3D(0, 0, -3)
	got = TerrainModelView(scene).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want = mgl32.Vec4{0.15, 0, -3, 1}
	if !got.ApproxEqual(want) {
		t.Errorf("translated point = %v, want %v", got, want)
	}
}

func TestBlockSize(t *testing.T) {
	tests := []struct {
		height int
		want   int32
	}{
		{1024, 64},
		{1000, 62},
		{15, 0},
		{16, 1},
	}
	for _, tt := range tests {
		if got := BlockSize(tt.height); got != tt.want {
			t.Errorf("BlockSize(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	if m.Ka != 0.1 || m.Kd != 1 || m.Ks != 0.1 || m.Shininess != 1 {
		t.Errorf("coefficients = %+v", m)
	}
	if m.Color != (mgl32.Vec3{1, 1, 1}) || m.SpecularColor != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("colors = %v %v", m.Color, m.SpecularColor)
	}
}

func TestLoadSourcesFallsBackToEmbedded(t *testing.T) {
	assets := config.Default().Assets
	assets.Dir = t.TempDir()
	assets.VertexShader = "river.vert"
	assets.FragmentShader = "river.frag"

	vs, fs, err := LoadSources(assets)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if vs != shaders.RiverVertexShader || fs != shaders.RiverFragmentShader {
		t.Error("expected embedded sources")
	}
}

// Shader files that happen to sit in the asset directory are ignored
// unless the config names them.
func TestLoadSourcesDefaultsIgnoreAssetFiles(t *testing.T) {
	assets := config.Default().Assets
	assets.Dir = t.TempDir()
	for _, name := range []string{"river.vert", "river.frag"} {
		if err := os.WriteFile(filepath.Join(assets.Dir, name), []byte("#version 120"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	vs, fs, err := LoadSources(assets)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if vs != shaders.RiverVertexShader || fs != shaders.RiverFragmentShader {
		t.Error("default config should use the embedded shaders")
	}
}

func TestLoadSourcesPrefersFiles(t *testing.T) {
	assets := config.Default().Assets
	assets.Dir = t.TempDir()
	assets.VertexShader = "river.vert"
	assets.FragmentShader = "river.frag"
	if err := os.WriteFile(filepath.Join(assets.Dir, assets.FragmentShader), []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}

	vs, fs, err := LoadSources(assets)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if vs != shaders.RiverVertexShader {
		t.Error("vertex shader should fall back to embedded")
	}
	if fs != "custom" {
		t.Errorf("fragment shader = %q, want file contents", fs)
	}
}

func TestLoadSourcesReadError(t *testing.T) {
	assets := config.Default().Assets
	assets.Dir = t.TempDir()
	assets.VertexShader = "river.vert"
	// A directory where a file is expected is a read error, not a missing file.
	if err := os.Mkdir(filepath.Join(assets.Dir, assets.VertexShader), 0o755); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadSources(assets)
	if !errors.Is(err, ErrShaderSetup) {
		t.Errorf("err = %v, want ErrShaderSetup", err)
	}
}

func TestNewMissingAssets(t *testing.T) {
	assets := config.Default().Assets
	assets.Dir = t.TempDir()

	_, err := New(assets)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrShaderSetup) {
		t.Errorf("missing texture reported as shader failure: %v", err)
	}
}

// Every uniform Draw sets must be declared by the embedded shaders.
func TestEmbeddedShadersDeclareUniforms(t *testing.T) {
	river := shaders.RiverVertexShader + shaders.RiverFragmentShader
	names := []string{
		"uProjection", "uModelView", "uNormalMatrix",
		"uKa", "uKd", "uKs", "uColor", "uSpecularColor", "uShininess",
		"uBlocks", "uTerrainTextureWidth", "uTerrainTextureHeight", "uBlockSize",
		"uUseTransparency", "uUseEdgeTransparency", "uShowWater", "uShinyWater", "uTime",
	}
	for _, ts := range textureSpecs {
		names = append(names, ts.sampler)
	}
	for _, name := range names {
		if !strings.Contains(river, name) {
			t.Errorf("river shaders do not declare %s", name)
		}
	}

	axes := shaders.AxesVertexShader + shaders.AxesFragmentShader
	for _, name := range []string{"uProjection", "uModelView", "uColor"} {
		if !strings.Contains(axes, name) {
			t.Errorf("axes shaders do not declare %s", name)
		}
	}
}

func TestTextureUnits(t *testing.T) {
	if len(textureSpecs) != unitCount {
		t.Fatalf("texture specs = %d, want %d", len(textureSpecs), unitCount)
	}
	for i, ts := range textureSpecs {
		if ts.unit != i {
			t.Errorf("texture %d bound to unit %d", i, ts.unit)
		}
	}
}
