package river

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/riverview/internal/config"
)

func writeBMP(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0x80, 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeAssets(t *testing.T) config.AssetsConfig {
	t.Helper()
	assets := config.Default().Assets
	assets.Dir = t.TempDir()

	sizes := map[string]int{
		assets.TerrainTexture: 32,
		assets.RiverMask:      16,
		assets.WaterNormals:   8,
		assets.WaterBase:      8,
		assets.FlowMap:        4,
	}
	for name, size := range sizes {
		writeBMP(t, assets.Path(name), size, size)
	}

	obj := "v 0 0 0\nv 2 0 0\nv 0 2 4\nf 1 2 3\n"
	if err := os.WriteFile(assets.Path(assets.TerrainMesh), []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}
	return assets
}

func TestLoadSceneData(t *testing.T) {
	assets := writeAssets(t)

	data, err := loadSceneData(assets)
	if err != nil {
		t.Fatalf("loadSceneData: %v", err)
	}

	want := [unitCount]int{unitTerrain: 32, unitRiverMask: 16, unitWaterNormals: 8, unitWaterBase: 8, unitFlowMap: 4}
	for unit, size := range want {
		img := data.images[unit]
		if img == nil {
			t.Fatalf("unit %d not loaded", unit)
		}
		if img.Width != size || img.Height != size {
			t.Errorf("unit %d size = %dx%d, want %dx%d", unit, img.Width, img.Height, size, size)
		}
	}

	if data.mesh.TriangleCount() != 1 {
		t.Fatalf("triangles = %d", data.mesh.TriangleCount())
	}
	if got := data.mesh.Vertices[2].Position; got != (mgl32.Vec3{0, 1, 2}) {
		t.Errorf("scaled vertex = %v, want (0,1,2)", got)
	}
	if data.mesh.Bounds.Max != (mgl32.Vec3{1, 1, 2}) {
		t.Errorf("scaled bounds max = %v", data.mesh.Bounds.Max)
	}
}

func TestLoadSceneDataReportsEveryMissingFile(t *testing.T) {
	assets := writeAssets(t)
	for _, name := range []string{assets.FlowMap, assets.TerrainMesh} {
		if err := os.Remove(filepath.Join(assets.Dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	_, err := loadSceneData(assets)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range []string{assets.FlowMap, assets.TerrainMesh} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
}
