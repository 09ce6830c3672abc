package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 1 0
g ground
s off
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJQuad(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("triangles = %d, want 2", m.TriangleCount())
	}

	want := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 0}, {1, 0, 1}, {0, 0, 1}}
	for i, v := range m.Vertices {
		if v.Position != want[i] {
			t.Errorf("vertex %d position = %v, want %v", i, v.Position, want[i])
		}
		if v.Normal != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("vertex %d normal = %v", i, v.Normal)
		}
	}
	if m.Vertices[1].TexCoord != (mgl32.Vec2{1, 0}) {
		t.Errorf("uv = %v, want (1,0)", m.Vertices[1].TexCoord)
	}
	if m.Bounds.Min != (mgl32.Vec3{0, 0, 0}) || m.Bounds.Max != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("bounds = %+v", m.Bounds)
	}
	if c := m.Bounds.Center(); c != (mgl32.Vec3{0.5, 0, 0.5}) {
		t.Errorf("center = %v", c)
	}
}

func TestParseOBJFlatNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	for i, v := range m.Vertices {
		if !v.Normal.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestParseOBJReferenceForms(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0.25 0.75
vn 0 0 -1
f 1//1 2//1 3//1
f 1/1 2/1 3/1
f -3/-1/-1 -2/-1/-1 -1/-1/-1
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.TriangleCount() != 3 {
		t.Fatalf("triangles = %d, want 3", m.TriangleCount())
	}
	if m.Vertices[0].Normal != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("v//vn normal = %v", m.Vertices[0].Normal)
	}
	if m.Vertices[3].TexCoord != (mgl32.Vec2{0.25, 0.75}) {
		t.Errorf("v/vt uv = %v", m.Vertices[3].TexCoord)
	}
	// v/vt has no normal, so the face normal is used.
	if !m.Vertices[3].Normal.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
		t.Errorf("v/vt normal = %v", m.Vertices[3].Normal)
	}
	if m.Vertices[8].Position != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("negative index position = %v", m.Vertices[8].Position)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "# nothing\n", "no faces"},
		{"bad vertex", "v 1 x 0\n", "line 1"},
		{"short vertex", "v 1 2\n", "want 3 values"},
		{"out of range", "v 0 0 0\nf 1 2 3\n", "line 2"},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n", "at least 3"},
		{"unknown", "v 0 0 0\nbogus 1\n", "unknown statement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Errorf("triangles = %d", m.TriangleCount())
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestInterleave(t *testing.T) {
	data := Interleave([]Vertex{{
		Position: mgl32.Vec3{1, 2, 3},
		Normal:   mgl32.Vec3{4, 5, 6},
		TexCoord: mgl32.Vec2{7, 8},
	}})
	want := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	if len(data) != len(want) {
		t.Fatalf("len = %d, want %d", len(data), len(want))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}
