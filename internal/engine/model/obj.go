package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadOBJ reads an OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ reads positions, texture coordinates, normals and faces.
// Polygons are split into triangle fans. Faces without normals get the
// flat face normal. Grouping, material and free-form statements are
// skipped.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions []mgl32.Vec3
		uvs       []mgl32.Vec2
		normals   []mgl32.Vec3
	)

	mesh := &Mesh{Bounds: emptyBounds()}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture vertex: %w", lineNo, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})

		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNo, len(fields)-1)
			}
			corners := make([]Vertex, 0, len(fields)-1)
			hasNormals := true
			for _, ref := range fields[1:] {
				v, withNormal, err := resolve(ref, positions, uvs, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				hasNormals = hasNormals && withNormal
				corners = append(corners, v)
			}
			for i := 1; i+1 < len(corners); i++ {
				tri := [3]Vertex{corners[0], corners[i], corners[i+1]}
				if !hasNormals {
					n := faceNormal(tri[0].Position, tri[1].Position, tri[2].Position)
					tri[0].Normal, tri[1].Normal, tri[2].Normal = n, n, n
				}
				for _, v := range tri {
					mesh.Bounds.Extend(v.Position)
				}
				mesh.Vertices = append(mesh.Vertices, tri[:]...)
			}

		case "vp", "g", "o", "s", "mg", "usemtl", "mtllib", "l", "p",
			"cstype", "deg", "bmat", "step", "curv", "curv2", "surf",
			"parm", "trim", "hole", "scrv", "sp", "end", "con",
			"bevel", "c_interp", "d_interp", "lod", "shadow_obj", "trace_obj", "ctech", "stech":

		default:
			return nil, fmt.Errorf("line %d: unknown statement %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("no faces")
	}
	return mesh, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// resolve turns one "v", "v/vt", "v//vn" or "v/vt/vn" reference into a vertex.
func resolve(ref string, positions []mgl32.Vec3, uvs []mgl32.Vec2, normals []mgl32.Vec3) (Vertex, bool, error) {
	var v Vertex
	parts := strings.Split(ref, "/")

	i, err := index(parts[0], len(positions))
	if err != nil {
		return v, false, fmt.Errorf("vertex %q: %w", ref, err)
	}
	v.Position = positions[i]

	if len(parts) > 1 && parts[1] != "" {
		i, err := index(parts[1], len(uvs))
		if err != nil {
			return v, false, fmt.Errorf("texture vertex %q: %w", ref, err)
		}
		v.TexCoord = uvs[i]
	}

	if len(parts) > 2 && parts[2] != "" {
		i, err := index(parts[2], len(normals))
		if err != nil {
			return v, false, fmt.Errorf("normal %q: %w", ref, err)
		}
		v.Normal = normals[i]
		return v, true, nil
	}
	return v, false, nil
}

// index converts a 1-based or negative (relative) OBJ index to 0-based.
func index(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
	}
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
