// Package debug builds line geometry for on-screen reference helpers.
package debug

// Letter strokes on a unit grid. A negative order entry starts a new stroke.
var (
	letterX = glyph{
		u:     []float32{0, 1, 0, 1},
		v:     []float32{-0.5, 0.5, 0.5, -0.5},
		order: []int{1, 2, -3, 4},
	}
	letterY = glyph{
		u:     []float32{0, 0, -0.5, 0.5},
		v:     []float32{0, 0.6, 1, 1},
		order: []int{1, 2, 3, -2, 4},
	}
	letterZ = glyph{
		u:     []float32{1, 0, 1, 0, 0.25, 0.75},
		v:     []float32{0.5, 0.5, -0.5, -0.5, 0, 0},
		order: []int{1, 2, 3, 4, -5, 6},
	}
)

const (
	// letterSize is the letter height as a fraction of the axis length.
	letterSize = 0.10
	// letterBase is where the letter starts along its axis.
	letterBase = 1.10
)

type glyph struct {
	u, v  []float32
	order []int
}

// segments returns line pairs for the glyph in its own 2D space.
func (g glyph) segments() [][2][2]float32 {
	var out [][2][2]float32
	var prev [2]float32
	started := false
	for _, o := range g.order {
		i := o
		if i < 0 {
			i = -i
			started = false
		}
		p := [2]float32{g.u[i-1], g.v[i-1]}
		if started {
			out = append(out, [2][2]float32{prev, p})
		}
		prev = p
		started = true
	}
	return out
}

// GenerateAxesVertices returns GL_LINES vertices, [x, y, z] each, for the
// three positive axes of the given length and an X, Y and Z label past the
// end of each.
func GenerateAxesVertices(length float32) []float32 {
	verts := []float32{
		0, 0, 0, length, 0, 0,
		0, 0, 0, 0, length, 0,
		0, 0, 0, 0, 0, length,
	}

	fact := letterSize * length
	base := letterBase * length

	for _, s := range letterX.segments() {
		for _, p := range s {
			verts = append(verts, base+fact*p[0], fact*p[1], 0)
		}
	}
	for _, s := range letterY.segments() {
		for _, p := range s {
			verts = append(verts, fact*p[0], base+fact*p[1], 0)
		}
	}
	for _, s := range letterZ.segments() {
		for _, p := range s {
			verts = append(verts, 0, fact*p[1], base+fact*p[0])
		}
	}
	return verts
}

// AxesVertexCount is the vertex count of GenerateAxesVertices output.
const AxesVertexCount = 2 * (3 + 2 + 3 + 4)
