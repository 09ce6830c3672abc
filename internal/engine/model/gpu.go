package model

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations used by shaders that draw a GPUMesh.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2
)

// GPUMesh is a Mesh uploaded once and drawn every frame.
type GPUMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Interleave packs vertices as position(3) normal(3) uv(2).
func Interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*8)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// Upload creates the vertex array for m.
func Upload(m *Mesh) *GPUMesh {
	data := Interleave(m.Vertices)
	g := &GPUMesh{count: int32(len(m.Vertices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(AttribPosition)
	gl.VertexAttribPointerWithOffset(AttribNormal, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(AttribNormal)
	gl.VertexAttribPointerWithOffset(AttribTexCoord, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(AttribTexCoord)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return g
}

// Draw issues the triangles with whatever program is current.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	gl.BindVertexArray(0)
}

// Delete releases the buffers.
func (g *GPUMesh) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
}
