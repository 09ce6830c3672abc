// Package camera builds the viewport and matrices for a fixed-eye turntable
// view: the eye never moves, the scene is rotated and scaled in front of it.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rect is a viewport rectangle in pixels.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// Viewport returns the largest square centered in a w x h window.
// The leftover strip on the longer side is left as letterbox.
func Viewport(w, h int) Rect {
	side := w
	if h < side {
		side = h
	}
	if side < 0 {
		side = 0
	}
	return Rect{
		X:      int32((w - side) / 2),
		Y:      int32((h - side) / 2),
		Width:  int32(side),
		Height: int32(side),
	}
}

// Lens holds both projection setups. The viewport is square, so there is
// no aspect ratio.
type Lens struct {
	OrthoHalf float32 // half extent of the ortho box in x and y
	OrthoNear float32
	OrthoFar  float32

	FovY float32 // degrees
	Near float32
	Far  float32
}

// DefaultLens returns the stock projections.
func DefaultLens() Lens {
	return Lens{
		OrthoHalf: 3,
		OrthoNear: 0.1,
		OrthoFar:  1000,
		FovY:      90,
		Near:      0.1,
		Far:       5000,
	}
}

// Projection returns the orthographic box or the perspective frustum.
func (l Lens) Projection(orthographic bool) mgl32.Mat4 {
	if orthographic {
		return mgl32.Ortho(-l.OrthoHalf, l.OrthoHalf, -l.OrthoHalf, l.OrthoHalf, l.OrthoNear, l.OrthoFar)
	}
	return mgl32.Perspective(mgl32.DegToRad(l.FovY), 1, l.Near, l.Far)
}

// Turntable is the fixed eye the scene is rotated in front of.
type Turntable struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
}

// DefaultTurntable looks from +Z at the origin.
func DefaultTurntable() Turntable {
	return Turntable{
		Eye:    mgl32.Vec3{0, 0, 3},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

// View returns the look-at matrix.
func (t Turntable) View() mgl32.Mat4 {
	return mgl32.LookAtV(t.Eye, t.Center, t.Up)
}

// ModelView composes view * yaw * pitch * scale. Angles are in degrees.
func (t Turntable) ModelView(pitch, yaw, scale float32) mgl32.Mat4 {
	return t.View().
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(pitch))).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of mv.
func NormalMatrix(mv mgl32.Mat4) mgl32.Mat3 {
	return mv.Mat3().Inv().Transpose()
}
