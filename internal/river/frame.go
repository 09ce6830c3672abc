// Package river draws the terrain mesh with its animated river.
package river

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/riverview/internal/engine/camera"
)

// Scene constants.
const (
	// LoadScale is applied to the mesh as it is uploaded.
	LoadScale = 0.5
	// DrawScale is applied to the terrain on top of the scene transform.
	DrawScale = 0.3
	// TerrainScale is the combined fixed terrain scale.
	TerrainScale = LoadScale * DrawScale

	// Blocks is the number of water tiles across the terrain texture.
	Blocks = 16.0

	AxesLength = 1.5
)

// Frame is everything Draw needs for one redraw.
type Frame struct {
	Viewport   camera.Rect
	Projection mgl32.Mat4
	// ModelView is the scene transform (view, rotation, user scale).
	ModelView mgl32.Mat4
	Axes      bool
	Water     Water
}

// Water holds the shader feature toggles.
type Water struct {
	Transparency     bool
	EdgeTransparency bool
	Show             bool
	Shiny            bool
	// Time is the animation phase in [0,1), or 0 when animation is off.
	Time float32
}

// TerrainModelView returns the scene transform with the fixed terrain
// scale applied.
func TerrainModelView(scene mgl32.Mat4) mgl32.Mat4 {
	return scene.Mul4(mgl32.Scale3D(TerrainScale, TerrainScale, TerrainScale))
}

// Material is the fixed lighting setup.
type Material struct {
	Ka, Kd, Ks    float32
	Color         mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// DefaultMaterial is the material the terrain is lit with.
func DefaultMaterial() Material {
	return Material{
		Ka:            0.1,
		Kd:            1.0,
		Ks:            0.1,
		Color:         mgl32.Vec3{1, 1, 1},
		SpecularColor: mgl32.Vec3{1, 1, 1},
		Shininess:     1.0,
	}
}

// BlockSize is the terrain texture height divided into Blocks, truncated.
func BlockSize(textureHeight int) int32 {
	return int32(float64(textureHeight) / Blocks)
}
