package river

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/riverview/internal/config"
	"github.com/Faultbox/riverview/internal/engine/camera"
	"github.com/Faultbox/riverview/internal/engine/debug"
	"github.com/Faultbox/riverview/internal/engine/model"
	"github.com/Faultbox/riverview/internal/engine/shader"
	"github.com/Faultbox/riverview/internal/engine/texture"
	"github.com/Faultbox/riverview/internal/logger"
	"github.com/Faultbox/riverview/internal/river/shaders"
)

// ErrShaderSetup marks a failure to load, compile or link the shaders.
var ErrShaderSetup = errors.New("shader setup failed")

// Texture units.
const (
	unitTerrain = iota
	unitRiverMask
	unitWaterNormals
	unitWaterBase
	unitFlowMap
	unitCount
)

type textureSpec struct {
	unit    int
	name    func(config.AssetsConfig) string
	wrap    texture.Wrap
	sampler string
}

var textureSpecs = []textureSpec{
	{unitTerrain, func(a config.AssetsConfig) string { return a.TerrainTexture }, texture.Clamp, "uTerrainTexUnit"},
	{unitRiverMask, func(a config.AssetsConfig) string { return a.RiverMask }, texture.Clamp, "uRiverMapTexUnit"},
	{unitWaterNormals, func(a config.AssetsConfig) string { return a.WaterNormals }, texture.Repeat, "uWaterNormalsTexUnit"},
	{unitWaterBase, func(a config.AssetsConfig) string { return a.WaterBase }, texture.Repeat, "uWaterBaseTexUnit"},
	{unitFlowMap, func(a config.AssetsConfig) string { return a.FlowMap }, texture.Clamp, "uFlowMapTexUnit"},
}

// Renderer owns every GPU resource of the scene.
type Renderer struct {
	program  *shader.Program
	axesProg *shader.Program
	terrain  *model.GPUMesh
	textures [unitCount]uint32

	terrainWidth  int
	terrainHeight int
	material      Material

	axesVAO uint32
	axesVBO uint32
}

// New loads the assets and creates the GPU resources. A GL context must be
// current. Shader failures wrap ErrShaderSetup.
func New(assets config.AssetsConfig) (*Renderer, error) {
	data, err := loadSceneData(assets)
	if err != nil {
		return nil, err
	}

	vertexSrc, fragmentSrc, err := LoadSources(assets)
	if err != nil {
		return nil, err
	}
	program, err := shader.NewProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: river: %v", ErrShaderSetup, err)
	}
	axesProg, err := shader.NewProgram(shaders.AxesVertexShader, shaders.AxesFragmentShader)
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("%w: axes: %v", ErrShaderSetup, err)
	}

	r := &Renderer{
		program:       program,
		axesProg:      axesProg,
		terrain:       model.Upload(data.mesh),
		terrainWidth:  data.images[unitTerrain].Width,
		terrainHeight: data.images[unitTerrain].Height,
		material:      DefaultMaterial(),
	}
	for _, ts := range textureSpecs {
		r.textures[ts.unit] = texture.Upload(data.images[ts.unit], ts.wrap)
	}
	r.createAxes()
	return r, nil
}

// LoadSources returns the river shader sources. The embedded defaults are
// used unless assets names a shader file; a named file that does not exist
// falls back as well, any other read error is a shader setup failure.
func LoadSources(assets config.AssetsConfig) (vertex, fragment string, err error) {
	vertex, err = readSource(assets.Path(assets.VertexShader), shaders.RiverVertexShader)
	if err != nil {
		return "", "", err
	}
	fragment, err = readSource(assets.Path(assets.FragmentShader), shaders.RiverFragmentShader)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

func readSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("shader file not found, using embedded source", zap.String("path", path))
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrShaderSetup, err)
	}
	logger.Warn("using shader from asset directory instead of the embedded one", zap.String("path", path))
	return string(data), nil
}

func (r *Renderer) createAxes() {
	verts := debug.GenerateAxesVertices(AxesLength)

	gl.GenVertexArrays(1, &r.axesVAO)
	gl.BindVertexArray(r.axesVAO)
	gl.GenBuffers(1, &r.axesVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.axesVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(model.AttribPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(model.AttribPosition)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders one frame into the current framebuffer. It does not swap.
func (r *Renderer) Draw(f Frame) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(f.Viewport.X, f.Viewport.Y, f.Viewport.Width, f.Viewport.Height)

	if f.Axes {
		r.drawAxes(f)
	}

	mv := TerrainModelView(f.ModelView)
	p := r.program
	p.Use()
	p.SetMat4("uProjection", f.Projection)
	p.SetMat4("uModelView", mv)
	p.SetMat3("uNormalMatrix", camera.NormalMatrix(mv))

	m := r.material
	p.SetFloat("uKa", m.Ka)
	p.SetFloat("uKd", m.Kd)
	p.SetFloat("uKs", m.Ks)
	p.SetVec3("uColor", m.Color[0], m.Color[1], m.Color[2])
	p.SetVec3("uSpecularColor", m.SpecularColor[0], m.SpecularColor[1], m.SpecularColor[2])
	p.SetFloat("uShininess", m.Shininess)
	p.SetFloat("uBlocks", Blocks)
	p.SetInt("uTerrainTextureWidth", int32(r.terrainWidth))
	p.SetInt("uTerrainTextureHeight", int32(r.terrainHeight))
	p.SetInt("uBlockSize", BlockSize(r.terrainHeight))
	p.SetBool("uUseTransparency", f.Water.Transparency)
	p.SetBool("uUseEdgeTransparency", f.Water.EdgeTransparency)
	p.SetBool("uShowWater", f.Water.Show)
	p.SetBool("uShinyWater", f.Water.Shiny)
	p.SetFloat("uTime", f.Water.Time)

	for _, ts := range textureSpecs {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(ts.unit))
		gl.BindTexture(gl.TEXTURE_2D, r.textures[ts.unit])
		p.SetInt(ts.sampler, int32(ts.unit))
	}

	r.terrain.Draw()

	p.Unuse()
	gl.ActiveTexture(gl.TEXTURE0)
}

func (r *Renderer) drawAxes(f Frame) {
	r.axesProg.Use()
	r.axesProg.SetMat4("uProjection", f.Projection)
	r.axesProg.SetMat4("uModelView", f.ModelView)
	r.axesProg.SetVec3("uColor", 1, 1, 1)

	gl.BindVertexArray(r.axesVAO)
	gl.DrawArrays(gl.LINES, 0, debug.AxesVertexCount)
	gl.BindVertexArray(0)
	r.axesProg.Unuse()
}

// Close releases the GPU resources.
func (r *Renderer) Close() {
	r.terrain.Delete()
	texture.Delete(r.textures[:]...)
	if r.axesVAO != 0 {
		gl.DeleteVertexArrays(1, &r.axesVAO)
		r.axesVAO = 0
	}
	if r.axesVBO != 0 {
		gl.DeleteBuffers(1, &r.axesVBO)
		r.axesVBO = 0
	}
	r.axesProg.Delete()
	r.program.Delete()
}
