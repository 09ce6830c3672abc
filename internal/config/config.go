// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Controls  ControlsConfig  `yaml:"controls"`
	Animation AnimationConfig `yaml:"animation"`
	Assets    AssetsConfig    `yaml:"assets"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Fullscreen  bool `yaml:"fullscreen"`
	VSync       bool `yaml:"vsync"`
	ErrorDialog bool `yaml:"error_dialog"` // Show a message box on fatal setup errors
}

// ControlsConfig holds the mouse interaction factors.
type ControlsConfig struct {
	AngleFactor      float32 `yaml:"angle_factor"`       // Degrees per pixel of drag
	ScaleFactor      float32 `yaml:"scale_factor"`       // Scale change per pixel of drag
	MinScale         float32 `yaml:"min_scale"`          // Scale floor
	WheelClickFactor float32 `yaml:"wheel_click_factor"` // Pixels of drag one wheel click is worth
}

// AnimationConfig holds water animation settings.
type AnimationConfig struct {
	CycleMS int `yaml:"cycle_ms"`
}

// Cycle returns the animation period.
func (a AnimationConfig) Cycle() time.Duration {
	return time.Duration(a.CycleMS) * time.Millisecond
}

// AssetsConfig names the files the scene is built from.
type AssetsConfig struct {
	Dir            string `yaml:"dir"`
	TerrainTexture string `yaml:"terrain_texture"`
	RiverMask      string `yaml:"river_mask"`
	WaterNormals   string `yaml:"water_normals"`
	WaterBase      string `yaml:"water_base"`
	FlowMap        string `yaml:"flow_map"`
	TerrainMesh    string `yaml:"terrain_mesh"`
	VertexShader   string `yaml:"vertex_shader"`   // Empty uses the embedded shader
	FragmentShader string `yaml:"fragment_shader"` // Empty uses the embedded shader
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock viewer values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:       1200,
			Height:      1200,
			Fullscreen:  false,
			VSync:       true,
			ErrorDialog: true,
		},
		Controls: ControlsConfig{
			AngleFactor:      1.0,
			ScaleFactor:      0.005,
			MinScale:         0.05,
			WheelClickFactor: 5.0,
		},
		Animation: AnimationConfig{
			CycleMS: 10000,
		},
		Assets: AssetsConfig{
			Dir:            "final_project_assets",
			TerrainTexture: "final_terrain_texture_v2_revised_banks.bmp",
			RiverMask:      "river_mask.bmp",
			WaterNormals:   "water_normals_2.bmp",
			WaterBase:      "water_base.bmp",
			FlowMap:        "flow_map.bmp",
			TerrainMesh:    "final_terrain.obj",
			VertexShader:   "",
			FragmentShader: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Path joins an asset file name onto the asset directory.
func (a AssetsConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.Dir, name)
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Animation.CycleMS <= 0 {
		errs = append(errs, fmt.Errorf("animation: cycle_ms %d must be positive", c.Animation.CycleMS))
	}
	if c.Controls.MinScale <= 0 {
		errs = append(errs, fmt.Errorf("controls: min_scale %g must be positive", c.Controls.MinScale))
	}
	if c.Assets.TerrainMesh == "" {
		errs = append(errs, errors.New("assets: terrain_mesh is required"))
	}
	return errors.Join(errs...)
}
