// Package main is the river viewer: a terrain mesh with an animated,
// flow-mapped river, rotated and scaled with the mouse.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/riverview/internal/config"
	"github.com/Faultbox/riverview/internal/engine/ui2d"
	"github.com/Faultbox/riverview/internal/engine/window"
	"github.com/Faultbox/riverview/internal/logger"
	"github.com/Faultbox/riverview/internal/river"
	"github.com/Faultbox/riverview/internal/viewer"
)

const windowTitle = "River Flow"

// Exit codes.
const (
	exitOK          = 0
	exitSetup       = 1
	exitShaderSetup = 10
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return exitSetup
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return exitSetup
		}
		fmt.Printf("Config written to %s\n", path)
		return exitOK
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return exitSetup
	}
	defer logger.Sync()

	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		logger.Error("window creation failed", zap.Error(err))
		return exitSetup
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		logger.Error("OpenGL init failed", zap.Error(err))
		return exitSetup
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	scene, err := river.New(cfg.Assets)
	if err != nil {
		logger.Error("scene setup failed", zap.Error(err))
		code := exitSetup
		if errors.Is(err, river.ErrShaderSetup) {
			code = exitShaderSetup
		}
		if cfg.Graphics.ErrorDialog {
			dialog.Message("%s", err.Error()).Title(windowTitle).Error()
		}
		return code
	}
	defer scene.Close()

	w, h := win.GetSize()
	overlay, err := ui2d.New(w, h)
	if err != nil {
		logger.Error("menu renderer setup failed", zap.Error(err))
		return exitShaderSetup
	}
	defer overlay.Close()

	v := viewer.New(&viewer.GLRenderer{Scene: scene, UI: overlay}, viewer.Options{
		Controls: viewer.Controls{
			AngleFactor:      cfg.Controls.AngleFactor,
			ScaleFactor:      cfg.Controls.ScaleFactor,
			MinScale:         cfg.Controls.MinScale,
			WheelClickFactor: cfg.Controls.WheelClickFactor,
		},
		Cycle:  cfg.Animation.Cycle(),
		Width:  w,
		Height: h,
	})

	viewer.Run(win, v)
	return exitOK
}
