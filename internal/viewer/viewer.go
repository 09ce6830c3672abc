// Package viewer holds the interactive state of the river scene and reacts
// to input: the animation clock, the mouse-driven transform, keyboard
// toggles and the popup menu.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/riverview/internal/engine/camera"
	"github.com/Faultbox/riverview/internal/engine/input"
	"github.com/Faultbox/riverview/internal/logger"
	"github.com/Faultbox/riverview/internal/menu"
	"github.com/Faultbox/riverview/internal/river"
)

// Renderer draws what the viewer describes.
type Renderer interface {
	Draw(f river.Frame)
	DrawMenu(p *menu.Popup, s Screen)
}

// Screen is the window size in points (mouse space) and the framebuffer
// size in pixels.
type Screen struct {
	Width, Height                 int
	DrawableWidth, DrawableHeight int
}

// Options configure a Viewer.
type Options struct {
	Controls Controls
	Cycle    time.Duration
	Width    int
	Height   int
}

// Viewer implements input.Handler.
type Viewer struct {
	state     State
	controls  Controls
	cycle     time.Duration
	lens      camera.Lens
	turntable camera.Turntable
	tracker   Tracker
	menu      *menu.Popup
	renderer  Renderer
	screen    Screen

	redraw bool
	quit   bool
}

var _ input.Handler = (*Viewer)(nil)

// New creates a viewer in the default state.
func New(r Renderer, opts Options) *Viewer {
	v := &Viewer{
		state:     DefaultState(),
		controls:  opts.Controls,
		cycle:     opts.Cycle,
		lens:      camera.DefaultLens(),
		turntable: camera.DefaultTurntable(),
		menu:      menu.New(MenuItems()),
		renderer:  r,
		screen: Screen{
			Width: opts.Width, Height: opts.Height,
			DrawableWidth: opts.Width, DrawableHeight: opts.Height,
		},
		redraw: true,
	}
	return v
}

// State returns a copy of the current state.
func (v *Viewer) State() State {
	return v.state
}

// Tracker returns a copy of the mouse tracker.
func (v *Viewer) Tracker() Tracker {
	return v.tracker
}

// Menu returns the popup menu.
func (v *Viewer) Menu() *menu.Popup {
	return v.menu
}

// NeedsRedraw reports whether a redraw was requested since the last OnDraw.
func (v *Viewer) NeedsRedraw() bool {
	return v.redraw
}

// QuitRequested reports whether the user asked to quit.
func (v *Viewer) QuitRequested() bool {
	return v.quit
}

// SetDrawableSize records the framebuffer size in pixels.
func (v *Viewer) SetDrawableSize(w, h int) {
	v.screen.DrawableWidth, v.screen.DrawableHeight = w, h
	v.postRedisplay()
}

func (v *Viewer) postRedisplay() {
	v.redraw = true
}

// Frame describes the next redraw.
func (v *Viewer) Frame() river.Frame {
	s := &v.state
	scale := ClampScale(s.Scale, v.controls.MinScale)

	var t float32
	if s.AnimateWater {
		t = s.Phase
	}

	return river.Frame{
		Viewport:   camera.Viewport(v.screen.DrawableWidth, v.screen.DrawableHeight),
		Projection: v.lens.Projection(s.Projection == Orthographic),
		ModelView:  v.turntable.ModelView(s.Pitch, s.Yaw, scale),
		Axes:       s.AxesOn,
		Water: river.Water{
			Transparency:     s.Transparency,
			EdgeTransparency: s.EdgeTransparency,
			Show:             s.ShowWater,
			Shiny:            s.ShinyWater,
			Time:             t,
		},
	}
}

// OnFrame advances the animation clock.
func (v *Viewer) OnFrame(elapsed time.Duration) {
	v.state.Phase = Phase(elapsed, v.cycle)
	v.postRedisplay()
}

// OnDraw renders the scene and the menu over it.
func (v *Viewer) OnDraw() {
	if v.state.DebugOn {
		logger.Debug("Display",
			zap.Float32("pitch", v.state.Pitch),
			zap.Float32("yaw", v.state.Yaw),
			zap.Float32("scale", v.state.Scale),
			zap.Stringer("projection", v.state.Projection),
		)
	}
	v.renderer.Draw(v.Frame())
	v.renderer.DrawMenu(v.menu, v.screen)
	v.redraw = false
}

// OnKey handles a key press.
func (v *Viewer) OnKey(key rune) {
	if v.state.DebugOn {
		logger.Debug("Keyboard", zap.String("key", string(key)), zap.String("code", hexCode(key)))
	}

	if key == input.KeyEscape && v.menu.IsOpen() {
		v.menu.Close()
		v.postRedisplay()
		return
	}

	s := &v.state
	switch key {
	case 'o', 'O':
		s.Projection = Orthographic
	case 'p', 'P':
		s.Projection = Perspective
	case 'q', 'Q', input.KeyEscape:
		v.quit = true
	case 't':
		s.Transparency = !s.Transparency
	case 'f':
		s.AnimateWater = !s.AnimateWater
	case 'e':
		s.EdgeTransparency = !s.EdgeTransparency
	case 'w':
		s.ShowWater = !s.ShowWater
	case 's':
		s.ShinyWater = !s.ShinyWater
	default:
		logger.Warn("don't know what to do with keyboard hit",
			zap.String("key", string(key)), zap.String("code", hexCode(key)))
		return
	}
	v.postRedisplay()
}

// OnMouseButton handles presses, releases and wheel clicks.
func (v *Viewer) OnMouseButton(b input.Button, pressed bool, x, y int) {
	if v.state.DebugOn {
		logger.Debug("MouseButton", zap.Stringer("button", b), zap.Bool("pressed", pressed),
			zap.Int("x", x), zap.Int("y", y))
	}

	// Releases always clear the drag bit, even when the menu eats the event.
	if !pressed {
		v.tracker.Release(dragBit(b))
	}
	if v.menu.IsOpen() {
		v.menuButton(b, pressed, x, y)
		return
	}

	c := v.controls
	bit := 0
	switch b {
	case input.ButtonLeft:
		bit = MaskLeft
	case input.ButtonMiddle:
		bit = MaskMiddle
	case input.ButtonRight:
		if pressed {
			v.menu.Open(float32(x), float32(y), float32(v.screen.Width), float32(v.screen.Height))
			v.postRedisplay()
			return
		}
		bit = MaskRight
	case input.ButtonWheelUp:
		if pressed {
			v.state.AddScale(c.ScaleFactor*c.WheelClickFactor, c.MinScale)
		}
	case input.ButtonWheelDown:
		if pressed {
			v.state.AddScale(-c.ScaleFactor*c.WheelClickFactor, c.MinScale)
		}
	default:
		logger.Warn("unknown mouse button", zap.Stringer("button", b))
	}

	if pressed {
		v.tracker.Press(bit, x, y)
	} else {
		v.tracker.Release(bit)
	}
	v.postRedisplay()
}

func dragBit(b input.Button) int {
	switch b {
	case input.ButtonLeft:
		return MaskLeft
	case input.ButtonMiddle:
		return MaskMiddle
	case input.ButtonRight:
		return MaskRight
	default:
		return 0
	}
}

func (v *Viewer) menuButton(b input.Button, pressed bool, x, y int) {
	if !pressed || (b != input.ButtonLeft && b != input.ButtonRight) {
		return
	}
	if id, ok := v.menu.Click(float32(x), float32(y)); ok {
		v.OnMenuSelect(id)
	}
	v.postRedisplay()
}

// OnMouseMove rotates with the left button and scales with the middle one.
func (v *Viewer) OnMouseMove(x, y int) {
	if v.state.DebugOn {
		logger.Debug("MouseMotion", zap.Int("x", x), zap.Int("y", y))
	}

	if v.menu.IsOpen() {
		v.menu.Hover(float32(x), float32(y))
		v.tracker.Move(x, y)
		v.postRedisplay()
		return
	}

	c := v.controls
	dx, dy := v.tracker.Move(x, y)
	if v.tracker.Held(MaskLeft) {
		v.state.Pitch += c.AngleFactor * float32(dy)
		v.state.Yaw += c.AngleFactor * float32(dx)
	}
	if v.tracker.Held(MaskMiddle) {
		v.state.AddScale(c.ScaleFactor*float32(dx-dy), c.MinScale)
	}
	v.postRedisplay()
}

// OnMenuSelect applies a menu action.
func (v *Viewer) OnMenuSelect(id int) {
	s := &v.state
	switch id {
	case ActionAxesOff:
		s.AxesOn = false
	case ActionAxesOn:
		s.AxesOn = true
	case ActionOrthographic:
		s.Projection = Orthographic
	case ActionPerspective:
		s.Projection = Perspective
	case ActionReset:
		v.Reset()
	case ActionDebugOff:
		v.setDebug(false)
	case ActionDebugOn:
		v.setDebug(true)
	case ActionQuit:
		v.quit = true
	default:
		logger.Warn("don't know what to do with menu id", zap.Int("id", id))
		return
	}
	v.postRedisplay()
}

// OnResize records the new window size.
func (v *Viewer) OnResize(w, h int) {
	if v.state.DebugOn {
		logger.Debug("Resize", zap.Int("width", w), zap.Int("height", h))
	}
	v.screen.Width, v.screen.Height = w, h
	v.postRedisplay()
}

// OnVisibility redraws when the window is shown again.
func (v *Viewer) OnVisibility(visible bool) {
	if v.state.DebugOn {
		logger.Debug("Visibility", zap.Bool("visible", visible))
	}
	if visible {
		v.postRedisplay()
	}
}

// Reset restores the default state and releases all buttons.
func (v *Viewer) Reset() {
	v.state.Reset()
	v.tracker.Active = 0
	logger.SetDebug(false)
	v.postRedisplay()
}

func (v *Viewer) setDebug(on bool) {
	v.state.DebugOn = on
	logger.SetDebug(on)
}

func hexCode(r rune) string {
	return fmt.Sprintf("%#x", r)
}
