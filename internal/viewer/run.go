package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/riverview/internal/engine/input"
	"github.com/Faultbox/riverview/internal/engine/ui2d"
	"github.com/Faultbox/riverview/internal/engine/window"
	"github.com/Faultbox/riverview/internal/logger"
	"github.com/Faultbox/riverview/internal/menu"
	"github.com/Faultbox/riverview/internal/river"
)

// GLRenderer draws the scene with river.Renderer and the popup menu with
// the 2D overlay renderer.
type GLRenderer struct {
	Scene *river.Renderer
	UI    *ui2d.Renderer
}

// Draw renders the scene.
func (g *GLRenderer) Draw(f river.Frame) {
	g.Scene.Draw(f)
}

// DrawMenu renders the open menu over the whole window.
func (g *GLRenderer) DrawMenu(p *menu.Popup, s Screen) {
	if !p.IsOpen() {
		return
	}
	gl.Viewport(0, 0, int32(s.DrawableWidth), int32(s.DrawableHeight))
	g.UI.Resize(s.Width, s.Height)
	g.UI.Begin()
	menu.Draw(g.UI, p)
	g.UI.End()
}

// Run drives v from win until the user quits or closes the window. It must
// be called on the thread that owns the GL context.
func Run(win *window.Window, v *Viewer) {
	w, h := win.GetSize()
	v.OnResize(w, h)
	v.SetDrawableSize(win.DrawableSize())

	for !v.QuitRequested() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			ev, ok := input.Translate(event)
			if !ok {
				continue
			}
			if input.Dispatch(ev, v) {
				logger.Info("window closed")
				return
			}
			if ev.Type == input.EventResize {
				v.SetDrawableSize(win.DrawableSize())
			}
		}

		v.OnFrame(window.Elapsed())

		if v.NeedsRedraw() {
			v.OnDraw()
			win.SwapBuffers()
		}
	}
	logger.Info("quit requested")
}
