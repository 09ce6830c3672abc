// Package input turns SDL2 events into handler callbacks.
//
// The callbacks mirror the hooks a windowing toolkit offers (display, idle,
// keyboard, mouse button, mouse motion, menu) so one stateful object can
// implement them and be driven by any loop.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Button identifies a mouse button or wheel direction.
type Button int

const (
	ButtonUnknown Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel-up"
	case ButtonWheelDown:
		return "wheel-down"
	default:
		return "unknown"
	}
}

// KeyEscape is the key code delivered for the Escape key.
const KeyEscape rune = 0x1b

// Handler receives the translated events.
type Handler interface {
	OnFrame(elapsed time.Duration)
	OnDraw()
	OnKey(key rune)
	OnMouseButton(b Button, pressed bool, x, y int)
	OnMouseMove(x, y int)
	OnMenuSelect(id int)
	OnResize(w, h int)
	OnVisibility(visible bool)
}

// EventType classifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKey
	EventMouseButton
	EventMouseMove
	EventResize
	EventVisibility
)

// Event is an SDL event reduced to what the handler needs.
type Event struct {
	Type    EventType
	Key     rune
	Button  Button
	Pressed bool
	X, Y    int
	Width   int
	Height  int
	Visible bool
}

// Translate converts an SDL event. ok is false for events the viewer ignores.
func Translate(event sdl.Event) (ev Event, ok bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{Type: EventResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_EXPOSED:
			return Event{Type: EventVisibility, Visible: true}, true
		case sdl.WINDOWEVENT_HIDDEN, sdl.WINDOWEVENT_MINIMIZED:
			return Event{Type: EventVisibility, Visible: false}, true
		case sdl.WINDOWEVENT_CLOSE:
			return Event{Type: EventQuit}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return Event{}, false
		}
		key, ok := KeyRune(e.Keysym.Sym, sdl.Keymod(e.Keysym.Mod))
		if !ok {
			return Event{}, false
		}
		return Event{Type: EventKey, Key: key}, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, X: int(e.X), Y: int(e.Y)}, true

	case *sdl.MouseButtonEvent:
		return Event{
			Type:    EventMouseButton,
			Button:  mouseButton(e.Button),
			Pressed: e.State == sdl.PRESSED,
			X:       int(e.X),
			Y:       int(e.Y),
		}, true

	case *sdl.MouseWheelEvent:
		if e.Y == 0 {
			return Event{}, false
		}
		b := ButtonWheelUp
		if e.Y < 0 {
			b = ButtonWheelDown
		}
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			b = flipWheel(b)
		}
		x, y, _ := sdl.GetMouseState()
		return Event{Type: EventMouseButton, Button: b, Pressed: true, X: int(x), Y: int(y)}, true
	}

	return Event{}, false
}

// Dispatch forwards ev to h. It returns true when the window was closed.
func Dispatch(ev Event, h Handler) (closed bool) {
	switch ev.Type {
	case EventQuit:
		return true
	case EventKey:
		h.OnKey(ev.Key)
	case EventMouseButton:
		h.OnMouseButton(ev.Button, ev.Pressed, ev.X, ev.Y)
	case EventMouseMove:
		h.OnMouseMove(ev.X, ev.Y)
	case EventResize:
		h.OnResize(ev.Width, ev.Height)
	case EventVisibility:
		h.OnVisibility(ev.Visible)
	}
	return false
}

// KeyRune maps a keycode to the character the keyboard callback receives.
// Only the ASCII range is delivered; shifted letters are upper case.
func KeyRune(sym sdl.Keycode, mod sdl.Keymod) (rune, bool) {
	if sym <= 0 || sym >= 0x80 {
		return 0, false
	}
	r := rune(sym)
	if r >= 'a' && r <= 'z' {
		shift := mod&sdl.KMOD_SHIFT != 0
		caps := mod&sdl.KMOD_CAPS != 0
		if shift != caps {
			r -= 'a' - 'A'
		}
	}
	return r, true
}

func mouseButton(b uint8) Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return ButtonRight
	default:
		return ButtonUnknown
	}
}

func flipWheel(b Button) Button {
	if b == ButtonWheelUp {
		return ButtonWheelDown
	}
	return ButtonWheelUp
}
