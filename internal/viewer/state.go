package viewer

import (
	"fmt"
	"time"
)

// Projection selects the projection matrix used for the scene.
type Projection int

const (
	Orthographic Projection = iota
	Perspective
)

func (p Projection) String() string {
	switch p {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// Controls are the fixed interaction factors.
type Controls struct {
	AngleFactor      float32 // degrees per pixel
	ScaleFactor      float32 // scale per pixel
	MinScale         float32
	WheelClickFactor float32 // pixels of drag per wheel click
}

// DefaultControls returns the stock interaction factors.
func DefaultControls() Controls {
	return Controls{
		AngleFactor:      1.0,
		ScaleFactor:      0.005,
		MinScale:         0.05,
		WheelClickFactor: 5.0,
	}
}

// State is everything a frame is drawn from.
type State struct {
	Pitch float32 // degrees about X
	Yaw   float32 // degrees about Y
	Scale float32

	Projection Projection

	Transparency     bool
	EdgeTransparency bool
	AnimateWater     bool
	ShowWater        bool
	ShinyWater       bool
	AxesOn           bool
	DebugOn          bool

	// Phase is the water animation time in [0,1).
	Phase float32
}

// DefaultState returns the state the viewer starts in and resets to.
func DefaultState() State {
	return State{
		Scale:            1.0,
		Projection:       Perspective,
		Transparency:     true,
		EdgeTransparency: true,
		AnimateWater:     true,
		ShowWater:        true,
		ShinyWater:       true,
		AxesOn:           true,
	}
}

// Reset restores the defaults. The animation phase belongs to the clock and
// is kept.
func (s *State) Reset() {
	phase := s.Phase
	*s = DefaultState()
	s.Phase = phase
}

// AddScale changes the scale by delta and applies the floor.
func (s *State) AddScale(delta, minScale float32) {
	s.Scale = ClampScale(s.Scale+delta, minScale)
}

// ClampScale returns scale, or minScale when scale is below it.
func ClampScale(scale, minScale float32) float32 {
	if scale < minScale {
		return minScale
	}
	return scale
}

// Phase maps elapsed time onto the animation cycle: (ms mod cycle) / cycle.
func Phase(elapsed, cycle time.Duration) float32 {
	cycleMS := cycle.Milliseconds()
	if cycleMS <= 0 {
		return 0
	}
	ms := elapsed.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return float32(ms%cycleMS) / float32(cycleMS)
}

// Button bits in the tracker mask.
const (
	MaskRight  = 1
	MaskMiddle = 2
	MaskLeft   = 4
)

// Tracker remembers the last cursor position and which buttons are held.
type Tracker struct {
	X, Y   int
	Active int
}

// Press records the cursor and sets bit.
func (t *Tracker) Press(bit, x, y int) {
	t.X, t.Y = x, y
	t.Active |= bit
}

// Release clears bit.
func (t *Tracker) Release(bit int) {
	t.Active &^= bit
}

// Held reports whether bit is set.
func (t *Tracker) Held(bit int) bool {
	return t.Active&bit != 0
}

// Move returns the delta from the last position and stores the new one.
func (t *Tracker) Move(x, y int) (dx, dy int) {
	dx, dy = x-t.X, y-t.Y
	t.X, t.Y = x, y
	return dx, dy
}
