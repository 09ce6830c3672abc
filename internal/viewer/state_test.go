package viewer

import (
	"testing"
	"time"
)

func TestPhase(t *testing.T) {
	cycle := 10 * time.Second
	tests := []struct {
		elapsed time.Duration
		want    float32
	}{
		{0, 0},
		{2500 * time.Millisecond, 0.25},
		{15000 * time.Millisecond, 0.5},
		{10 * time.Second, 0},
		{19999 * time.Millisecond, 0.9999},
		{-time.Second, 0},
	}
	for _, tt := range tests {
		if got := Phase(tt.elapsed, cycle); got != tt.want {
			t.Errorf("Phase(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}

	if got := Phase(time.Second, 0); got != 0 {
		t.Errorf("zero cycle phase = %v, want 0", got)
	}
}

func TestPhaseRange(t *testing.T) {
	cycle := 10 * time.Second
	for ms := int64(0); ms < 50000; ms += 137 {
		p := Phase(time.Duration(ms)*time.Millisecond, cycle)
		if p < 0 || p >= 1 {
			t.Fatalf("Phase(%dms) = %v, out of [0,1)", ms, p)
		}
	}
}

func TestClampScale(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{1, 1},
		{0.05, 0.05},
		{0.01, 0.05},
		{-3, 0.05},
	}
	for _, tt := range tests {
		if got := ClampScale(tt.in, 0.05); got != tt.want {
			t.Errorf("ClampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStateReset(t *testing.T) {
	s := DefaultState()
	s.Pitch, s.Yaw, s.Scale = 30, -45, 2.5
	s.Projection = Orthographic
	s.Transparency, s.ShowWater, s.AxesOn, s.DebugOn = false, false, false, true
	s.Phase = 0.42

	s.Reset()

	want := DefaultState()
	want.Phase = 0.42
	if s != want {
		t.Errorf("after Reset = %+v, want %+v", s, want)
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if s.Scale != 1 || s.Pitch != 0 || s.Yaw != 0 {
		t.Errorf("transform = %v %v %v", s.Pitch, s.Yaw, s.Scale)
	}
	if s.Projection != Perspective {
		t.Errorf("projection = %v", s.Projection)
	}
	if !s.Transparency || !s.EdgeTransparency || !s.AnimateWater || !s.ShowWater || !s.ShinyWater {
		t.Errorf("water flags = %+v", s)
	}
	if !s.AxesOn || s.DebugOn {
		t.Errorf("axes/debug = %v/%v", s.AxesOn, s.DebugOn)
	}
}

func TestTracker(t *testing.T) {
	var tr Tracker
	tr.Press(MaskLeft, 10, 20)
	tr.Press(MaskMiddle, 15, 25)
	if !tr.Held(MaskLeft) || !tr.Held(MaskMiddle) || tr.Held(MaskRight) {
		t.Errorf("mask = %b", tr.Active)
	}
	if tr.X != 15 || tr.Y != 25 {
		t.Errorf("position = %d,%d", tr.X, tr.Y)
	}

	dx, dy := tr.Move(20, 20)
	if dx != 5 || dy != -5 {
		t.Errorf("delta = %d,%d", dx, dy)
	}

	tr.Release(MaskLeft)
	if tr.Held(MaskLeft) || !tr.Held(MaskMiddle) {
		t.Errorf("mask after release = %b", tr.Active)
	}
}

func TestProjectionString(t *testing.T) {
	if Orthographic.String() != "orthographic" || Perspective.String() != "perspective" {
		t.Error("unexpected projection names")
	}
	if Projection(7).String() != "Projection(7)" {
		t.Errorf("unknown = %q", Projection(7).String())
	}
}
