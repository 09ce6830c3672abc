package menu

import "testing"

const (
	idReset = iota + 1
	idQuit
	idAxesOff
	idAxesOn
	idOrtho
	idPersp
	idDebugOff
	idDebugOn
)

func testItems() []Item {
	return []Item{
		{Label: "Axes", Children: []Item{{Label: "Off", ID: idAxesOff}, {Label: "On", ID: idAxesOn}}},
		{Label: "Projection", Children: []Item{{Label: "Orthographic", ID: idOrtho}, {Label: "Perspective", ID: idPersp}}},
		{Label: "Reset", ID: idReset},
		{Label: "Debug", Children: []Item{{Label: "Off", ID: idDebugOff}, {Label: "On", ID: idDebugOn}}},
		{Label: "Quit", ID: idQuit},
	}
}

// rowCenter returns a point inside row i of panel level.
func rowCenter(t *testing.T, p *Popup, level, i int) (float32, float32) {
	t.Helper()
	panels := p.Panels()
	if level >= len(panels) {
		t.Fatalf("panel %d not open (have %d)", level, len(panels))
	}
	x, y, w, h := panels[level].Row(i, p.Metrics)
	return x + w/2, y + h/2
}

func TestClosedPopup(t *testing.T) {
	p := New(testItems())
	if p.IsOpen() {
		t.Fatal("new popup should be closed")
	}
	if len(p.Panels()) != 0 {
		t.Error("closed popup should have no panels")
	}
}

func TestRootLayout(t *testing.T) {
	p := New(testItems())
	p.Open(100, 100, 1000, 1000)

	panels := p.Panels()
	if len(panels) != 1 {
		t.Fatalf("expected 1 panel, got %d", len(panels))
	}
	root := panels[0]
	// Longest label is "Projection >" (12 chars)
	wantW := 12*p.Metrics.CharWidth + 2*p.Metrics.Padding
	if root.X != 100 || root.Y != 100 || root.W != wantW || root.H != 5*p.Metrics.RowHeight {
		t.Errorf("root panel = %+v, want at (100,100) size %gx%g", root, wantW, 5*p.Metrics.RowHeight)
	}
	if root.Hovered != -1 {
		t.Errorf("no row should be hovered, got %d", root.Hovered)
	}
}

func TestOpenStaysOnScreen(t *testing.T) {
	p := New(testItems())
	p.Open(990, 990, 1000, 1000)

	root := p.Panels()[0]
	if root.X+root.W > 1000 || root.Y+root.H > 1000 {
		t.Errorf("root panel %+v leaves the 1000x1000 screen", root)
	}
}

func TestSelectLeaf(t *testing.T) {
	p := New(testItems())
	p.Open(100, 100, 1000, 1000)

	x, y := rowCenter(t, p, 0, 2)
	id, ok := p.Click(x, y)
	if !ok || id != idReset {
		t.Errorf("Click on Reset = (%d, %v), want (%d, true)", id, ok, idReset)
	}
	if p.IsOpen() {
		t.Error("selecting a leaf should close the menu")
	}
}

func TestHoverOpensSubmenu(t *testing.T) {
	p := New(testItems())
	p.Open(100, 100, 1000, 1000)

	x, y := rowCenter(t, p, 0, 0)
	p.Hover(x, y)

	panels := p.Panels()
	if len(panels) != 2 {
		t.Fatalf("hovering Axes should open a submenu, got %d panels", len(panels))
	}
	root, sub := panels[0], panels[1]
	if sub.X != root.X+root.W || sub.Y != root.Y {
		t.Errorf("submenu at (%g,%g), want beside row 0 at (%g,%g)", sub.X, sub.Y, root.X+root.W, root.Y)
	}

	x, y = rowCenter(t, p, 1, 1)
	id, ok := p.Click(x, y)
	if !ok || id != idAxesOn {
		t.Errorf("Click on Axes/On = (%d, %v), want (%d, true)", id, ok, idAxesOn)
	}
}

func TestHoverSwitchesSubmenu(t *testing.T) {
	p := New(testItems())
	p.Open(100, 100, 1000, 1000)

	x, y := rowCenter(t, p, 0, 0)
	p.Hover(x, y)
	x, y = rowCenter(t, p, 0, 3)
	p.Hover(x, y)

	panels := p.Panels()
	if len(panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(panels))
	}
	if panels[1].Items[0].ID != idDebugOff {
		t.Errorf("expected Debug submenu, got %+v", panels[1].Items)
	}

	// A leaf row closes the submenu
	x, y = rowCenter(t, p, 0, 4)
	p.Hover(x, y)
	if n := len(p.Panels()); n != 1 {
		t.Errorf("hovering Quit should leave 1 panel, got %d", n)
	}
}

func TestHoverOffMenuKeepsSubmenu(t *testing.T) {
	p := New(testItems())
	p.Open(100, 100, 1000, 1000)

	x, y := rowCenter(t, p, 0, 1)
	p.Hover(x, y)
	p.Hover(5, 5)

	if n := len(p.Panels()); n != 2 {
		t.Errorf("moving off the menu should keep the submenu open, got %d panels", n)
	}
}

func TestClickSubmenuRowKeepsOpen(t *testing.T) {
	p := New(testItems())
	p.Open(100, 100, 1000, 1000)

	x, y := rowCenter(t, p, 0, 1)
	if _, ok := p.Click(x, y); ok {
		t.Error("clicking a submenu row should not select")
	}
	if !p.IsOpen() {
		t.Fatal("menu should stay open")
	}
	if n := len(p.Panels()); n != 2 {
		t.Errorf("expected Projection submenu open, got %d panels", n)
	}
}

func TestClickOutsideCloses(t *testing.T) {
	p := New(testItems())
	p.Open(100, 100, 1000, 1000)

	if _, ok := p.Click(5, 5); ok {
		t.Error("click outside should not select")
	}
	if p.IsOpen() {
		t.Error("click outside should close the menu")
	}
}

func TestSubmenuFlipsLeftAtEdge(t *testing.T) {
	p := New(testItems())
	p.Open(850, 100, 1000, 1000)

	x, y := rowCenter(t, p, 0, 1)
	p.Hover(x, y)

	panels := p.Panels()
	root, sub := panels[0], panels[1]
	if sub.X != root.X-sub.W {
		t.Errorf("submenu should open to the left at the screen edge, got x=%g", sub.X)
	}

	x, y = rowCenter(t, p, 1, 0)
	if id, ok := p.Click(x, y); !ok || id != idOrtho {
		t.Errorf("Click on flipped Orthographic = (%d, %v)", id, ok)
	}
}

func TestLabel(t *testing.T) {
	if got := Label(Item{Label: "Quit"}); got != "Quit" {
		t.Errorf("leaf label = %q", got)
	}
	if got := Label(Item{Label: "Axes", Children: []Item{{Label: "On"}}}); got != "Axes >" {
		t.Errorf("submenu label = %q", got)
	}
}
