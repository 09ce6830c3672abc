// Package menu implements a right-click popup menu with cascading submenus.
//
// Layout and hit testing are plain geometry; drawing lives in draw.go.
package menu

// Item is one menu row. Items with children open a submenu instead of
// selecting.
type Item struct {
	Label    string
	ID       int
	Children []Item
}

// Leaf reports whether selecting the item produces its ID.
func (it Item) Leaf() bool {
	return len(it.Children) == 0
}

// Metrics sizes the rows. Widths are measured in characters so layout does
// not depend on a loaded font.
type Metrics struct {
	RowHeight float32
	CharWidth float32
	Padding   float32
}

// DefaultMetrics fits the 7x13 bitmap font drawn at scale 1.5.
func DefaultMetrics() Metrics {
	return Metrics{
		RowHeight: 24,
		CharWidth: 10.5,
		Padding:   8,
	}
}

// Panel is one open column of the menu.
type Panel struct {
	X, Y, W, H float32
	Items      []Item
	Hovered    int // -1 when no row is hovered
}

// Row returns the rectangle of row i.
func (p Panel) Row(i int, m Metrics) (x, y, w, h float32) {
	return p.X, p.Y + float32(i)*m.RowHeight, p.W, m.RowHeight
}

func (p Panel) contains(x, y float32) bool {
	return x >= p.X && x < p.X+p.W && y >= p.Y && y < p.Y+p.H
}

// Popup is the menu state: where it was opened and which rows are hovered.
type Popup struct {
	Items   []Item
	Metrics Metrics

	open   bool
	x, y   float32
	screen [2]float32
	path   []int // hovered row per level
}

// New creates a closed popup over items.
func New(items []Item) *Popup {
	return &Popup{Items: items, Metrics: DefaultMetrics()}
}

// Open shows the menu with its top-left corner at (x, y), moved up or left
// when it would leave a screenW x screenH window.
func (p *Popup) Open(x, y, screenW, screenH float32) {
	p.open = true
	p.path = p.path[:0]
	p.screen = [2]float32{screenW, screenH}

	w, h := p.size(p.Items)
	if x+w > screenW {
		x = screenW - w
	}
	if y+h > screenH {
		y = screenH - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	p.x, p.y = x, y
}

// Close hides the menu.
func (p *Popup) Close() {
	p.open = false
	p.path = p.path[:0]
}

// IsOpen reports whether the menu is shown.
func (p *Popup) IsOpen() bool {
	return p.open
}

// Panels returns the open columns, root first.
func (p *Popup) Panels() []Panel {
	if !p.open {
		return nil
	}

	var panels []Panel
	items := p.Items
	x, y := p.x, p.y
	for level := 0; ; level++ {
		w, h := p.size(items)
		panel := Panel{X: x, Y: y, W: w, H: h, Items: items, Hovered: -1}
		if level < len(p.path) {
			panel.Hovered = p.path[level]
		}
		panels = append(panels, panel)

		if panel.Hovered < 0 || panel.Hovered >= len(items) || items[panel.Hovered].Leaf() {
			return panels
		}

		// Submenu opens beside its parent row
		_, rowY, _, _ := panel.Row(panel.Hovered, p.Metrics)
		items = items[panel.Hovered].Children
		x, y = panel.X+panel.W, rowY
		if sw, sh := p.size(items); p.screen[0] > 0 {
			if x+sw > p.screen[0] {
				x = panel.X - sw
			}
			if y+sh > p.screen[1] {
				y = p.screen[1] - sh
			}
		}
	}
}

// Hover updates the highlighted rows for a cursor at (x, y). Moving off the
// menu keeps the last highlight so open submenus stay put.
func (p *Popup) Hover(x, y float32) {
	if level, row, ok := p.hit(x, y); ok {
		p.path = append(p.path[:level], row)
	}
}

// Click handles a button press at (x, y). A leaf selects its ID and closes
// the menu; a submenu row opens it; a press outside closes the menu.
func (p *Popup) Click(x, y float32) (id int, selected bool) {
	level, row, ok := p.hit(x, y)
	if !ok {
		p.Close()
		return 0, false
	}

	p.path = append(p.path[:level], row)
	item := p.Panels()[level].Items[row]
	if !item.Leaf() {
		return 0, false
	}
	p.Close()
	return item.ID, true
}

// hit finds the row under (x, y), searching the deepest panel first.
func (p *Popup) hit(x, y float32) (level, row int, ok bool) {
	panels := p.Panels()
	for level = len(panels) - 1; level >= 0; level-- {
		panel := panels[level]
		if !panel.contains(x, y) {
			continue
		}
		row = int((y - panel.Y) / p.Metrics.RowHeight)
		if row >= len(panel.Items) {
			row = len(panel.Items) - 1
		}
		return level, row, true
	}
	return 0, 0, false
}

// Label returns the text drawn for an item.
func Label(it Item) string {
	if it.Leaf() {
		return it.Label
	}
	return it.Label + " >"
}

func (p *Popup) size(items []Item) (w, h float32) {
	longest := 0
	for _, it := range items {
		if n := len(Label(it)); n > longest {
			longest = n
		}
	}
	w = float32(longest)*p.Metrics.CharWidth + 2*p.Metrics.Padding
	h = float32(len(items)) * p.Metrics.RowHeight
	return w, h
}
