package menu

import "github.com/Faultbox/riverview/internal/engine/ui2d"

// TextScale is the font scale rows are drawn at.
const TextScale = 1.5

// Draw renders the open panels. The caller brackets it with Begin/End.
func Draw(r *ui2d.Renderer, p *Popup) {
	if !p.IsOpen() {
		return
	}
	m := p.Metrics
	for _, panel := range p.Panels() {
		r.DrawPanel(panel.X, panel.Y, panel.W, panel.H, ui2d.ColorPanelBg, ui2d.ColorPanelBorder)
		for i, it := range panel.Items {
			x, y, w, h := panel.Row(i, m)
			if i == panel.Hovered {
				r.DrawRect(x+1, y+1, w-2, h-2, ui2d.ColorRowHighlight)
			}
			_, th := r.MeasureText(it.Label, TextScale)
			r.DrawText(x+m.Padding, y+(h-th)/2, Label(it), TextScale, ui2d.ColorText)
		}
	}
}
