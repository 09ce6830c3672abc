package viewer

import "github.com/Faultbox/riverview/internal/menu"

// Menu action IDs.
const (
	ActionAxesOff = iota + 1
	ActionAxesOn
	ActionOrthographic
	ActionPerspective
	ActionReset
	ActionDebugOff
	ActionDebugOn
	ActionQuit
)

// MenuItems is the right-click menu tree.
func MenuItems() []menu.Item {
	return []menu.Item{
		{Label: "Axes", Children: []menu.Item{
			{Label: "Off", ID: ActionAxesOff},
			{Label: "On", ID: ActionAxesOn},
		}},
		{Label: "Projection", Children: []menu.Item{
			{Label: "Orthographic", ID: ActionOrthographic},
			{Label: "Perspective", ID: ActionPerspective},
		}},
		{Label: "Reset", ID: ActionReset},
		{Label: "Debug", Children: []menu.Item{
			{Label: "Off", ID: ActionDebugOff},
			{Label: "On", ID: ActionDebugOn},
		}},
		{Label: "Quit", ID: ActionQuit},
	}
}
