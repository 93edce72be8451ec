package menu

import (
	"image"

	"emberhold/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// PanelID identifies a panel in the registry. The order is creation order,
// which is also render order.
type PanelID int

const (
	PanelHP PanelID = iota
	PanelMP
	PanelXP
	PanelEffects
	PanelHUDLog
	PanelActionBar
	PanelEnemy
	PanelVendor
	PanelTalker
	PanelExit
	PanelMiniMap
	PanelCharacter
	PanelInventory
	PanelPowers
	PanelLog
	PanelStash
	panelCount
)

var panelNames = [panelCount]string{
	PanelHP:        "hp",
	PanelMP:        "mp",
	PanelXP:        "xp",
	PanelEffects:   "effects",
	PanelHUDLog:    "hudlog",
	PanelActionBar: "actionbar",
	PanelEnemy:     "enemy",
	PanelVendor:    "vendor",
	PanelTalker:    "talker",
	PanelExit:      "exit",
	PanelMiniMap:   "minimap",
	PanelCharacter: "character",
	PanelInventory: "inventory",
	PanelPowers:    "powers",
	PanelLog:       "log",
	PanelStash:     "stash",
}

func (id PanelID) String() string {
	if id < 0 || id >= panelCount {
		return "unknown"
	}
	return panelNames[id]
}

// PanelByName returns the panel for a layout file name.
func PanelByName(name string) (PanelID, bool) {
	for i, n := range panelNames {
		if n == name {
			return PanelID(i), true
		}
	}
	return 0, false
}

// Menu is the state every panel shares: its configured rectangle, alignment
// tag, visibility, attention flag and the on-screen area the alignment
// produced.
type Menu struct {
	Window    Rect
	Alignment string
	Visible   bool
	// RequiresAttention highlights the panel's action-bar button until it is opened.
	RequiresAttention bool

	area Rect
}

func (m *Menu) base() *Menu {
	return m
}

// Area returns the panel's on-screen rectangle.
func (m *Menu) Area() Rect {
	return m.area
}

// Contains reports whether p is inside the panel's on-screen rectangle.
func (m *Menu) Contains(p image.Point) bool {
	return m.area.Contains(p)
}

// Align recomputes the on-screen area from the configured rectangle.
func (m *Menu) Align(layoutW, layoutH, screenW, screenH int) {
	m.area = alignRect(m.Window, m.Alignment, layoutW, layoutH, screenW, screenH)
}

// Panel is one on-screen UI region owned by the Manager.
type Panel interface {
	base() *Menu
	Render(dst *ebiten.Image, pt *painter)
}

// updater is implemented by panels with sub-areas that must be recomputed
// after their rectangle changes.
type updater interface {
	update()
}

// logicPanel is implemented by panels with per-tick internal logic.
type logicPanel interface {
	Logic(in *input.State)
}
