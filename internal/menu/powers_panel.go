package menu

import (
	"image"
	"slices"

	"emberhold/internal/character"
	"emberhold/internal/input"
	"emberhold/internal/powers"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// PowersPanel is the power tree. Unlocked powers can be dragged to the action bar.
type PowersPanel struct {
	Menu
	Unlocked []int

	powers   *powers.Manager
	stats    *character.StatBlock
	shown    []*powers.Power
	cells    []Rect
	iconSize int
}

func newPowersPanel(pm *powers.Manager, stats *character.StatBlock, iconSize int) *PowersPanel {
	return &PowersPanel{powers: pm, stats: stats, shown: pm.Panel(), iconSize: iconSize}
}

func (pp *PowersPanel) update() {
	step := pp.iconSize + panelPadding
	pp.cells = make([]Rect, len(pp.shown))
	for i, pw := range pp.shown {
		pp.cells[i] = Rect{
			X: pp.area.X + panelPadding + pw.Column*step,
			Y: pp.area.Y + panelPadding + textLineHeight + pw.Row*step,
			W: pp.iconSize,
			H: pp.iconSize,
		}
	}
}

func (pp *PowersPanel) powerAt(p image.Point) *powers.Power {
	if i := slotAt(pp.cells, p); i >= 0 {
		return pp.shown[i]
	}
	return nil
}

// IsUnlocked reports whether the player has unlocked power id.
func (pp *PowersPanel) IsUnlocked(id int) bool {
	return slices.Contains(pp.Unlocked, id)
}

// PointsLeft returns how many more powers the player may unlock: one per level.
func (pp *PowersPanel) PointsLeft() int {
	return pp.stats.Level - len(pp.Unlocked)
}

func (pp *PowersPanel) meetsRequirements(pw *powers.Power) bool {
	if pp.stats.Level < pw.RequiredLevel {
		return false
	}
	return pw.RequiredStat == "" || pp.stats.Stat(pw.RequiredStat) >= pw.RequiredValue
}

// UnlockClick unlocks the power under p when a point is left and its
// requirements are met.
func (pp *PowersPanel) UnlockClick(p image.Point) bool {
	pw := pp.powerAt(p)
	if pw == nil || pp.IsUnlocked(pw.ID) || pp.PointsLeft() <= 0 || !pp.meetsRequirements(pw) {
		return false
	}
	pp.Unlocked = append(pp.Unlocked, pw.ID)
	return true
}

// Click returns the unlocked, active power under p for dragging, or 0.
func (pp *PowersPanel) Click(p image.Point) int {
	pw := pp.powerAt(p)
	if pw == nil || pw.Passive || !pp.IsUnlocked(pw.ID) {
		return 0
	}
	return pw.ID
}

// CheckTooltip describes the power under p.
func (pp *PowersPanel) CheckTooltip(p image.Point) TooltipData {
	pw := pp.powerAt(p)
	if pw == nil {
		return TooltipData{}
	}
	lines := pp.powers.Tooltip(pw.ID)
	if !pp.IsUnlocked(pw.ID) {
		if pw.RequiredLevel > 0 {
			lines = append(lines, gotext.Get("Requires level %d", pw.RequiredLevel))
		}
		if pw.RequiredStat != "" {
			lines = append(lines, gotext.Get("Requires %s %d", pw.RequiredStat, pw.RequiredValue))
		}
	}
	return TooltipData{Lines: lines}
}

func (pp *PowersPanel) Logic(*input.State) {}

func (pp *PowersPanel) Render(dst *ebiten.Image, pt *painter) {
	if !pp.Visible {
		return
	}
	pt.frame(dst, pp.area)
	pt.label(dst, gotext.Get("Powers (%d points)", max(pp.PointsLeft(), 0)), pp.area.X+panelPadding, pp.area.Y+panelPadding/2)
	for i, pw := range pp.shown {
		r := pp.cells[i]
		pt.slot(dst, r)
		pt.icon(dst, pw.Icon, r.X, r.Y)
		if !pp.IsUnlocked(pw.ID) {
			drawFilledRect(dst, r, colorDisabled)
		}
	}
}
