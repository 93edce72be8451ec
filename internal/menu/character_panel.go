package menu

import (
	"fmt"
	"image"

	"emberhold/internal/character"
	"emberhold/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

var buildStats = []string{character.StatPhysical, character.StatMental, character.StatOffense, character.StatDefense}

func statTooltipText(stat string) string {
	switch stat {
	case character.StatPhysical:
		return "Increases maximum health."
	case character.StatMental:
		return "Increases maximum mana."
	case character.StatOffense:
		return "Increases accuracy and damage."
	case character.StatDefense:
		return "Increases avoidance and absorption."
	default:
		return ""
	}
}

// CharacterPanel shows the stat block and spends stat points.
type CharacterPanel struct {
	Menu
	stats *character.StatBlock

	lines    []string
	rows     []Rect
	upgrades []Rect
	pending  bool
}

func newCharacterPanel(stats *character.StatBlock) *CharacterPanel {
	return &CharacterPanel{stats: stats}
}

func (c *CharacterPanel) update() {
	c.rows = make([]Rect, len(buildStats))
	c.upgrades = make([]Rect, len(buildStats))
	top := c.area.Y + panelPadding + 4*textLineHeight
	for i := range buildStats {
		y := top + i*(textLineHeight+4)
		c.rows[i] = Rect{X: c.area.X + panelPadding, Y: y, W: c.area.W - 2*panelPadding - 20, H: textLineHeight}
		c.upgrades[i] = Rect{X: c.area.X + c.area.W - panelPadding - 16, Y: y, W: 16, H: textLineHeight}
	}
	c.RefreshStats()
}

// RefreshStats rebuilds the panel text from the stat block.
func (c *CharacterPanel) RefreshStats() {
	s := c.stats
	c.lines = []string{
		s.Name,
		gotext.Get("Level %d", s.Level),
		fmt.Sprintf("HP %d/%d  MP %d/%d", s.HP, s.MaxHP, s.MP, s.MaxMP),
		gotext.Get("Stat points: %d", max(s.StatPointsAvailable(), 0)),
	}
}

func (c *CharacterPanel) Logic(in *input.State) {
	if !c.Visible || c.stats.StatPointsAvailable() <= 0 {
		return
	}
	i := slotAt(c.upgrades, in.Mouse)
	if i < 0 || !in.Consume(input.Main1) {
		return
	}
	if c.stats.Spend(buildStats[i]) {
		c.pending = true
	}
}

// CheckUpgrade reports and clears a pending stat point upgrade.
func (c *CharacterPanel) CheckUpgrade() bool {
	up := c.pending
	c.pending = false
	return up
}

// CheckTooltip describes the build stat under p.
func (c *CharacterPanel) CheckTooltip(p image.Point) TooltipData {
	i := slotAt(c.rows, p)
	if i < 0 {
		return TooltipData{}
	}
	return TooltipData{Lines: []string{
		fmt.Sprintf("%s %d", buildStats[i], c.stats.Stat(buildStats[i])),
		gotext.Get(statTooltipText(buildStats[i])),
	}}
}

func (c *CharacterPanel) Render(dst *ebiten.Image, pt *painter) {
	if !c.Visible {
		return
	}
	pt.frame(dst, c.area)
	for i, l := range c.lines {
		pt.label(dst, l, c.area.X+panelPadding, c.area.Y+panelPadding+i*textLineHeight)
	}
	canSpend := c.stats.StatPointsAvailable() > 0
	for i, stat := range buildStats {
		pt.label(dst, fmt.Sprintf("%-9s %d", stat, c.stats.Stat(stat)), c.rows[i].X, c.rows[i].Y)
		if canSpend {
			pt.button(dst, "+", c.upgrades[i])
		}
	}
}
