package menu

import (
	"fmt"
	"image"
	"image/color"

	"emberhold/internal/character"
	"emberhold/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// StatBar shows a current/maximum value such as hp, mp or xp.
type StatBar struct {
	Menu
	Label string
	Cur   int
	Max   int
	Text  string // shown over the bar while hovered

	color color.Color
	hover bool
}

func newStatBar(label string, clr color.Color) *StatBar {
	return &StatBar{Menu: Menu{Visible: true}, Label: label, color: clr}
}

// Update sets the bar's values and hover text for this frame.
func (b *StatBar) Update(cur, max int, mouse image.Point, text string) {
	b.Cur = cur
	b.Max = max
	b.Text = text
	b.hover = b.Contains(mouse)
}

func (b *StatBar) Render(dst *ebiten.Image, pt *painter) {
	if !b.Visible {
		return
	}
	pt.bar(dst, b.area, b.Cur, b.Max, b.color)
	if b.hover {
		pt.centered(dst, b.Text, b.area)
	}
}

// ActiveEffects lists the player's current effect icons.
type ActiveEffects struct {
	Menu
	Effects []character.Effect
}

// Update copies the effects to show from the stat block.
func (e *ActiveEffects) Update(stats *character.StatBlock) {
	e.Effects = append(e.Effects[:0], stats.Effects...)
}

func (e *ActiveEffects) Render(dst *ebiten.Image, pt *painter) {
	for i, eff := range e.Effects {
		pt.icon(dst, eff.Icon, e.area.X+i*pt.iconSize, e.area.Y)
	}
}

const hudMessageFrames = 180

type hudMessage struct {
	text   string
	frames int
}

// HUDLog shows short-lived notices in the play area.
type HUDLog struct {
	Menu
	messages []hudMessage
}

// Add posts a notice.
func (h *HUDLog) Add(msg string) {
	h.messages = append(h.messages, hudMessage{text: msg, frames: hudMessageFrames})
}

// Messages returns the notices still on screen, oldest first.
func (h *HUDLog) Messages() []string {
	out := make([]string, len(h.messages))
	for i, m := range h.messages {
		out[i] = m.text
	}
	return out
}

// Clear removes every notice.
func (h *HUDLog) Clear() {
	h.messages = h.messages[:0]
}

func (h *HUDLog) Logic(*input.State) {
	kept := h.messages[:0]
	for _, m := range h.messages {
		m.frames--
		if m.frames > 0 {
			kept = append(kept, m)
		}
	}
	h.messages = kept
}

func (h *HUDLog) Render(dst *ebiten.Image, pt *painter) {
	for i, m := range h.messages {
		pt.label(dst, m.text, h.area.X, h.area.Y+i*textLineHeight)
	}
}

const enemyBarFrames = 240

// EnemyBar shows the health of the last enemy the player engaged.
type EnemyBar struct {
	Menu
	Name  string
	HP    int
	MaxHP int

	frames int
}

// SetEnemy shows an enemy's health for a few seconds.
func (e *EnemyBar) SetEnemy(name string, hp, maxHP int) {
	e.Name = name
	e.HP = hp
	e.MaxHP = maxHP
	e.frames = enemyBarFrames
}

func (e *EnemyBar) Logic(*input.State) {
	if e.frames > 0 {
		e.frames--
	}
}

// Active reports whether the bar is showing an enemy.
func (e *EnemyBar) Active() bool {
	return e.frames > 0
}

func (e *EnemyBar) Render(dst *ebiten.Image, pt *painter) {
	if e.frames <= 0 {
		return
	}
	pt.bar(dst, e.area, e.HP, e.MaxHP, colorBarHP)
	pt.centered(dst, fmt.Sprintf("%s %d/%d", e.Name, e.HP, e.MaxHP), e.area)
}

// MiniMap frames the current map's name in the corner of the screen.
type MiniMap struct {
	Menu
	MapName string
}

func (m *MiniMap) Render(dst *ebiten.Image, pt *painter) {
	pt.frame(dst, m.area)
	pt.label(dst, m.MapName, m.area.X+4, m.area.Y+4)
}
