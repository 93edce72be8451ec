package menu

import (
	"emberhold/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// Talker shows a conversation between the hero and an NPC.
type Talker struct {
	Menu
	HeroName string
	Portrait string
	NPCName  string
	Lines    []string

	line     int
	textArea Rect
	nextArea Rect
}

// SetHero records who the hero is for the conversation header.
func (t *Talker) SetHero(name, portrait string) {
	t.HeroName = name
	t.Portrait = portrait
}

// Start opens a conversation with npc.
func (t *Talker) Start(npc string, lines []string) {
	t.NPCName = npc
	t.Lines = lines
	t.line = 0
	t.Visible = len(lines) > 0
}

// Line returns the line currently shown.
func (t *Talker) Line() string {
	if t.line < 0 || t.line >= len(t.Lines) {
		return ""
	}
	return t.Lines[t.line]
}

func (t *Talker) update() {
	t.textArea = Rect{X: t.area.X + panelPadding, Y: t.area.Y + panelPadding + textLineHeight, W: t.area.W - 2*panelPadding, H: t.area.H - 3*panelPadding - 2*textLineHeight}
	t.nextArea = Rect{X: t.area.X + t.area.W - panelPadding - 64, Y: t.area.Y + t.area.H - panelPadding - 20, W: 64, H: 20}
}

func (t *Talker) advance() {
	t.line++
	if t.line >= len(t.Lines) {
		t.Visible = false
		t.line = 0
	}
}

func (t *Talker) Logic(in *input.State) {
	if !t.Visible {
		return
	}
	if in.Consume(input.Accept) {
		t.advance()
		return
	}
	if t.nextArea.Contains(in.Mouse) && in.Consume(input.Main1) {
		t.advance()
	}
}

func (t *Talker) Render(dst *ebiten.Image, pt *painter) {
	if !t.Visible {
		return
	}
	pt.frame(dst, t.area)
	pt.label(dst, t.NPCName, t.area.X+panelPadding, t.area.Y+panelPadding)
	pt.label(dst, t.Line(), t.textArea.X, t.textArea.Y)
	pt.button(dst, gotext.Get("Next"), t.nextArea)
}

// Exit is the confirmation dialog shown on cancel with no menu open.
type Exit struct {
	Menu
	confirmArea Rect
	cancelArea  Rect
	requested   bool
}

func (e *Exit) update() {
	w := (e.area.W - 3*panelPadding) / 2
	y := e.area.Y + e.area.H - panelPadding - 20
	e.confirmArea = Rect{X: e.area.X + panelPadding, Y: y, W: w, H: 20}
	e.cancelArea = Rect{X: e.area.X + 2*panelPadding + w, Y: y, W: w, H: 20}
}

// Logic handles the dialog's buttons. Accept confirms like the confirm button.
func (e *Exit) Logic(in *input.State) {
	if !e.Visible {
		return
	}
	switch {
	case in.Consume(input.Accept):
		e.requested = true
	case e.confirmArea.Contains(in.Mouse) && in.Consume(input.Main1):
		e.requested = true
	case e.cancelArea.Contains(in.Mouse) && in.Consume(input.Main1):
		e.Visible = false
	}
}

// ExitRequested reports whether the player confirmed leaving the game.
func (e *Exit) ExitRequested() bool {
	return e.requested
}

func (e *Exit) Render(dst *ebiten.Image, pt *painter) {
	if !e.Visible {
		return
	}
	pt.frame(dst, e.area)
	pt.centered(dst, gotext.Get("Save and exit to title?"), Rect{X: e.area.X, Y: e.area.Y + panelPadding, W: e.area.W, H: textLineHeight})
	pt.button(dst, gotext.Get("Exit"), e.confirmArea)
	pt.button(dst, gotext.Get("Cancel"), e.cancelArea)
}
