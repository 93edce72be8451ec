package menu

import (
	"image"

	"emberhold/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// Log tabs.
const (
	LogMessages = iota
	LogQuests
	logTabCount
)

const logMaxMessages = 50

// LogPanel keeps the message and quest logs.
type LogPanel struct {
	Menu
	messages [logTabCount][]string
	active   int
	tabs     [logTabCount]Rect
}

func (l *LogPanel) update() {
	w := (l.area.W - 2*panelPadding) / logTabCount
	for i := range l.tabs {
		l.tabs[i] = Rect{X: l.area.X + panelPadding + i*w, Y: l.area.Y + panelPadding, W: w, H: 20}
	}
}

// Add appends msg to a tab, dropping the oldest past the limit.
func (l *LogPanel) Add(msg string, tab int) {
	if tab < 0 || tab >= logTabCount {
		return
	}
	l.messages[tab] = append(l.messages[tab], msg)
	if n := len(l.messages[tab]); n > logMaxMessages {
		l.messages[tab] = l.messages[tab][n-logMaxMessages:]
	}
}

// Clear empties a tab.
func (l *LogPanel) Clear(tab int) {
	if tab < 0 || tab >= logTabCount {
		return
	}
	l.messages[tab] = nil
}

// Messages returns a tab's messages, oldest first.
func (l *LogPanel) Messages(tab int) []string {
	if tab < 0 || tab >= logTabCount {
		return nil
	}
	return l.messages[tab]
}

// ActiveTab returns the selected tab.
func (l *LogPanel) ActiveTab() int {
	return l.active
}

// TabsLogic selects the tab under p.
func (l *LogPanel) TabsLogic(p image.Point) {
	for i, r := range l.tabs {
		if r.Contains(p) {
			l.active = i
		}
	}
}

func (l *LogPanel) Logic(*input.State) {}

func (l *LogPanel) Render(dst *ebiten.Image, pt *painter) {
	if !l.Visible {
		return
	}
	pt.frame(dst, l.area)
	for i, label := range []string{gotext.Get("Messages"), gotext.Get("Quests")} {
		if i == l.active {
			drawFilledRect(dst, l.tabs[i], colorTabActive)
		}
		drawRectBorder(dst, l.tabs[i], colorBorder)
		pt.centered(dst, label, l.tabs[i])
	}
	msgs := l.messages[l.active]
	top := l.tabs[0].Y + l.tabs[0].H + panelPadding
	rows := (l.area.Y + l.area.H - panelPadding - top) / textLineHeight
	if rows <= 0 {
		return
	}
	if len(msgs) > rows {
		msgs = msgs[len(msgs)-rows:]
	}
	for i, m := range msgs {
		pt.label(dst, m, l.area.X+panelPadding, top+i*textLineHeight)
	}
}
