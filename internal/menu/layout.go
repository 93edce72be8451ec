package menu

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"emberhold/internal/fileparse"

	"github.com/agnivade/levenshtein"
)

// LoadLayout applies the panel rectangles in path. Sub-areas are recomputed
// even when the file cannot be read.
func (m *Manager) LoadLayout(path string) error {
	f, err := os.Open(path)
	if err != nil {
		m.relayout()
		return fmt.Errorf("unable to open layout: %w", err)
	}
	defer f.Close()
	return m.ApplyLayout(f)
}

// ApplyLayout reads panel rectangles, one per line as name=x,y,w,h,alignment
// (name,x,y,w,h,alignment is accepted too). Unknown names are skipped and
// panels the input does not mention keep their rectangles.
func (m *Manager) ApplyLayout(r io.Reader) error {
	defer m.relayout()

	p := fileparse.New(r)
	for p.Next() {
		id, ok := PanelByName(strings.ToLower(p.Key))
		if !ok {
			logUnknownPanel(p.Key, p.Line())
			continue
		}
		var rect Rect
		rect.X = fileparse.ToInt(p.NextValue(), 0)
		rect.Y = fileparse.ToInt(p.NextValue(), 0)
		rect.W = fileparse.ToInt(p.NextValue(), 0)
		rect.H = fileparse.ToInt(p.NextValue(), 0)
		b := m.panels[id].base()
		b.Window = rect
		b.Alignment = strings.TrimSpace(p.NextValue())
	}
	return p.Err()
}

func logUnknownPanel(name string, line int) {
	best, bestDist := "", 3
	for _, n := range panelNames {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), n); d < bestDist {
			best, bestDist = n, d
		}
	}
	if best != "" {
		log.Printf("menu: line %d: unknown panel %q, did you mean %q?", line, name, best)
		return
	}
	log.Printf("menu: line %d: unknown panel %q", line, name)
}

// relayout aligns every panel to the screen and recomputes sub-areas.
func (m *Manager) relayout() {
	lw, lh := m.cfg.GetLayoutSize()
	for _, p := range m.panels {
		p.base().Align(lw, lh, m.screenW, m.screenH)
	}
	for _, p := range m.panels {
		if u, ok := p.(updater); ok {
			u.update()
		}
	}
}

// Resize re-anchors the panels to a new screen size.
func (m *Manager) Resize(w, h int) {
	if w == m.screenW && h == m.screenH {
		return
	}
	m.screenW, m.screenH = w, h
	m.relayout()
}
