package powers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPowers(t *testing.T) {
	src := `powers:
  - id: 1
    name: Swing
    icon: 2
    in_panel: true
  - id: 200
    name: Drink Potion
    requires_item: 2
  - id: 3
    name: Bleed
    in_panel: true
    column: 1
    required_level: 2
`
	path := filepath.Join(t.TempDir(), "powers.yaml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadPowers(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := m.RequiredItem(200); got != 2 {
		t.Fatalf("RequiredItem(200): got %d want 2", got)
	}
	if got := m.RequiredItem(999); got != 0 {
		t.Fatalf("RequiredItem(999): got %d want 0", got)
	}
	panel := m.Panel()
	if len(panel) != 2 || panel[0].ID != 1 || panel[1].ID != 3 {
		t.Fatalf("panel powers: got %+v", panel)
	}
	if lines := m.Tooltip(3); len(lines) == 0 || lines[0] != "Bleed" {
		t.Fatalf("tooltip: got %v", lines)
	}
}
