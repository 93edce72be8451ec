package menu

import (
	"strings"
	"testing"
)

func TestLayoutAppliesRectangles(t *testing.T) {
	r := newTestRig(t)
	want := map[PanelID]struct {
		rect  Rect
		align string
	}{
		PanelInventory: {Rect{340, 20, 300, 400}, "right"},
		PanelActionBar: {Rect{0, 448, 640, 32}, "bottom"},
		PanelMiniMap:   {Rect{540, 0, 100, 100}, "topright"},
		PanelExit:      {Rect{220, 180, 200, 100}, "center"},
	}
	for id, w := range want {
		p := r.m.Panel(id)
		if p.Window != w.rect || p.Alignment != w.align {
			t.Errorf("%s: got %+v %q want %+v %q", id, p.Window, p.Alignment, w.rect, w.align)
		}
		if p.Area() != w.rect {
			t.Errorf("%s: on-screen area %+v should equal the layout rect at the layout resolution", id, p.Area())
		}
	}
}

func TestLayoutCommaSeparatedName(t *testing.T) {
	r := newTestRig(t)
	if err := r.m.ApplyLayout(strings.NewReader("inventory,10,20,300,400,left\n")); err != nil {
		t.Fatalf("apply: %v", err)
	}
	inv := r.m.Panel(PanelInventory)
	if inv.Window != (Rect{10, 20, 300, 400}) {
		t.Fatalf("inventory rect: got %+v", inv.Window)
	}
	if inv.Alignment != "left" {
		t.Fatalf("inventory alignment: got %q", inv.Alignment)
	}
	// sub-areas follow the new rectangle
	if r.m.Inventory.CarriedArea.X != 18 {
		t.Fatalf("carried area not recomputed: %+v", r.m.Inventory.CarriedArea)
	}
}

func TestLayoutIgnoresUnknownNames(t *testing.T) {
	r := newTestRig(t)
	before := r.m.Panel(PanelInventory).Window
	if err := r.m.ApplyLayout(strings.NewReader("invntory=1,2,3,4,left\nbogus=5,5,5,5\n")); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := r.m.Panel(PanelInventory).Window; got != before {
		t.Fatalf("misspelt name changed inventory: %+v", got)
	}
}

func TestLayoutMissingFileKeepsDefaults(t *testing.T) {
	r := newTestRig(t)
	before := r.m.Panel(PanelStash).Window
	if err := r.m.LoadLayout(t.TempDir() + "/missing.txt"); err == nil {
		t.Fatalf("expected an error for a missing layout")
	}
	if got := r.m.Panel(PanelStash).Window; got != before {
		t.Fatalf("stash rect changed: %+v", got)
	}
}

func TestAlignRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		align string
		want  Rect
	}{
		{"topleft", Rect{10, 20, 100, 50}},
		{"bottomright", Rect{170, 140, 100, 50}},
		{"center", Rect{90, 80, 100, 50}},
		{"top", Rect{90, 20, 100, 50}},
		{"", Rect{10, 20, 100, 50}},
	}
	for _, tt := range tests {
		if got := alignRect(r, tt.align, 640, 480, 800, 600); got != tt.want {
			t.Errorf("%q: got %+v want %+v", tt.align, got, tt.want)
		}
	}
}

func TestResizeReanchorsPanels(t *testing.T) {
	r := newTestRig(t)
	r.m.Resize(800, 600)
	if got := r.m.ActionBar.Area(); got != (Rect{80, 568, 640, 32}) {
		t.Fatalf("action bar after resize: got %+v", got)
	}
	if got := r.m.ActionBar.NumberArea.Y; got != 568 {
		t.Fatalf("number area not recomputed: y=%d", got)
	}
}
