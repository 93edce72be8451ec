package world

import (
	"os"
	"path/filepath"
	"testing"

	"emberhold/internal/items"
)

func TestIsValidMap(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cave.txt"), []byte("[header]\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wm := NewWorldManager(dir)
	if !wm.IsValidMap("cave.txt") {
		t.Fatalf("cave.txt should exist")
	}
	if wm.IsValidMap("ruins.txt") || wm.IsValidMap("") {
		t.Fatalf("missing maps should be invalid")
	}
}

func TestTeleportToTileSetsRespawn(t *testing.T) {
	wm := NewWorldManager(t.TempDir())
	wm.TeleportToTile("cave.txt", 3, 5)
	if !wm.ExecuteTeleport() {
		t.Fatalf("teleport should execute")
	}
	if wm.CurrentMapKey != "cave.txt" {
		t.Fatalf("current map: got %q", wm.CurrentMapKey)
	}
	x, y := wm.RespawnTile()
	if x != 3 || y != 5 {
		t.Fatalf("respawn tile: got %d,%d want 3,5", x, y)
	}
	if wm.ExecuteTeleport() {
		t.Fatalf("second ExecuteTeleport should be a no-op")
	}
}

func TestDropLoot(t *testing.T) {
	wm := NewWorldManager(t.TempDir())
	wm.DropLoot(items.ItemStack{})
	wm.DropLoot(items.ItemStack{Item: 4, Quantity: 2})
	if len(wm.Loot) != 1 || wm.Loot[0].Stack.Item != 4 {
		t.Fatalf("loot: got %+v", wm.Loot)
	}
}
