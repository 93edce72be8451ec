package menu

import (
	"testing"

	"emberhold/internal/audio"
	"emberhold/internal/input"
	"emberhold/internal/items"
)

func TestVendorClosesWithInventory(t *testing.T) {
	r := newTestRig(t)
	r.m.OpenVendor("Smith", []items.ItemStack{{Item: itemSword, Quantity: 1}}, false)
	if !r.m.Vendor.Visible || !r.m.Inventory.Visible {
		t.Fatalf("vendor should open with the inventory")
	}
	r.tap(input.Inventory)
	if r.m.Inventory.Visible {
		t.Fatalf("inventory should have closed")
	}
	if r.m.Vendor.Visible {
		t.Fatalf("vendor must not stay open without the inventory")
	}
}

func TestVendorFromTalkerClosesBothSides(t *testing.T) {
	r := newTestRig(t)
	r.m.OpenVendor("Smith", nil, true)
	r.m.Inventory.Visible = false
	r.tick()
	if r.m.Vendor.Visible || r.m.Vendor.TalkerVisible {
		t.Fatalf("vendor state should be cleared, got visible=%v talker=%v", r.m.Vendor.Visible, r.m.Vendor.TalkerVisible)
	}
}

func TestGroupsAreExclusive(t *testing.T) {
	r := newTestRig(t)
	r.tap(input.Inventory)
	r.tap(input.Powers)
	if r.m.Inventory.Visible || !r.m.Powers.Visible {
		t.Fatalf("opening powers should close inventory: inv=%v pow=%v", r.m.Inventory.Visible, r.m.Powers.Visible)
	}
	r.tap(input.Character)
	r.tap(input.Log)
	if r.m.Character.Visible || !r.m.Log.Visible {
		t.Fatalf("opening log should close character: chr=%v log=%v", r.m.Character.Visible, r.m.Log.Visible)
	}
	if !r.m.Powers.Visible {
		t.Fatalf("left and right panels may be open together")
	}
}

func TestPairingHoldsForEveryLeftPanel(t *testing.T) {
	for _, toggle := range []input.Action{input.Character, input.Log} {
		r := newTestRig(t)
		r.m.OpenVendor("Smith", nil, false)
		r.tap(toggle)
		if r.m.Vendor.Visible && !r.m.Inventory.Visible {
			t.Fatalf("%s: vendor visible without inventory", toggle)
		}
		r.tap(input.Inventory)
		if r.m.Vendor.Visible && !r.m.Inventory.Visible {
			t.Fatalf("%s then inventory: vendor visible without inventory", toggle)
		}
	}
}

func TestToggleSounds(t *testing.T) {
	r := newTestRig(t)
	r.tap(input.Inventory)
	r.tap(input.Inventory)
	want := []string{audio.SoundOpen, audio.SoundClose}
	if len(r.sounds.played) != len(want) {
		t.Fatalf("sounds: got %v want %v", r.sounds.played, want)
	}
	for i := range want {
		if r.sounds.played[i] != want[i] {
			t.Fatalf("sounds: got %v want %v", r.sounds.played, want)
		}
	}
}

func TestKeyLockStopsRepeatToggle(t *testing.T) {
	r := newTestRig(t)
	r.press(input.Character)
	r.tick()
	r.tick()
	if !r.m.Character.Visible {
		t.Fatalf("holding the key must not toggle the panel again")
	}
	r.in.Release(input.Character)
	r.tick()
	if r.m.Session().KeyLock {
		t.Fatalf("key lock should release once toggle keys are up")
	}
	r.tap(input.Character)
	if r.m.Character.Visible {
		t.Fatalf("second press should close the panel")
	}
}

func TestActionBarButtonTogglesPanel(t *testing.T) {
	r := newTestRig(t)
	r.m.Inventory.RequiresAttention = true
	btn := r.m.ActionBar.buttons[ButtonInventory]
	r.in.MoveMouse(btn.X+4, btn.Y+4)
	r.tap(input.Main1)
	if !r.m.Inventory.Visible {
		t.Fatalf("inventory button should open the inventory")
	}
	if r.m.Inventory.RequiresAttention {
		t.Fatalf("opening should clear the attention flag")
	}
}

func TestHumanoidGating(t *testing.T) {
	r := newTestRig(t)
	r.stats.Humanoid = false
	r.tap(input.Powers)
	r.tap(input.Character)
	if r.m.Powers.Visible || r.m.Character.Visible {
		t.Fatalf("powers and character need humanoid form")
	}
	r.tap(input.Inventory)
	if !r.m.Inventory.Visible {
		t.Fatalf("inventory opens in any form")
	}
}

func TestTogglesIgnoredWhileDragging(t *testing.T) {
	r := newTestRig(t)
	r.m.Inventory.Visible = true
	r.m.Inventory.Carried.Put(0, items.ItemStack{Item: itemPotion, Quantity: 2})
	r.in.MoveMouse(carriedSlot(0).X, carriedSlot(0).Y)
	r.press(input.Main1)
	if !r.m.Dragging() {
		t.Fatalf("expected a drag from the inventory")
	}
	r.press(input.Character)
	if r.m.Character.Visible {
		t.Fatalf("toggle keys must be ignored while dragging")
	}
	r.tap(input.Inventory)
	if !r.m.Inventory.Visible {
		t.Fatalf("inventory must stay open while dragging")
	}
}

func TestCancelClosesMenusThenTogglesExit(t *testing.T) {
	r := newTestRig(t)
	r.tap(input.Inventory)
	r.tap(input.Cancel)
	if r.m.Inventory.Visible || r.m.Exit.Visible {
		t.Fatalf("cancel with a menu open should only close menus")
	}
	r.tap(input.Cancel)
	if !r.m.Exit.Visible {
		t.Fatalf("cancel with nothing open should show the exit dialog")
	}
	r.tap(input.Cancel)
	if r.m.Exit.Visible {
		t.Fatalf("cancel again should hide the exit dialog")
	}
}

func TestCancelBlockedWhileTransforming(t *testing.T) {
	r := newTestRig(t)
	r.stats.TransformDuration = 30
	r.tap(input.Cancel)
	if r.m.Exit.Visible {
		t.Fatalf("exit dialog must not open mid-transformation")
	}
}

func TestExitConfirmSetsDone(t *testing.T) {
	r := newTestRig(t)
	r.tap(input.Cancel)
	r.tap(input.Accept)
	if !r.m.Done() {
		t.Fatalf("confirming the exit dialog should finish the game")
	}
}

func TestMenusOpenAndPause(t *testing.T) {
	r := newTestRig(t)
	r.m.cfg.UI.MenusPause = true
	r.tap(input.Log)
	s := r.m.Session()
	if !s.MenusOpen || !s.Pause {
		t.Fatalf("log open: got %+v", s)
	}
	r.tap(input.Log)
	r.m.Stash.Visible = true
	r.tick()
	if r.m.Session().MenusOpen {
		t.Fatalf("stash alone does not count as an open menu")
	}
}
