package save

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emberhold/internal/campaign"
	"emberhold/internal/character"
	"emberhold/internal/config"
	"emberhold/internal/items"
	"emberhold/internal/menu"
	"emberhold/internal/powers"
	"emberhold/internal/world"
)

type heroSoundsRecorder struct {
	base string
}

func (h *heroSoundsRecorder) LoadHero(dir, base string) {
	h.base = base
}

type testGame struct {
	cfg    *config.Config
	stats  *character.StatBlock
	menus  *menu.Manager
	world  *world.WorldManager
	camp   *campaign.Manager
	sounds *heroSoundsRecorder
	store  *Store
}

func newTestGame(t *testing.T, dir string) *testGame {
	t.Helper()
	cfg := config.Default()
	cfg.UI.LayoutFile = ""
	cfg.Save.Dir = dir
	cfg.Save.Slot = 2
	cfg.Data.MapsDir = filepath.Join(dir, "maps")

	itemTable := items.NewManager([]items.Item{
		{ID: 1, Name: "Sword", Type: items.ItemGear, Slot: items.SlotMain, Price: 100, Bonus: map[string]int{"hp": 10}},
		{ID: 2, Name: "Potion", Type: items.ItemConsumable, Price: 20, MaxQuantity: 10},
		{ID: 3, Name: "Crypt Key", Type: items.ItemQuest},
	})
	powerTable := powers.NewManager([]powers.Power{{ID: 10, Name: "Heal"}, {ID: 11, Name: "Slash"}})

	g := &testGame{
		cfg:    cfg,
		stats:  character.NewStatBlock(cfg),
		world:  world.NewWorldManager(cfg.Data.MapsDir),
		camp:   campaign.New(),
		sounds: &heroSoundsRecorder{},
	}
	g.menus = menu.NewManager(menu.Deps{Config: cfg, Stats: g.stats, Items: itemTable, Powers: powerTable})
	g.store = New(cfg, Deps{Stats: g.stats, Menus: g.menus, World: g.world, Campaign: g.camp, Sounds: g.sounds})
	return g
}

func writeMap(t *testing.T, dir, name string) {
	t.Helper()
	maps := filepath.Join(dir, "maps")
	if err := os.MkdirAll(maps, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(maps, name), []byte("map\n"), 0644); err != nil {
		t.Fatalf("write map: %v", err)
	}
}

func populate(g *testGame) {
	g.stats.Name = "Aria"
	g.stats.Base = "female"
	g.stats.Head = "head_short"
	g.stats.Portrait = "female01"
	g.stats.XP = 120
	g.stats.Physical = 3
	g.stats.Recalc()
	g.stats.HP = 5
	g.stats.MP = 4

	inv := g.menus.Inventory
	inv.Gold = 321
	inv.Equipment.Put(0, items.ItemStack{Item: 1, Quantity: 1})
	inv.Carried.Put(0, items.ItemStack{Item: 2, Quantity: 7})
	inv.Carried.Put(5, items.ItemStack{Item: 3, Quantity: 1})
	g.menus.Stash.Stock.Put(3, items.ItemStack{Item: 2, Quantity: 2})

	g.menus.ActionBar.Hotkeys[0] = 10
	g.menus.ActionBar.Hotkeys[11] = 11
	g.menus.Powers.Unlocked = []int{10, 11}

	g.world.RespawnMap = "cave.txt"
	g.world.RespawnPoint.X = 5*world.UnitsPerTile + 32
	g.world.RespawnPoint.Y = 7*world.UnitsPerTile + 32
	g.camp.Set("met_smith")
	g.camp.Set("cave_open")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "cave.txt")
	src := newTestGame(t, dir)
	populate(src)
	if err := src.store.SaveGame(); err != nil {
		t.Fatalf("save: %v", err)
	}

	dst := newTestGame(t, dir)
	if err := dst.store.LoadGame(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if dst.menus.Inventory.Gold != 321 {
		t.Errorf("gold: got %d want 321", dst.menus.Inventory.Gold)
	}
	for _, c := range []struct {
		name     string
		got, want *items.Storage
	}{
		{"equipped", dst.menus.Inventory.Equipment, src.menus.Inventory.Equipment},
		{"carried", dst.menus.Inventory.Carried, src.menus.Inventory.Carried},
		{"stash", dst.menus.Stash.Stock, src.menus.Stash.Stock},
	} {
		if c.got.Items() != c.want.Items() || c.got.Quantities() != c.want.Quantities() {
			t.Errorf("%s: got %s / %s want %s / %s", c.name, c.got.Items(), c.got.Quantities(), c.want.Items(), c.want.Quantities())
		}
	}
	if dst.menus.ActionBar.Hotkeys != src.menus.ActionBar.Hotkeys {
		t.Errorf("hotkeys: got %v want %v", dst.menus.ActionBar.Hotkeys, src.menus.ActionBar.Hotkeys)
	}
	if got := dst.menus.Powers.Unlocked; len(got) != 2 || got[0] != 10 || got[1] != 11 {
		t.Errorf("powers: got %v", got)
	}
	if dst.stats.Name != "Aria" || dst.stats.Portrait != "female01" || dst.stats.Physical != 3 || dst.stats.XP != 120 {
		t.Errorf("stats: got %+v", dst.stats)
	}
	if dst.stats.HP != 5 || dst.stats.MP != 4 {
		t.Errorf("hp/mp should be restored from the save, got %d/%d", dst.stats.HP, dst.stats.MP)
	}
	if dst.stats.Bonus["hp"] != 10 {
		t.Errorf("equipment bonuses should be reapplied, got %v", dst.stats.Bonus)
	}
	if !dst.camp.Check("met_smith") || !dst.camp.Check("cave_open") {
		t.Errorf("campaign: got %q", dst.camp.GetAll())
	}
	if dst.stats.Direction != 6 {
		t.Errorf("direction: got %d want 6", dst.stats.Direction)
	}
	if dst.sounds.base != "female" {
		t.Errorf("hero sounds loaded for %q", dst.sounds.base)
	}
	if dst.menus.Talker.HeroName != "Aria" {
		t.Errorf("talker hero: got %q", dst.menus.Talker.HeroName)
	}
	if !dst.world.Teleportation || dst.world.TeleportMap != "cave.txt" || !dst.world.EventsCleared() {
		t.Errorf("spawn teleport: got %+v", dst.world)
	}
	if want := (5*world.UnitsPerTile + 32); dst.world.TeleportDestination.X != want {
		t.Errorf("spawn x: got %d want %d", dst.world.TeleportDestination.X, want)
	}
}

func TestLoadWithoutHPMPUsesMaximums(t *testing.T) {
	dir := t.TempDir()
	src := newTestGame(t, dir)
	src.store.saveHPMP = false
	populate(src)
	if err := src.store.SaveGame(); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(src.store.SlotPath(2))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), "hpmp=") {
		t.Fatalf("hpmp written with the option off")
	}

	dst := newTestGame(t, dir)
	dst.store.saveHPMP = false
	if err := dst.store.LoadGame(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if dst.stats.HP != dst.stats.MaxHP || dst.stats.MP != dst.stats.MaxMP {
		t.Fatalf("hp/mp: got %d/%d want %d/%d", dst.stats.HP, dst.stats.MP, dst.stats.MaxHP, dst.stats.MaxMP)
	}
}

func TestSaveWithoutSlotIsNoop(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, dir)
	g.store.Slot = 0
	if err := g.store.SaveGame(); !errors.Is(err, ErrNoSlot) {
		t.Fatalf("got %v want ErrNoSlot", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("no-slot save wrote %d files", len(entries))
	}
	if err := g.store.LoadGame(); !errors.Is(err, ErrNoSlot) {
		t.Fatalf("load: got %v want ErrNoSlot", err)
	}
}

func TestSlotOutOfRangeIsNoSlot(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, dir)
	if g.store.Slots != 4 {
		t.Fatalf("slots: got %d want 4", g.store.Slots)
	}
	g.store.Slot = 7
	if g.store.HasSlot() {
		t.Fatalf("slot 7 of 4 reported usable")
	}
	if err := g.store.SaveGame(); !errors.Is(err, ErrNoSlot) {
		t.Fatalf("got %v want ErrNoSlot", err)
	}
	if _, err := os.Stat(g.store.SlotPath(7)); !os.IsNotExist(err) {
		t.Fatalf("save7.txt written for an out-of-range slot: %v", err)
	}
	if err := os.WriteFile(g.store.SlotPath(7), []byte("name=Intruder\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := g.store.LoadGame(); !errors.Is(err, ErrNoSlot) {
		t.Fatalf("load: got %v want ErrNoSlot", err)
	}
	if g.stats.Name == "Intruder" {
		t.Fatalf("out-of-range slot was loaded")
	}

	g.store.Slot = 4
	if err := g.store.SaveGame(); err != nil {
		t.Fatalf("slot 4: %v", err)
	}
}

func TestSaveWhileTransformedKeepsRealLoadout(t *testing.T) {
	dir := t.TempDir()
	src := newTestGame(t, dir)
	src.menus.ActionBar.Hotkeys[0] = 10
	src.menus.ActionBar.Transform([menu.SlotCount]int{99, 98})
	src.stats.Transformed = true
	src.stats.TransformType = "wolf"
	if err := src.store.SaveGame(); err != nil {
		t.Fatalf("save: %v", err)
	}

	dst := newTestGame(t, dir)
	if err := dst.store.LoadGame(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if dst.menus.ActionBar.Hotkeys[0] != 10 || dst.menus.ActionBar.Hotkeys[1] != 0 {
		t.Fatalf("loadout: got %v", dst.menus.ActionBar.Hotkeys)
	}
	if !dst.stats.Transformed || dst.stats.TransformType != "wolf" || dst.stats.TransformDuration != -1 {
		t.Fatalf("transform state: %v %q %d", dst.stats.Transformed, dst.stats.TransformType, dst.stats.TransformDuration)
	}
	if dst.menus.ActionBar.Stored[0] != 10 {
		t.Fatalf("real loadout should be kept for untransforming, got %v", dst.menus.ActionBar.Stored)
	}
}

func TestLoadRejectsMismatchedLists(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, dir)
	g.menus.Inventory.Carried.Put(0, items.ItemStack{Item: 2, Quantity: 3})
	body := "name=Broken\ncarried=1,2,3\ncarried_quantity=1,1\n"
	if err := os.WriteFile(g.store.SlotPath(2), []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(g.store.StashPath(), []byte("item=\nquantity=\n"), 0644); err != nil {
		t.Fatalf("write stash: %v", err)
	}

	err := g.store.LoadGame()
	if !errors.Is(err, items.ErrLengthMismatch) {
		t.Fatalf("got %v want ErrLengthMismatch", err)
	}
	if got := g.menus.Inventory.Carried.At(0); got.Item != 2 || got.Quantity != 3 {
		t.Fatalf("rejected list must leave carried items alone, got %+v", got)
	}
}

func TestLoadUnknownMapFallsBack(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, dir)
	body := "name=Lost\nspawn=gone.txt,4,4\n"
	if err := os.WriteFile(g.store.SlotPath(2), []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	g.store.LoadGame()
	if g.world.TeleportMap != world.FallbackMap || g.world.TeleportDestination.X != 1 || g.world.TeleportDestination.Y != 1 {
		t.Fatalf("fallback teleport: got %s %v", g.world.TeleportMap, g.world.TeleportDestination)
	}
	if g.world.EventsCleared() {
		t.Fatalf("fallback spawn keeps map events")
	}
}

func TestLoadMissingFileKeepsState(t *testing.T) {
	g := newTestGame(t, t.TempDir())
	g.menus.Inventory.Gold = 77
	if err := g.store.LoadGame(); err == nil {
		t.Fatalf("expected an error for a missing save")
	}
	if g.menus.Inventory.Gold != 77 {
		t.Fatalf("state changed on failed load")
	}
}

func TestLoadStashOnly(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, dir)
	if err := os.WriteFile(g.store.StashPath(), []byte("item=0,2,1\nquantity=0,4,1\n"), 0644); err != nil {
		t.Fatalf("write stash: %v", err)
	}
	g.menus.Inventory.Gold = 9
	g.menus.Stash.Updated = true
	if err := g.store.LoadStash(); err != nil {
		t.Fatalf("load stash: %v", err)
	}
	if got := g.menus.Stash.Stock.At(1); got.Item != 2 || got.Quantity != 4 {
		t.Fatalf("stash slot 1: got %+v", got)
	}
	if g.menus.Stash.Updated {
		t.Fatalf("freshly loaded stash is not dirty")
	}
	if g.menus.Inventory.Gold != 9 {
		t.Fatalf("LoadStash must not touch the rest of the game")
	}
}

func TestSaveFileFormat(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, dir)
	populate(g)
	if err := g.store.SaveGame(); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "save2.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, line := range []string{
		"name=Aria",
		"permadeath=0",
		"option=female,head_short,female01",
		"build=3,1,1,1",
		"gold=321",
		"spawn=cave.txt,5,7",
		"actionbar=10,0,0,0,0,0,0,0,0,0,0,11",
		"transformed=",
		"powers=10,11",
		"campaign=met_smith,cave_open",
	} {
		if !strings.Contains(string(data), line+"\n") {
			t.Errorf("missing line %q in:\n%s", line, data)
		}
	}
	stash, err := os.ReadFile(filepath.Join(dir, "stash.txt"))
	if err != nil {
		t.Fatalf("read stash: %v", err)
	}
	if !strings.HasPrefix(string(stash), "item=0,0,0,2,") {
		t.Errorf("stash file: %s", stash)
	}
}
