package menu

import (
	"image"
	"strings"
	"testing"

	"emberhold/internal/character"
	"emberhold/internal/config"
	"emberhold/internal/input"
	"emberhold/internal/items"
	"emberhold/internal/powers"

	"github.com/hajimehoshi/ebiten/v2"
)

const testLayout = `# panel=x,y,w,h,alignment
hp=0,0,100,12,topleft
mp=0,14,100,12,topleft
xp=0,28,100,12,topleft
effects=110,0,200,32,topleft
hudlog=10,300,300,100,bottomleft
actionbar=0,448,640,32,bottom
enemy=220,0,200,16,top
vendor=0,40,300,360,left
talker=0,40,300,200,left
exit=220,180,200,100,center
minimap=540,0,100,100,topright
character=0,40,300,360,left
inventory=340,20,300,400,right
powers=340,20,300,400,right
log=0,40,300,360,left
stash=0,40,300,360,left
`

const (
	itemSword  = 1
	itemPotion = 2
	itemKey    = 3
	itemRing   = 4

	powerHeal  = 10
	powerSlash = 11
	powerBash  = 12
	powerNova  = 13
)

type recordingSounds struct {
	played []string
}

func (r *recordingSounds) Play(name string) {
	r.played = append(r.played, name)
}

type countingRaster struct {
	renders int
}

func (c *countingRaster) Rasterize(TooltipData) *ebiten.Image {
	c.renders++
	return nil
}

type testRig struct {
	m      *Manager
	in     *input.State
	stats  *character.StatBlock
	sounds *recordingSounds
	raster *countingRaster
}

func testItemTable() *items.Manager {
	return items.NewManager([]items.Item{
		{ID: itemSword, Name: "Sword", Type: items.ItemGear, Slot: items.SlotMain, Price: 100, Bonus: map[string]int{"physical": 2}},
		{ID: itemPotion, Name: "Potion", Type: items.ItemConsumable, Price: 20, MaxQuantity: 10, Power: powerHeal},
		{ID: itemKey, Name: "Crypt Key", Type: items.ItemQuest},
		{ID: itemRing, Name: "Ring", Type: items.ItemArtifact, Slot: items.SlotArtifact, Price: 50},
	})
}

func testPowerTable() *powers.Manager {
	return powers.NewManager([]powers.Power{
		{ID: powerHeal, Name: "Heal", RequiresItem: itemPotion, InPanel: true, Column: 0},
		{ID: powerSlash, Name: "Slash", InPanel: true, Column: 1},
		{ID: powerBash, Name: "Shield Bash", RequiresItem: itemSword, InPanel: true, Column: 2},
		{ID: powerNova, Name: "Nova", InPanel: true, Column: 3, RequiredLevel: 5},
	})
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	cfg := config.Default()
	cfg.UI.LayoutFile = ""
	stats := character.NewStatBlock(cfg)
	stats.Name = "Tester"
	sounds := &recordingSounds{}
	raster := &countingRaster{}
	m := NewManager(Deps{
		Config:   cfg,
		Stats:    stats,
		Items:    testItemTable(),
		Powers:   testPowerTable(),
		Sounds:   sounds,
		Tooltips: raster,
	})
	if err := m.ApplyLayout(strings.NewReader(testLayout)); err != nil {
		t.Fatalf("apply layout: %v", err)
	}
	return &testRig{m: m, in: &input.State{}, stats: stats, sounds: sounds, raster: raster}
}

func (r *testRig) tick() {
	r.m.Update(r.in)
}

// press holds a and runs one tick.
func (r *testRig) press(a input.Action) {
	r.in.Press(a)
	r.tick()
}

// tap presses and releases a over two ticks.
func (r *testRig) tap(a input.Action) {
	r.press(a)
	r.in.Release(a)
	r.tick()
}

// click presses and releases the primary button at p.
func (r *testRig) click(p image.Point) {
	r.in.MoveMouse(p.X, p.Y)
	r.tap(input.Main1)
}

// drag presses at from, moves to to and releases there.
func (r *testRig) drag(from, to image.Point) {
	r.in.MoveMouse(from.X, from.Y)
	r.press(input.Main1)
	r.in.MoveMouse(to.X, to.Y)
	r.in.Release(input.Main1)
	r.tick()
}

// Slot centres for testLayout with 32px icons.
func carriedSlot(i int) image.Point {
	return image.Pt(348+(i%carriedCols)*32+16, 68+(i/carriedCols)*32+16)
}

func equipSlot(i int) image.Point {
	return image.Pt(348+i*32+16, 28+16)
}

func vendorSlot(i int) image.Point {
	return image.Pt(8+(i%vendorCols)*32+16, 76+(i/vendorCols)*32+16)
}

func stashSlot(i int) image.Point {
	return image.Pt(8+(i%stashCols)*32+16, 64+(i/stashCols)*32+16)
}

func actionSlot(i int) image.Point {
	return image.Pt(i*32+16, 448+16)
}

func powerCell(col int) image.Point {
	return image.Pt(348+col*40+16, 44+16)
}

// outside is a point covered by no interactive panel.
var outside = image.Pt(320, 150)
