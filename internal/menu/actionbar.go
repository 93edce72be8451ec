package menu

import (
	"image"
	"strconv"

	"emberhold/internal/input"
	"emberhold/internal/powers"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// Action bar layout: ten number-key slots, two mouse-button slots and four
// menu buttons.
const (
	SlotCount       = 12
	numberSlotCount = 10
)

// Menu buttons on the action bar.
const (
	ButtonCharacter = iota
	ButtonInventory
	ButtonPowers
	ButtonLog
	buttonCount
)

var buttonLabels = [buttonCount]string{"C", "I", "P", "L"}

// ActionBar binds powers to hotkey slots and opens the main menus.
type ActionBar struct {
	Menu
	Hotkeys [SlotCount]int
	// Stored keeps the real loadout while a transformation replaces it.
	Stored [SlotCount]int

	SlotEnabled   [SlotCount]bool
	SlotItemCount [SlotCount]int // -1 when the slot's power uses no consumable

	NumberArea Rect
	MouseArea  Rect
	MenuArea   Rect

	powers   *powers.Manager
	slots    [SlotCount]Rect
	buttons  [buttonCount]Rect
	attn     [buttonCount]*Menu
	dragFrom int
	iconSize int
}

func newActionBar(pm *powers.Manager, iconSize int) *ActionBar {
	a := &ActionBar{Menu: Menu{Visible: true}, powers: pm, dragFrom: -1, iconSize: iconSize}
	for i := range a.SlotEnabled {
		a.SlotEnabled[i] = true
		a.SlotItemCount[i] = -1
	}
	return a
}

func (a *ActionBar) update() {
	s := a.iconSize
	a.NumberArea = Rect{X: a.area.X, Y: a.area.Y, W: numberSlotCount * s, H: s}
	a.MouseArea = Rect{X: a.NumberArea.X + a.NumberArea.W + s/2, Y: a.area.Y, W: (SlotCount - numberSlotCount) * s, H: s}
	a.MenuArea = Rect{X: a.area.X + a.area.W - buttonCount*s, Y: a.area.Y, W: buttonCount * s, H: s}
	for i := range a.slots {
		if i < numberSlotCount {
			a.slots[i] = Rect{X: a.NumberArea.X + i*s, Y: a.area.Y, W: s, H: s}
		} else {
			a.slots[i] = Rect{X: a.MouseArea.X + (i-numberSlotCount)*s, Y: a.area.Y, W: s, H: s}
		}
	}
	for i := range a.buttons {
		a.buttons[i] = Rect{X: a.MenuArea.X + i*s, Y: a.area.Y, W: s, H: s}
	}
}

// InSlots reports whether p is over the number or mouse slots.
func (a *ActionBar) InSlots(p image.Point) bool {
	return a.NumberArea.Contains(p) || a.MouseArea.Contains(p)
}

// InBar reports whether p is over any part of the bar that takes clicks.
func (a *ActionBar) InBar(p image.Point) bool {
	return a.InSlots(p) || a.MenuArea.Contains(p)
}

// SlotAt returns the hotkey slot under p, or -1.
func (a *ActionBar) SlotAt(p image.Point) int {
	return slotAt(a.slots[:], p)
}

// CheckMenu reports which menu buttons were clicked this tick, consuming the
// primary button when one was.
func (a *ActionBar) CheckMenu(in *input.State) [buttonCount]bool {
	var clicked [buttonCount]bool
	if !a.MenuArea.Contains(in.Mouse) {
		return clicked
	}
	for i, r := range a.buttons {
		if r.Contains(in.Mouse) && in.Consume(input.Main1) {
			clicked[i] = true
		}
	}
	return clicked
}

// Remove clears the slot under p.
func (a *ActionBar) Remove(p image.Point) {
	if i := a.SlotAt(p); i >= 0 {
		a.Hotkeys[i] = 0
	}
}

// CheckDrag lifts the power under p out of its slot for rearranging. It
// returns 0 when the slot is empty.
func (a *ActionBar) CheckDrag(p image.Point) int {
	i := a.SlotAt(p)
	if i < 0 || a.Hotkeys[i] == 0 {
		return 0
	}
	power := a.Hotkeys[i]
	a.Hotkeys[i] = 0
	a.dragFrom = i
	return power
}

// Drop assigns power to the slot under p. When rearranging, the power that
// was in the target slot moves to the slot the drag started from.
func (a *ActionBar) Drop(p image.Point, power int, rearrange bool) {
	i := a.SlotAt(p)
	from := a.dragFrom
	a.dragFrom = -1
	if i < 0 {
		return
	}
	if rearrange && from >= 0 {
		a.Hotkeys[from] = a.Hotkeys[i]
	}
	a.Hotkeys[i] = power
}

// Set replaces every hotkey.
func (a *ActionBar) Set(hotkeys [SlotCount]int) {
	a.Hotkeys = hotkeys
}

// Transform swaps in a temporary loadout, keeping the real one in Stored.
func (a *ActionBar) Transform(temp [SlotCount]int) {
	a.Stored = a.Hotkeys
	a.Hotkeys = temp
}

// Untransform restores the real loadout.
func (a *ActionBar) Untransform() {
	a.Hotkeys = a.Stored
	a.Stored = [SlotCount]int{}
}

// Loadout returns the player's own hotkeys, which sit in Stored while
// transformed.
func (a *ActionBar) Loadout(transformed bool) [SlotCount]int {
	if transformed {
		return a.Stored
	}
	return a.Hotkeys
}

// CheckTooltip describes the slot or button under p.
func (a *ActionBar) CheckTooltip(p image.Point) TooltipData {
	if i := a.SlotAt(p); i >= 0 {
		if a.Hotkeys[i] == 0 {
			return TooltipData{}
		}
		return TooltipData{Lines: a.powers.Tooltip(a.Hotkeys[i])}
	}
	if i := slotAt(a.buttons[:], p); i >= 0 {
		names := [buttonCount]string{gotext.Get("Character"), gotext.Get("Inventory"), gotext.Get("Powers"), gotext.Get("Log")}
		return TooltipData{Lines: []string{names[i] + " (" + buttonLabels[i] + ")"}}
	}
	return TooltipData{}
}

func (a *ActionBar) Render(dst *ebiten.Image, pt *painter) {
	drawFilledRect(dst, a.area, colorPanel)
	for i, r := range a.slots {
		pt.slot(dst, r)
		if a.Hotkeys[i] == 0 {
			continue
		}
		if pw := a.powers.Get(a.Hotkeys[i]); pw != nil {
			pt.icon(dst, pw.Icon, r.X, r.Y)
		}
		if a.SlotItemCount[i] >= 0 {
			pt.label(dst, strconv.Itoa(a.SlotItemCount[i]), r.X+2, r.Y+r.H-textLineHeight)
		}
		if !a.SlotEnabled[i] {
			drawFilledRect(dst, r, colorDisabled)
		}
	}
	for i, r := range a.buttons {
		pt.button(dst, buttonLabels[i], r)
		if a.attn[i] != nil && a.attn[i].RequiresAttention {
			drawRectBorder(dst, r, colorAttention)
		}
	}
}
