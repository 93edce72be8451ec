package menu

import (
	"fmt"
	"image"
	"log"

	"emberhold/internal/character"
	"emberhold/internal/input"
	"emberhold/internal/items"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// Inventory areas a drag can start from.
const (
	AreaNone = iota - 1
	AreaEquipment
	AreaCarried
)

const (
	carriedCols  = 8
	CarriedSlots = 64
)

// Inventory holds the hero's equipment, carried items and gold.
type Inventory struct {
	Menu
	Equipment *items.Storage
	Carried   *items.Storage
	Gold      int

	// CarriedArea is the grid of carried slots.
	CarriedArea Rect

	ChangedEquipment bool
	ChangedArtifact  bool

	items *items.Manager
	stats *character.StatBlock

	equipSlots   []Rect
	carriedSlots []Rect
	dragArea     int
	dragSlot     int
	activated    []int
	iconSize     int
}

func newInventory(im *items.Manager, stats *character.StatBlock, iconSize int) *Inventory {
	return &Inventory{
		Equipment: items.NewStorage(len(items.EquipmentSlots), im),
		Carried:   items.NewStorage(CarriedSlots, im),
		items:     im,
		stats:     stats,
		dragArea:  AreaNone,
		dragSlot:  -1,
		iconSize:  iconSize,
	}
}

func (inv *Inventory) update() {
	x := inv.area.X + panelPadding
	y := inv.area.Y + panelPadding
	inv.equipSlots = gridSlots(x, y, len(items.EquipmentSlots), len(items.EquipmentSlots), inv.iconSize)
	cy := y + inv.iconSize + panelPadding
	rows := (CarriedSlots + carriedCols - 1) / carriedCols
	inv.CarriedArea = Rect{X: x, Y: cy, W: carriedCols * inv.iconSize, H: rows * inv.iconSize}
	inv.carriedSlots = gridSlots(x, cy, carriedCols, CarriedSlots, inv.iconSize)
}

// slotAt returns the area and slot under p.
func (inv *Inventory) slotAt(p image.Point) (int, int) {
	if i := slotAt(inv.equipSlots, p); i >= 0 {
		return AreaEquipment, i
	}
	if i := slotAt(inv.carriedSlots, p); i >= 0 {
		return AreaCarried, i
	}
	return AreaNone, -1
}

func (inv *Inventory) storage(area int) *items.Storage {
	if area == AreaEquipment {
		return inv.Equipment
	}
	return inv.Carried
}

func (inv *Inventory) markEquipmentChanged(slot int) {
	inv.ChangedEquipment = true
	if slot >= 0 && slot < len(items.EquipmentSlots) && items.EquipmentSlots[slot] == items.SlotArtifact {
		inv.ChangedArtifact = true
	}
}

// Click takes the stack under p out of its slot to start a drag.
func (inv *Inventory) Click(p image.Point) items.ItemStack {
	area, slot := inv.slotAt(p)
	if area == AreaNone {
		return items.ItemStack{}
	}
	stack := inv.storage(area).Take(slot)
	if stack.Empty() {
		return stack
	}
	inv.dragArea = area
	inv.dragSlot = slot
	if area == AreaEquipment {
		inv.markEquipmentChanged(slot)
	}
	return stack
}

// ItemReturn puts a dragged stack back where it came from, or anywhere in
// the carried grid when that slot has been taken.
func (inv *Inventory) ItemReturn(stack items.ItemStack) {
	if stack.Empty() {
		return
	}
	area, slot := inv.dragArea, inv.dragSlot
	inv.dragArea, inv.dragSlot = AreaNone, -1
	if area == AreaEquipment {
		if inv.Equipment.At(slot).Empty() {
			inv.Equipment.Put(slot, stack)
			inv.markEquipmentChanged(slot)
			return
		}
		slot = -1
	}
	if left := inv.Carried.Add(stack, slot); left > 0 {
		log.Printf("menu: inventory overflow, lost %d of item %d", left, stack.Item)
	}
}

// canEquip reports whether item fits equipment slot i.
func (inv *Inventory) canEquip(item, slot int) bool {
	if slot < 0 || slot >= len(items.EquipmentSlots) {
		return false
	}
	return inv.items.Get(item).Slot == items.EquipmentSlots[slot]
}

// Drop places a stack dragged from the inventory at p.
func (inv *Inventory) Drop(p image.Point, stack items.ItemStack) {
	area, slot := inv.slotAt(p)
	switch area {
	case AreaEquipment:
		if !inv.canEquip(stack.Item, slot) {
			inv.ItemReturn(stack)
			return
		}
		displaced := inv.Equipment.Put(slot, stack)
		inv.markEquipmentChanged(slot)
		if !displaced.Empty() {
			inv.ItemReturn(displaced)
		}
		inv.dragArea, inv.dragSlot = AreaNone, -1
	case AreaCarried:
		if inv.dragArea == AreaEquipment {
			cur := inv.Carried.At(slot)
			if !cur.Empty() && cur.Item != stack.Item && !inv.canEquip(cur.Item, inv.dragSlot) {
				inv.ItemReturn(stack)
				return
			}
		}
		displaced := inv.Carried.Put(slot, stack)
		if !displaced.Empty() {
			inv.ItemReturn(displaced)
		}
		inv.dragArea, inv.dragSlot = AreaNone, -1
	default:
		inv.ItemReturn(stack)
	}
}

// Activate uses the carried item under p: consumables fire their power,
// equippable items swap into their equipment slot.
func (inv *Inventory) Activate(p image.Point) {
	area, slot := inv.slotAt(p)
	if area != AreaCarried {
		return
	}
	stack := inv.Carried.At(slot)
	if stack.Empty() {
		return
	}
	it := inv.items.Get(stack.Item)
	switch {
	case it.Type == items.ItemConsumable:
		if it.HasPower() {
			inv.activated = append(inv.activated, it.Power)
		}
		inv.Carried.Slots[slot].Quantity--
		if inv.Carried.Slots[slot].Quantity <= 0 {
			inv.Carried.Slots[slot] = items.ItemStack{}
		}
	case it.Slot != "":
		for i, s := range items.EquipmentSlots {
			if s != it.Slot {
				continue
			}
			displaced := inv.Equipment.Put(i, inv.Carried.Take(slot))
			if !displaced.Empty() {
				inv.Carried.Put(slot, displaced)
			}
			inv.markEquipmentChanged(i)
			return
		}
	}
}

// TakeActivated returns and clears the powers fired by used items.
func (inv *Inventory) TakeActivated() []int {
	out := inv.activated
	inv.activated = nil
	return out
}

// Full reports whether the carried grid has no room for item.
func (inv *Inventory) Full(item int) bool {
	return inv.Carried.Full(item)
}

// Buy pays for as much of stack as the carried grid can hold and adds it,
// into the slot under at when given. It returns the part that did not fit.
// It fails without side effects when there is no room or gold is short.
func (inv *Inventory) Buy(stack items.ItemStack, at *image.Point) (items.ItemStack, bool) {
	room := inv.Carried.Room(stack.Item)
	if room <= 0 {
		return stack, false
	}
	bought, left := stack, items.ItemStack{}
	if stack.Quantity > room {
		bought.Quantity = room
		left = items.ItemStack{Item: stack.Item, Quantity: stack.Quantity - room}
	}
	price := inv.items.Get(stack.Item).Price * bought.Quantity
	if inv.Gold < price {
		return stack, false
	}
	slot := -1
	if at != nil {
		if area, s := inv.slotAt(*at); area == AreaCarried {
			slot = s
		}
	}
	inv.Gold -= price
	inv.Carried.Add(bought, slot)
	return left, true
}

// Sell credits the vendor price of stack. Quest items and worthless items
// cannot be sold.
func (inv *Inventory) Sell(stack items.ItemStack) bool {
	it := inv.items.Get(stack.Item)
	if it.Type == items.ItemQuest || it.VendorPrice() <= 0 {
		return false
	}
	inv.Gold += it.VendorPrice() * stack.Quantity
	inv.dragArea, inv.dragSlot = AreaNone, -1
	return true
}

// StashAdd reports whether stack may leave the inventory for the stash.
func (inv *Inventory) StashAdd(stack items.ItemStack) bool {
	if inv.items.Get(stack.Item).Type == items.ItemQuest {
		return false
	}
	inv.dragArea, inv.dragSlot = AreaNone, -1
	return true
}

// StashRemove moves stack from the stash into the carried grid and returns
// whatever did not fit.
func (inv *Inventory) StashRemove(stack items.ItemStack, at *image.Point) items.ItemStack {
	slot := -1
	if at != nil {
		if area, s := inv.slotAt(*at); area == AreaCarried {
			slot = s
		}
	}
	stack.Quantity = inv.Carried.Add(stack, slot)
	return stack
}

// Add puts stack in the carried grid and returns what did not fit.
func (inv *Inventory) Add(stack items.ItemStack) int {
	return inv.Carried.Add(stack, -1)
}

// CountCarried returns the carried quantity of item.
func (inv *Inventory) CountCarried(item int) int {
	return inv.Carried.Count(item)
}

// IsEquipped reports whether item is in an equipment slot.
func (inv *Inventory) IsEquipped(item int) bool {
	return inv.Equipment.Contains(item)
}

// ApplyEquipment pushes the bonuses of equipped items into the stat block.
func (inv *Inventory) ApplyEquipment() {
	bonus := make(map[string]int)
	for _, st := range inv.Equipment.Slots {
		if st.Empty() {
			continue
		}
		for k, v := range inv.items.Get(st.Item).Bonus {
			bonus[k] += v
		}
	}
	inv.stats.SetBonus(bonus)
}

// CheckTooltip describes the stack under p.
func (inv *Inventory) CheckTooltip(p image.Point) TooltipData {
	area, slot := inv.slotAt(p)
	if area == AreaNone {
		return TooltipData{}
	}
	return TooltipData{Lines: inv.items.Tooltip(inv.storage(area).At(slot), false)}
}

func (inv *Inventory) Logic(*input.State) {}

func (inv *Inventory) Render(dst *ebiten.Image, pt *painter) {
	if !inv.Visible {
		return
	}
	pt.frame(dst, inv.area)
	renderSlots(dst, pt, inv.items, inv.equipSlots, inv.Equipment)
	renderSlots(dst, pt, inv.items, inv.carriedSlots, inv.Carried)
	gold := gotext.Get("Gold: %d", inv.Gold)
	pt.label(dst, gold, inv.CarriedArea.X, inv.CarriedArea.Y+inv.CarriedArea.H+panelPadding/2)
}

// renderSlots draws a storage into its slot rectangles.
func renderSlots(dst *ebiten.Image, pt *painter, im *items.Manager, slots []Rect, s *items.Storage) {
	for i, r := range slots {
		pt.slot(dst, r)
		st := s.At(i)
		if st.Empty() {
			continue
		}
		pt.icon(dst, im.Get(st.Item).Icon, r.X, r.Y)
		pt.quantity(dst, st.Quantity, r)
	}
}

func (inv *Inventory) String() string {
	return fmt.Sprintf("inventory(gold=%d equipped=%s carried=%s)", inv.Gold, inv.Equipment.Items(), inv.Carried.Items())
}
