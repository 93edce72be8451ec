package menu

import (
	"image"

	"emberhold/internal/items"

	"github.com/leonelquinteros/gotext"
)

// DragSource tags the panel an in-flight drag started from.
type DragSource int

const (
	DragFromInventory DragSource = iota + 1
	DragFromVendor
	DragFromStash
	DragFromPowers
	DragFromActionBar
)

func (s DragSource) String() string {
	switch s {
	case DragFromInventory:
		return "inventory"
	case DragFromVendor:
		return "vendor"
	case DragFromStash:
		return "stash"
	case DragFromPowers:
		return "powers"
	case DragFromActionBar:
		return "actionbar"
	}
	return "none"
}

// Payload is what a drag carries: an ItemPayload or a PowerPayload.
type Payload interface {
	isPayload()
}

// ItemPayload carries an item stack.
type ItemPayload struct {
	Stack items.ItemStack
}

// PowerPayload carries a power identifier.
type PowerPayload struct {
	Power int
}

func (ItemPayload) isPayload()  {}
func (PowerPayload) isPayload() {}

// Drag is an in-flight drag. The Manager holds at most one.
type Drag struct {
	Source  DragSource
	Payload Payload
	Origin  image.Point
}

// Stack returns the dragged item stack, empty for power drags.
func (d *Drag) Stack() items.ItemStack {
	if p, ok := d.Payload.(ItemPayload); ok {
		return p.Stack
	}
	return items.ItemStack{}
}

// Power returns the dragged power, 0 for item drags.
func (d *Drag) Power() int {
	if p, ok := d.Payload.(PowerPayload); ok {
		return p.Power
	}
	return 0
}

// beginDrag starts a drag unless one is already active.
func (m *Manager) beginDrag(src DragSource, payload Payload, origin image.Point) {
	if m.drag != nil {
		return
	}
	m.drag = &Drag{Source: src, Payload: payload, Origin: origin}
}

// Dragging reports whether a drag is in flight.
func (m *Manager) Dragging() bool {
	return m.drag != nil
}

// CurrentDrag returns the in-flight drag, or nil.
func (m *Manager) CurrentDrag() *Drag {
	return m.drag
}

func (m *Manager) dropHandlers() map[DragSource]func(*Drag, image.Point) {
	return map[DragSource]func(*Drag, image.Point){
		DragFromPowers:    m.dropPower,
		DragFromActionBar: m.dropPower,
		DragFromInventory: m.dropFromInventory,
		DragFromVendor:    m.dropFromVendor,
		DragFromStash:     m.dropFromStash,
	}
}

// resolveDrop finishes the drag once the primary button is released. The
// drag is cleared whatever the outcome.
func (m *Manager) resolveDrop(p image.Point, held bool) {
	if m.drag == nil || held {
		return
	}
	d := m.drag
	m.drag = nil
	if h, ok := m.drops[d.Source]; ok {
		h(d, p)
	}
}

func (m *Manager) dropPower(d *Drag, p image.Point) {
	rearrange := d.Source == DragFromActionBar
	if m.ActionBar.InSlots(p) {
		m.ActionBar.Drop(p, d.Power(), rearrange)
	}
}

func (m *Manager) dropFromInventory(d *Drag, p image.Point) {
	inv := m.Inventory
	stack := d.Stack()
	it := m.items.Get(stack.Item)
	switch {
	case inv.Visible && inv.Contains(p):
		inv.Drop(p, stack)
	case m.ActionBar.InSlots(p):
		inv.ItemReturn(stack)
		if it.HasPower() {
			m.ActionBar.Drop(p, it.Power, false)
		}
	case m.Vendor.Visible && m.Vendor.SlotsArea.Contains(p):
		if inv.Sell(stack) {
			m.Vendor.Add(stack)
		} else {
			inv.ItemReturn(stack)
		}
	case m.Stash.Visible && m.Stash.SlotsArea.Contains(p):
		if !m.Stash.Full(stack.Item) && inv.StashAdd(stack) {
			m.deposit(stack, &p)
		} else {
			inv.ItemReturn(stack)
			if m.Stash.Full(stack.Item) {
				m.Notify(gotext.Get("Stash is full."))
			}
		}
	case it.Type == items.ItemQuest:
		inv.ItemReturn(stack)
	default:
		m.DropStack = stack
	}
}

func (m *Manager) dropFromVendor(d *Drag, p image.Point) {
	stack := d.Stack()
	if !m.Inventory.Visible || !m.Inventory.CarriedArea.Contains(p) {
		m.Vendor.ItemReturn(stack)
		return
	}
	m.buy(stack, &p)
}

func (m *Manager) dropFromStash(d *Drag, p image.Point) {
	stack := d.Stack()
	if !m.Inventory.Visible || !m.Inventory.CarriedArea.Contains(p) {
		m.Stash.ItemReturn(stack)
		return
	}
	m.withdraw(stack, &p)
}

// buy moves a stack taken from the vendor into the inventory. Whatever is
// not bought, for lack of room or gold, goes back to the vendor.
func (m *Manager) buy(stack items.ItemStack, at *image.Point) {
	if m.Inventory.Full(stack.Item) {
		m.Vendor.ItemReturn(stack)
		m.Notify(gotext.Get("Inventory is full."))
		return
	}
	left, ok := m.Inventory.Buy(stack, at)
	if !ok {
		m.Vendor.ItemReturn(stack)
		m.Notify(gotext.Get("Not enough gold."))
		return
	}
	if !left.Empty() {
		m.Vendor.ItemReturn(left)
		m.Notify(gotext.Get("Inventory is full."))
	}
}

// deposit moves a stack that already left the inventory into the stash and
// hands back to the inventory whatever the stash cannot hold.
func (m *Manager) deposit(stack items.ItemStack, at *image.Point) {
	if left := m.Stash.Add(stack, at); !left.Empty() {
		m.Inventory.ItemReturn(left)
		m.Notify(gotext.Get("Stash is full."))
	}
}

// withdraw moves a stack taken from the stash into the inventory.
func (m *Manager) withdraw(stack items.ItemStack, at *image.Point) {
	if !m.Inventory.Full(stack.Item) {
		stack = m.Inventory.StashRemove(stack, at)
	}
	if !stack.Empty() {
		m.Stash.ItemReturn(stack)
		m.Notify(gotext.Get("Inventory is full."))
	}
	m.Stash.Updated = true
}
