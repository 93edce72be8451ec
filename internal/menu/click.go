package menu

import (
	"image"

	"emberhold/internal/input"
	"emberhold/internal/items"

	"github.com/leonelquinteros/gotext"
)

// clickRoute is one entry of the primary-click dispatch table.
type clickRoute struct {
	panel PanelID
	hit   func(p image.Point) bool
	click func(in *input.State, p image.Point)
}

// clickRoutes lists the click targets in priority order.
func (m *Manager) clickRoutes() []clickRoute {
	within := func(b *Menu) func(image.Point) bool {
		return func(p image.Point) bool { return b.Visible && b.Contains(p) }
	}
	return []clickRoute{
		{PanelExit, within(&m.Exit.Menu), m.clickExit},
		{PanelVendor, within(&m.Vendor.Menu), m.clickVendor},
		{PanelStash, within(&m.Stash.Menu), m.clickStash},
		{PanelLog, within(&m.Log.Menu), m.clickLog},
		{PanelInventory, within(&m.Inventory.Menu), m.clickInventory},
		{PanelPowers, within(&m.Powers.Menu), m.clickPowers},
		{PanelActionBar, func(p image.Point) bool { return m.ActionBar.Visible && m.ActionBar.InSlots(p) }, m.clickActionBar},
	}
}

// routeClicks dispatches a fresh primary press to every panel under the
// pointer. New clicks are ignored while dragging.
func (m *Manager) routeClicks(in *input.State) {
	if m.drag != nil || !in.Fresh(input.Main1) {
		return
	}
	p := in.Mouse
	for _, r := range m.routes {
		if r.hit(p) {
			r.click(in, p)
		}
	}
}

// routeSecondary activates the carried item under the pointer.
func (m *Manager) routeSecondary(in *input.State) {
	if m.drag != nil || !in.Fresh(input.Main2) {
		return
	}
	p := in.Mouse
	switch {
	case m.Exit.Visible && m.Exit.Contains(p):
		in.Lock[input.Main2] = true
	case m.Inventory.Visible && m.Inventory.Contains(p):
		in.Lock[input.Main2] = true
		if m.Inventory.CarriedArea.Contains(p) {
			m.Inventory.Activate(p)
		}
	}
}

func (m *Manager) clickExit(in *input.State, _ image.Point) {
	in.Lock[input.Main1] = true
}

func (m *Manager) clickVendor(in *input.State, p image.Point) {
	in.Lock[input.Main1] = true
	m.Vendor.TabsLogic(p)
	stack := m.Vendor.Click(p)
	if stack.Empty() {
		return
	}
	if in.Pressing[input.Ctrl] {
		m.buy(stack, nil)
		return
	}
	m.beginDrag(DragFromVendor, ItemPayload{Stack: stack}, p)
}

func (m *Manager) clickStash(in *input.State, p image.Point) {
	in.Lock[input.Main1] = true
	stack := m.Stash.Click(p)
	if stack.Empty() {
		return
	}
	if in.Pressing[input.Ctrl] {
		m.withdraw(stack, nil)
		return
	}
	m.beginDrag(DragFromStash, ItemPayload{Stack: stack}, p)
}

func (m *Manager) clickLog(in *input.State, p image.Point) {
	in.Lock[input.Main1] = true
	m.Log.TabsLogic(p)
}

func (m *Manager) clickInventory(in *input.State, p image.Point) {
	in.Lock[input.Main1] = true
	if m.Vendor.Visible {
		m.Vendor.SetTab(VendorSell)
	}
	stack := m.Inventory.Click(p)
	if stack.Empty() {
		return
	}
	if !in.Pressing[input.Ctrl] {
		m.beginDrag(DragFromInventory, ItemPayload{Stack: stack}, p)
		return
	}
	switch {
	case m.Vendor.Visible:
		if m.Inventory.Sell(stack) {
			m.Vendor.Add(stack)
		} else {
			m.Inventory.ItemReturn(stack)
		}
	case m.Stash.Visible:
		if m.Stash.Full(stack.Item) {
			m.Inventory.ItemReturn(stack)
			m.Notify(gotext.Get("Stash is full."))
		} else if m.Inventory.StashAdd(stack) {
			m.deposit(stack, nil)
		} else {
			m.Inventory.ItemReturn(stack)
		}
	default:
		m.Inventory.ItemReturn(stack)
	}
}

func (m *Manager) clickPowers(in *input.State, p image.Point) {
	in.Lock[input.Main1] = true
	m.Powers.UnlockClick(p)
	if id := m.Powers.Click(p); id > 0 {
		m.beginDrag(DragFromPowers, PowerPayload{Power: id}, p)
	}
}

func (m *Manager) clickActionBar(in *input.State, p image.Point) {
	in.Lock[input.Main1] = true
	if in.Pressing[input.Ctrl] {
		if !m.stats.Transformed {
			m.ActionBar.Remove(p)
		}
		return
	}
	if id := m.ActionBar.CheckDrag(p); id > 0 {
		m.beginDrag(DragFromActionBar, PowerPayload{Power: id}, p)
	}
}

// TakeDropStack returns and clears the stack waiting to be dropped into the world.
func (m *Manager) TakeDropStack() (items.ItemStack, bool) {
	stack := m.DropStack
	m.DropStack = items.ItemStack{}
	return stack, !stack.Empty()
}
