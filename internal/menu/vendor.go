package menu

import (
	"image"
	"log"

	"emberhold/internal/input"
	"emberhold/internal/items"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// Vendor tabs.
const (
	VendorBuy = iota
	VendorSell
)

const (
	vendorCols  = 8
	VendorSlots = 40
)

// Vendor is an NPC's shop: its stock on the buy tab and what the player sold
// this visit on the sell (buyback) tab.
type Vendor struct {
	Menu
	NPCName string
	Stock   *items.Storage
	Buyback *items.Storage

	// SlotsArea is the grid the current tab's stock is shown in.
	SlotsArea Rect
	// TalkerVisible remembers that the vendor was opened from a conversation.
	TalkerVisible bool

	items    *items.Manager
	tab      int
	tabs     [2]Rect
	slots    []Rect
	dragTab  int
	dragSlot int
	iconSize int
}

func newVendor(im *items.Manager, iconSize int) *Vendor {
	return &Vendor{
		Stock:    items.NewStorage(VendorSlots, im),
		items:    im,
		dragSlot: -1,
		iconSize: iconSize,
	}
}

func (v *Vendor) update() {
	x := v.area.X + panelPadding
	y := v.area.Y + panelPadding
	w := vendorCols * v.iconSize / 2
	v.tabs[VendorBuy] = Rect{X: x, Y: y, W: w, H: 20}
	v.tabs[VendorSell] = Rect{X: x + w, Y: y, W: w, H: 20}
	sy := y + 20 + panelPadding
	rows := (VendorSlots + vendorCols - 1) / vendorCols
	v.SlotsArea = Rect{X: x, Y: sy, W: vendorCols * v.iconSize, H: rows * v.iconSize}
	v.slots = gridSlots(x, sy, vendorCols, VendorSlots, v.iconSize)
}

// initBuyback sizes the buyback stock. It runs once, after layout.
func (v *Vendor) initBuyback() {
	v.Buyback = items.NewStorage(VendorSlots, v.items)
}

// Tab returns the selected tab.
func (v *Vendor) Tab() int {
	return v.tab
}

// SetTab selects a tab.
func (v *Vendor) SetTab(tab int) {
	if tab == VendorBuy || tab == VendorSell {
		v.tab = tab
	}
}

func (v *Vendor) current() *items.Storage {
	if v.tab == VendorSell {
		return v.Buyback
	}
	return v.Stock
}

// TabsLogic switches to the tab under p.
func (v *Vendor) TabsLogic(p image.Point) {
	for i, r := range v.tabs {
		if r.Contains(p) {
			v.SetTab(i)
		}
	}
}

// SetStock fills the buy tab and clears the buyback for a new visit.
func (v *Vendor) SetStock(npc string, stock []items.ItemStack) {
	v.NPCName = npc
	v.Stock.Clear()
	for _, st := range stock {
		v.Stock.Add(st, -1)
	}
	v.Buyback.Clear()
	v.tab = VendorBuy
}

// Click takes the stack under p from the current tab.
func (v *Vendor) Click(p image.Point) items.ItemStack {
	slot := slotAt(v.slots, p)
	if slot < 0 {
		return items.ItemStack{}
	}
	stack := v.current().Take(slot)
	if !stack.Empty() {
		v.dragTab = v.tab
		v.dragSlot = slot
	}
	return stack
}

// ItemReturn puts a stack back into the tab and slot it was taken from.
func (v *Vendor) ItemReturn(stack items.ItemStack) {
	s := v.Stock
	if v.dragTab == VendorSell {
		s = v.Buyback
	}
	s.Add(stack, v.dragSlot)
	v.dragSlot = -1
}

// Add takes a sold stack into the buyback and returns the quantity that did
// not fit. The seller has already been paid, so that part is discarded.
func (v *Vendor) Add(stack items.ItemStack) int {
	left := v.Buyback.Add(stack, -1)
	if left > 0 {
		log.Printf("menu: buyback full, discarded %d of item %d", left, stack.Item)
	}
	return left
}

// CheckTooltip describes the stack under p with its buy price.
func (v *Vendor) CheckTooltip(p image.Point) TooltipData {
	slot := slotAt(v.slots, p)
	if slot < 0 {
		return TooltipData{}
	}
	return TooltipData{Lines: v.items.Tooltip(v.current().At(slot), true)}
}

func (v *Vendor) Logic(*input.State) {}

func (v *Vendor) Render(dst *ebiten.Image, pt *painter) {
	if !v.Visible {
		return
	}
	pt.frame(dst, v.area)
	for i, label := range []string{gotext.Get("Buy"), gotext.Get("Sell")} {
		if i == v.tab {
			drawFilledRect(dst, v.tabs[i], colorTabActive)
		}
		drawRectBorder(dst, v.tabs[i], colorBorder)
		pt.centered(dst, label, v.tabs[i])
	}
	renderSlots(dst, pt, v.items, v.slots, v.current())
}
