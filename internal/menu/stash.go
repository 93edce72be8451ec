package menu

import (
	"image"

	"emberhold/internal/input"
	"emberhold/internal/items"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

const (
	stashCols  = 8
	StashSlots = 64
)

// Stash is the item storage shared by every save slot.
type Stash struct {
	Menu
	Stock *items.Storage
	// SlotsArea is the grid of stash slots.
	SlotsArea Rect
	// Updated is raised whenever the contents change and cleared once saved.
	Updated bool

	items    *items.Manager
	slots    []Rect
	dragSlot int
	iconSize int
}

func newStash(im *items.Manager, iconSize int) *Stash {
	return &Stash{
		Stock:    items.NewStorage(StashSlots, im),
		items:    im,
		dragSlot: -1,
		iconSize: iconSize,
	}
}

func (s *Stash) update() {
	x := s.area.X + panelPadding
	y := s.area.Y + panelPadding + textLineHeight
	rows := (StashSlots + stashCols - 1) / stashCols
	s.SlotsArea = Rect{X: x, Y: y, W: stashCols * s.iconSize, H: rows * s.iconSize}
	s.slots = gridSlots(x, y, stashCols, StashSlots, s.iconSize)
}

// Click takes the stack under p.
func (s *Stash) Click(p image.Point) items.ItemStack {
	slot := slotAt(s.slots, p)
	if slot < 0 {
		return items.ItemStack{}
	}
	stack := s.Stock.Take(slot)
	if !stack.Empty() {
		s.dragSlot = slot
	}
	return stack
}

// ItemReturn puts a dragged stack back where it came from.
func (s *Stash) ItemReturn(stack items.ItemStack) {
	s.Stock.Add(stack, s.dragSlot)
	s.dragSlot = -1
}

// Add stores a stack, into the slot under at when given, and returns the
// part that did not fit.
func (s *Stash) Add(stack items.ItemStack, at *image.Point) items.ItemStack {
	slot := -1
	if at != nil {
		slot = slotAt(s.slots, *at)
	}
	stack.Quantity = s.Stock.Add(stack, slot)
	s.Updated = true
	if stack.Quantity <= 0 {
		return items.ItemStack{}
	}
	return stack
}

// Full reports whether the stash has no room for item.
func (s *Stash) Full(item int) bool {
	return s.Stock.Full(item)
}

// CheckTooltip describes the stack under p.
func (s *Stash) CheckTooltip(p image.Point) TooltipData {
	slot := slotAt(s.slots, p)
	if slot < 0 {
		return TooltipData{}
	}
	return TooltipData{Lines: s.items.Tooltip(s.Stock.At(slot), false)}
}

func (s *Stash) Logic(*input.State) {}

func (s *Stash) Render(dst *ebiten.Image, pt *painter) {
	if !s.Visible {
		return
	}
	pt.frame(dst, s.area)
	pt.label(dst, gotext.Get("Shared Stash"), s.area.X+panelPadding, s.area.Y+panelPadding/2)
	renderSlots(dst, pt, s.items, s.slots, s.Stock)
}
