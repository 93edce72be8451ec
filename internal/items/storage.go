package items

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"emberhold/internal/fileparse"
)

// ErrLengthMismatch is returned when an item list and its quantity list differ in length.
var ErrLengthMismatch = errors.New("item and quantity lists differ in length")

// Storage is a fixed number of item slots.
type Storage struct {
	Slots []ItemStack
	items *Manager
}

// NewStorage returns an empty storage with size slots.
func NewStorage(size int, items *Manager) *Storage {
	return &Storage{Slots: make([]ItemStack, size), items: items}
}

// Len returns the number of slots.
func (s *Storage) Len() int {
	return len(s.Slots)
}

// At returns the stack in slot i, or an empty stack when i is out of range.
func (s *Storage) At(i int) ItemStack {
	if i < 0 || i >= len(s.Slots) {
		return ItemStack{}
	}
	return s.Slots[i]
}

// Take empties slot i and returns what it held.
func (s *Storage) Take(i int) ItemStack {
	if i < 0 || i >= len(s.Slots) {
		return ItemStack{}
	}
	stack := s.Slots[i]
	s.Slots[i] = ItemStack{}
	return stack
}

// Put places stack into slot i. A matching stack is merged up to the stack
// limit; anything else is swapped out. The returned stack is whatever no
// longer fits in the slot.
func (s *Storage) Put(i int, stack ItemStack) ItemStack {
	if i < 0 || i >= len(s.Slots) || stack.Empty() {
		return stack
	}
	cur := s.Slots[i]
	if cur.Empty() {
		s.Slots[i] = stack
		return ItemStack{}
	}
	if cur.Item == stack.Item {
		limit := s.items.Get(stack.Item).StackLimit()
		room := limit - cur.Quantity
		if room > 0 {
			moved := min(room, stack.Quantity)
			s.Slots[i].Quantity += moved
			stack.Quantity -= moved
		}
		if stack.Quantity <= 0 {
			return ItemStack{}
		}
		return stack
	}
	s.Slots[i] = stack
	return cur
}

// Add places stack in the storage, preferring slot when it is free or holds
// the same item, then existing stacks of the item, then the first empty slot.
// It returns the quantity that did not fit.
func (s *Storage) Add(stack ItemStack, slot int) int {
	if stack.Empty() {
		return 0
	}
	if slot >= 0 && slot < len(s.Slots) {
		cur := s.Slots[slot]
		if cur.Empty() || cur.Item == stack.Item {
			stack = s.Put(slot, stack)
			if stack.Empty() {
				return 0
			}
		}
	}
	limit := s.items.Get(stack.Item).StackLimit()
	for i := range s.Slots {
		if s.Slots[i].Item != stack.Item || s.Slots[i].Quantity >= limit {
			continue
		}
		moved := min(limit-s.Slots[i].Quantity, stack.Quantity)
		s.Slots[i].Quantity += moved
		stack.Quantity -= moved
		if stack.Quantity == 0 {
			return 0
		}
	}
	for i := range s.Slots {
		if s.Slots[i].Empty() {
			s.Slots[i] = stack
			return 0
		}
	}
	return stack.Quantity
}

// Full reports whether no slot can accept another unit of item.
func (s *Storage) Full(item int) bool {
	limit := s.items.Get(item).StackLimit()
	for _, st := range s.Slots {
		if st.Empty() {
			return false
		}
		if st.Item == item && st.Quantity < limit {
			return false
		}
	}
	return true
}

// Room returns how many more units of item fit across all slots.
func (s *Storage) Room(item int) int {
	limit := s.items.Get(item).StackLimit()
	n := 0
	for _, st := range s.Slots {
		switch {
		case st.Empty():
			n += limit
		case st.Item == item && st.Quantity < limit:
			n += limit - st.Quantity
		}
	}
	return n
}

// Count returns the total quantity of item held.
func (s *Storage) Count(item int) int {
	n := 0
	for _, st := range s.Slots {
		if st.Item == item && !st.Empty() {
			n += st.Quantity
		}
	}
	return n
}

// Contains reports whether any slot holds item.
func (s *Storage) Contains(item int) bool {
	return s.Count(item) > 0
}

// Remove takes qty units of item from the storage, last slots first. It
// removes nothing and returns false when fewer than qty are held.
func (s *Storage) Remove(item, qty int) bool {
	if s.Count(item) < qty {
		return false
	}
	for i := len(s.Slots) - 1; i >= 0 && qty > 0; i-- {
		if s.Slots[i].Item != item {
			continue
		}
		taken := min(qty, s.Slots[i].Quantity)
		s.Slots[i].Quantity -= taken
		qty -= taken
		if s.Slots[i].Quantity == 0 {
			s.Slots[i] = ItemStack{}
		}
	}
	return true
}

// Clear empties every slot.
func (s *Storage) Clear() {
	for i := range s.Slots {
		s.Slots[i] = ItemStack{}
	}
}

// Items returns the comma-joined item ids of every slot, 0 for empty slots.
func (s *Storage) Items() string {
	parts := make([]string, len(s.Slots))
	for i, st := range s.Slots {
		if st.Empty() {
			parts[i] = "0"
			continue
		}
		parts[i] = strconv.Itoa(st.Item)
	}
	return strings.Join(parts, ",")
}

// Quantities returns the comma-joined quantities of every slot.
func (s *Storage) Quantities() string {
	parts := make([]string, len(s.Slots))
	for i, st := range s.Slots {
		if st.Empty() {
			parts[i] = "0"
			continue
		}
		parts[i] = strconv.Itoa(st.Quantity)
	}
	return strings.Join(parts, ",")
}

// SetContents replaces the storage from comma-joined item and quantity lists.
// Lists of different lengths are rejected and leave the storage untouched.
// Entries beyond the slot count are ignored.
func (s *Storage) SetContents(itemList, quantityList string) error {
	ids := fileparse.SplitInts(itemList, 0)
	qty := fileparse.SplitInts(quantityList, 0)
	if len(ids) != len(qty) {
		return fmt.Errorf("%w: %d items, %d quantities", ErrLengthMismatch, len(ids), len(qty))
	}
	s.Clear()
	for i := 0; i < len(ids) && i < len(s.Slots); i++ {
		stack := ItemStack{Item: ids[i], Quantity: qty[i]}
		if stack.Empty() {
			continue
		}
		s.Slots[i] = stack
	}
	return nil
}
