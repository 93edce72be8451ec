package items

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ItemType groups items by how the menus treat them.
type ItemType string

const (
	ItemGear       ItemType = "gear"
	ItemConsumable ItemType = "consumable"
	ItemQuest      ItemType = "quest"
	ItemArtifact   ItemType = "artifact"
	ItemOther      ItemType = "other"
)

// Equipment slot types. An item may only be equipped into a slot of its own type.
const (
	SlotMain     = "main"
	SlotBody     = "body"
	SlotOff      = "off"
	SlotArtifact = "artifact"
)

// EquipmentSlots is the fixed order of the hero's equipment slots.
var EquipmentSlots = []string{SlotMain, SlotBody, SlotOff, SlotArtifact}

// VendorRatio divides an item's price to get what a vendor pays for it.
const VendorRatio = 4

type Item struct {
	ID          int            `yaml:"id"`
	Name        string         `yaml:"name"`
	Type        ItemType       `yaml:"type"`
	Icon        int            `yaml:"icon"`
	Price       int            `yaml:"price"`
	SellPrice   int            `yaml:"sell_price,omitempty"`
	MaxQuantity int            `yaml:"max_quantity,omitempty"`
	Slot        string         `yaml:"slot,omitempty"`
	Power       int            `yaml:"power,omitempty"` // power granted on use, 0 for none
	Bonus       map[string]int `yaml:"bonus,omitempty"`
	Description string         `yaml:"description,omitempty"`
}

// HasPower reports whether the item grants a power that can sit on the action bar.
func (it *Item) HasPower() bool {
	return it.Power > 0
}

// StackLimit returns how many of the item fit in one slot.
func (it *Item) StackLimit() int {
	if it.MaxQuantity <= 0 {
		return 1
	}
	return it.MaxQuantity
}

// VendorPrice returns what a vendor pays for one unit.
func (it *Item) VendorPrice() int {
	if it.SellPrice > 0 {
		return it.SellPrice
	}
	if it.Price <= 0 {
		return 0
	}
	p := it.Price / VendorRatio
	if p == 0 {
		p = 1
	}
	return p
}

// ItemStack is an item identifier with a quantity. Stacks are values and are
// copied between storages and the drag payload.
type ItemStack struct {
	Item     int
	Quantity int
}

// Empty reports whether the stack holds nothing.
func (s ItemStack) Empty() bool {
	return s.Item <= 0 || s.Quantity <= 0
}

// Manager is the static item table, looked up by identifier.
type Manager struct {
	items   map[int]*Item
	unknown Item
}

type itemFile struct {
	Items []Item `yaml:"items"`
}

// NewManager builds a table from item definitions.
func NewManager(defs []Item) *Manager {
	m := &Manager{
		items:   make(map[int]*Item, len(defs)),
		unknown: Item{Name: "Unknown", Type: ItemOther},
	}
	for i := range defs {
		def := defs[i]
		if def.Type == "" {
			def.Type = ItemOther
		}
		m.items[def.ID] = &def
	}
	return m
}

// LoadItems reads the item table from YAML.
func LoadItems(filename string) (*Manager, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	var f itemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	return NewManager(f.Items), nil
}

// MustLoadItems loads the item table or panics.
func MustLoadItems(filename string) *Manager {
	m, err := LoadItems(filename)
	if err != nil {
		panic(err)
	}
	return m
}

// Get returns the definition for id. Unknown ids resolve to a placeholder
// definition of type ItemOther so callers never see nil.
func (m *Manager) Get(id int) *Item {
	if it, ok := m.items[id]; ok {
		return it
	}
	return &m.unknown
}

// Lookup returns the definition for id and whether it exists.
func (m *Manager) Lookup(id int) (*Item, bool) {
	it, ok := m.items[id]
	return it, ok
}

// IDs returns all known item ids in ascending order.
func (m *Manager) IDs() []int {
	ids := make([]int, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Tooltip returns the text lines describing a stack. The item name is always
// the first line.
func (m *Manager) Tooltip(stack ItemStack, vendor bool) []string {
	if stack.Empty() {
		return nil
	}
	it := m.Get(stack.Item)
	lines := []string{it.Name}
	if stack.Quantity > 1 {
		lines[0] = fmt.Sprintf("%s (%d)", it.Name, stack.Quantity)
	}
	switch it.Type {
	case ItemQuest:
		lines = append(lines, "Quest Item")
	case ItemConsumable:
		lines = append(lines, "Consumable")
	case ItemGear, ItemArtifact:
		if it.Slot != "" {
			lines = append(lines, "Slot: "+it.Slot)
		}
	}
	keys := make([]string, 0, len(it.Bonus))
	for k := range it.Bonus {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("+%d %s", it.Bonus[k], k))
	}
	if it.Description != "" {
		lines = append(lines, it.Description)
	}
	if vendor {
		lines = append(lines, fmt.Sprintf("Buy Price: %d gold", it.Price*stack.Quantity))
	} else if it.Price > 0 && it.Type != ItemQuest {
		lines = append(lines, fmt.Sprintf("Sell Price: %d gold", it.VendorPrice()*stack.Quantity))
	}
	return lines
}
