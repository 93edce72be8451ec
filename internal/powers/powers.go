package powers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Power is one entry of the static power table.
type Power struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	Icon         int    `yaml:"icon"`
	Description  string `yaml:"description,omitempty"`
	RequiresItem int    `yaml:"requires_item,omitempty"` // 0 when the power needs no item
	// Grid cell inside the powers panel; powers without a cell are not shown there.
	Column        int    `yaml:"column"`
	Row           int    `yaml:"row"`
	InPanel       bool   `yaml:"in_panel"`
	RequiredLevel int    `yaml:"required_level,omitempty"`
	RequiredStat  string `yaml:"required_stat,omitempty"` // physical, mental, offense or defense
	RequiredValue int    `yaml:"required_value,omitempty"`
	Passive       bool   `yaml:"passive,omitempty"`
}

// Manager is the power table, looked up by identifier.
type Manager struct {
	powers  map[int]*Power
	ordered []*Power
}

type powerFile struct {
	Powers []Power `yaml:"powers"`
}

// NewManager builds a table from power definitions, keeping their order.
func NewManager(defs []Power) *Manager {
	m := &Manager{powers: make(map[int]*Power, len(defs))}
	for i := range defs {
		def := defs[i]
		m.powers[def.ID] = &def
		m.ordered = append(m.ordered, &def)
	}
	return m
}

// LoadPowers reads the power table from YAML.
func LoadPowers(filename string) (*Manager, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read powers: %w", err)
	}
	var f powerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse powers: %w", err)
	}
	return NewManager(f.Powers), nil
}

// MustLoadPowers loads the power table or panics.
func MustLoadPowers(filename string) *Manager {
	m, err := LoadPowers(filename)
	if err != nil {
		panic(err)
	}
	return m
}

// Get returns the power for id, or nil.
func (m *Manager) Get(id int) *Power {
	return m.powers[id]
}

// RequiredItem returns the item a power consumes or needs equipped, 0 for none.
func (m *Manager) RequiredItem(id int) int {
	if p := m.powers[id]; p != nil {
		return p.RequiresItem
	}
	return 0
}

// Panel returns the powers shown in the powers panel, in table order.
func (m *Manager) Panel() []*Power {
	var out []*Power
	for _, p := range m.ordered {
		if p.InPanel {
			out = append(out, p)
		}
	}
	return out
}

// Tooltip returns the text lines describing a power, name first.
func (m *Manager) Tooltip(id int) []string {
	p := m.powers[id]
	if p == nil {
		return nil
	}
	lines := []string{p.Name}
	if p.Passive {
		lines = append(lines, "Passive")
	}
	if p.Description != "" {
		lines = append(lines, p.Description)
	}
	return lines
}
