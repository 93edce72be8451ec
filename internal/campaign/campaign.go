// Package campaign tracks the named status flags set by quests and events.
package campaign

import "strings"

// Manager holds the set of campaign statuses in the order they were set.
type Manager struct {
	statuses []string
}

// New returns an empty campaign.
func New() *Manager {
	return &Manager{}
}

// Check reports whether status is set.
func (m *Manager) Check(status string) bool {
	for _, s := range m.statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Set records status. Setting an existing status is a no-op.
func (m *Manager) Set(status string) {
	status = strings.TrimSpace(status)
	if status == "" || m.Check(status) {
		return
	}
	m.statuses = append(m.statuses, status)
}

// Unset removes status.
func (m *Manager) Unset(status string) {
	for i, s := range m.statuses {
		if s == status {
			m.statuses = append(m.statuses[:i], m.statuses[i+1:]...)
			return
		}
	}
}

// GetAll returns every status as one comma-joined blob.
func (m *Manager) GetAll() string {
	return strings.Join(m.statuses, ",")
}

// SetAll replaces every status from a blob produced by GetAll.
func (m *Manager) SetAll(all string) {
	m.statuses = nil
	for _, s := range strings.Split(all, ",") {
		m.Set(s)
	}
}
