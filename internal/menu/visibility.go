package menu

import (
	"emberhold/internal/audio"
	"emberhold/internal/input"
)

type group int

const (
	groupLeft group = iota
	groupRight
)

// panelGroups are the panels sharing each side of the screen. Opening a
// panel closes the rest of its group. Talker and exit take both sides.
var panelGroups = map[group][]PanelID{
	groupLeft:  {PanelCharacter, PanelLog, PanelVendor, PanelTalker, PanelExit, PanelStash},
	groupRight: {PanelInventory, PanelPowers, PanelTalker, PanelExit},
}

// menuPanels are the panels that count as an open menu and pause the game.
var menuPanels = []PanelID{PanelVendor, PanelTalker, PanelInventory, PanelPowers, PanelCharacter, PanelLog}

// toggleRule binds a hotkey and action-bar button to a panel.
type toggleRule struct {
	panel    PanelID
	action   input.Action
	button   int
	group    group
	humanoid bool // only while the player is in humanoid form
}

var toggleRules = []toggleRule{
	{PanelInventory, input.Inventory, ButtonInventory, groupRight, false},
	{PanelPowers, input.Powers, ButtonPowers, groupRight, true},
	{PanelCharacter, input.Character, ButtonCharacter, groupLeft, true},
	{PanelLog, input.Log, ButtonLog, groupLeft, false},
}

func (m *Manager) play(name string) {
	if m.sounds != nil {
		m.sounds.Play(name)
	}
}

// closeGroup hides every panel of g. Nothing closes while dragging.
func (m *Manager) closeGroup(g group, sound bool) {
	if m.drag != nil {
		return
	}
	for _, id := range panelGroups[g] {
		m.panels[id].base().Visible = false
	}
	if sound {
		m.play(audio.SoundClose)
	}
}

// CloseLeft hides the left-side panels.
func (m *Manager) CloseLeft(sound bool) {
	m.closeGroup(groupLeft, sound)
}

// CloseRight hides the right-side panels.
func (m *Manager) CloseRight(sound bool) {
	m.closeGroup(groupRight, sound)
}

// CloseAll hides every menu panel and forgets the vendor's conversation.
func (m *Manager) CloseAll(sound bool) {
	if m.drag != nil {
		return
	}
	m.closeGroup(groupLeft, sound)
	m.closeGroup(groupRight, false)
	m.Vendor.TalkerVisible = false
}

// anyOpen reports whether a grouped panel other than the exit dialog is visible.
func (m *Manager) anyOpen() bool {
	for _, g := range []group{groupLeft, groupRight} {
		for _, id := range panelGroups[g] {
			if id != PanelExit && m.panels[id].base().Visible {
				return true
			}
		}
	}
	return false
}

// enforcePairing closes the vendor, and its conversation, once the
// inventory is no longer showing.
func (m *Manager) enforcePairing() {
	if !m.Vendor.Visible || m.Inventory.Visible {
		return
	}
	m.CloseLeft(true)
	if m.Vendor.TalkerVisible {
		m.CloseRight(true)
		m.Vendor.TalkerVisible = false
	}
}

// releaseKeyLock clears the key lock once every toggle key is up.
func (m *Manager) releaseKeyLock(in *input.State) {
	if !m.session.KeyLock {
		return
	}
	for _, r := range toggleRules {
		if in.Pressing[r.action] {
			return
		}
	}
	m.session.KeyLock = false
}

// checkCancel handles the cancel key: close every open menu, or toggle the
// exit dialog when none is open.
func (m *Manager) checkCancel(in *input.State) {
	if !in.Fresh(input.Cancel) || m.session.KeyLock || m.drag != nil || !m.stats.Interruptible() {
		return
	}
	in.Lock[input.Cancel] = true
	m.session.KeyLock = true
	if m.anyOpen() {
		m.CloseAll(true)
		return
	}
	m.Exit.Visible = !m.Exit.Visible
}

// applyToggles flips the panels whose hotkey was pressed or whose action-bar
// button was clicked. Toggles are ignored while dragging.
func (m *Manager) applyToggles(in *input.State, clicked [buttonCount]bool) {
	if m.drag != nil {
		return
	}
	for _, r := range toggleRules {
		pressed := in.Pressing[r.action] && !m.session.KeyLock
		if !pressed && !clicked[r.button] {
			continue
		}
		if r.humanoid && !m.stats.Humanoid {
			continue
		}
		m.session.KeyLock = true
		p := m.panels[r.panel].base()
		if p.Visible {
			m.closeGroup(r.group, true)
			continue
		}
		m.closeGroup(r.group, false)
		p.RequiresAttention = false
		p.Visible = true
		m.play(audio.SoundOpen)
	}
}

// refreshMenusOpen recomputes the menus-open and pause flags.
func (m *Manager) refreshMenusOpen() {
	open := false
	for _, id := range menuPanels {
		if m.panels[id].base().Visible {
			open = true
			break
		}
	}
	m.session.MenusOpen = open
	m.session.Pause = open && m.cfg.UI.MenusPause
}
