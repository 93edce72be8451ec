// Package input keeps the per-tick input state the menus read: which actions
// are held, which are locked by a consumer, and where the pointer is.
package input

import (
	"image"
	"strings"
)

// Action is a bindable input.
type Action int

const (
	Cancel Action = iota
	Accept
	Main1 // primary pointer button
	Main2 // secondary pointer button
	Ctrl
	Shift
	Character
	Inventory
	Powers
	Log
	ActionCount
)

var actionNames = [ActionCount]string{
	Cancel:    "cancel",
	Accept:    "accept",
	Main1:     "main1",
	Main2:     "main2",
	Ctrl:      "ctrl",
	Shift:     "shift",
	Character: "character",
	Inventory: "inventory",
	Powers:    "powers",
	Log:       "log",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a binding name from config.yaml to an action.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// Source reports raw device state for one frame.
type Source interface {
	Pressed(a Action) bool
	Cursor() (x, y int)
}

// State is the input seen by the menus during one tick. A consumer that acts
// on a press sets Lock so the same press is not handled again; the lock is
// released once the action is no longer held.
type State struct {
	Pressing [ActionCount]bool
	Lock     [ActionCount]bool
	Mouse    image.Point
}

// Poll refreshes the state from src.
func (s *State) Poll(src Source) {
	for a := Action(0); a < ActionCount; a++ {
		s.Set(a, src.Pressed(a))
	}
	x, y := src.Cursor()
	s.Mouse = image.Pt(x, y)
}

// Set records whether a is held, releasing its lock when it is not.
func (s *State) Set(a Action, pressed bool) {
	s.Pressing[a] = pressed
	if !pressed {
		s.Lock[a] = false
	}
}

// Press marks a as held.
func (s *State) Press(a Action) {
	s.Set(a, true)
}

// Release marks a as released.
func (s *State) Release(a Action) {
	s.Set(a, false)
}

// MoveMouse sets the pointer position.
func (s *State) MoveMouse(x, y int) {
	s.Mouse = image.Pt(x, y)
}

// Fresh reports whether a is held and not yet locked.
func (s *State) Fresh(a Action) bool {
	return s.Pressing[a] && !s.Lock[a]
}

// Consume locks a and reports true when it was a fresh press.
func (s *State) Consume(a Action) bool {
	if !s.Fresh(a) {
		return false
	}
	s.Lock[a] = true
	return true
}
