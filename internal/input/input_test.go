package input

import "testing"

type fakeSource struct {
	held map[Action]bool
	x, y int
}

func (f fakeSource) Pressed(a Action) bool { return f.held[a] }
func (f fakeSource) Cursor() (int, int)    { return f.x, f.y }

func TestLockReleasedOnKeyUp(t *testing.T) {
	var s State
	s.Press(Cancel)
	if !s.Consume(Cancel) {
		t.Fatalf("first press should be consumed")
	}
	if s.Consume(Cancel) {
		t.Fatalf("held key must stay locked")
	}
	s.Release(Cancel)
	if s.Lock[Cancel] {
		t.Fatalf("release should clear the lock")
	}
	s.Press(Cancel)
	if !s.Fresh(Cancel) {
		t.Fatalf("new press should be fresh")
	}
}

func TestPoll(t *testing.T) {
	var s State
	s.Lock[Main1] = true
	s.Poll(fakeSource{held: map[Action]bool{Inventory: true}, x: 12, y: 34})
	if !s.Pressing[Inventory] || s.Pressing[Main1] {
		t.Fatalf("pressing: %v", s.Pressing)
	}
	if s.Lock[Main1] {
		t.Fatalf("released button should be unlocked")
	}
	if s.Mouse.X != 12 || s.Mouse.Y != 34 {
		t.Fatalf("mouse: got %v", s.Mouse)
	}
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction(" Inventory ")
	if !ok || a != Inventory {
		t.Fatalf("ParseAction: got %v %v", a, ok)
	}
	if _, ok := ParseAction("jump"); ok {
		t.Fatalf("jump is not an action")
	}
	if Powers.String() != "powers" {
		t.Fatalf("String: got %q", Powers.String())
	}
}
