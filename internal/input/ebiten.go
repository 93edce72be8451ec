package input

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSource reads keyboard and mouse state from Ebiten using the key
// bindings from config.yaml. The pointer buttons are fixed: left is Main1,
// right is Main2.
type EbitenSource struct {
	bindings [ActionCount][]ebiten.Key
}

// NewEbitenSource builds a source from action name to key name bindings.
// Unknown actions and key names are logged and skipped.
func NewEbitenSource(keys map[string][]string) *EbitenSource {
	src := &EbitenSource{}
	for name, keyNames := range keys {
		a, ok := ParseAction(name)
		if !ok {
			log.Printf("input: unknown action %q in key bindings", name)
			continue
		}
		for _, kn := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				log.Printf("input: unknown key %q for %s: %v", kn, name, err)
				continue
			}
			src.bindings[a] = append(src.bindings[a], k)
		}
	}
	return src
}

func (e *EbitenSource) Pressed(a Action) bool {
	switch a {
	case Main1:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case Main2:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	}
	for _, k := range e.bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (e *EbitenSource) Cursor() (int, int) {
	return ebiten.CursorPosition()
}
