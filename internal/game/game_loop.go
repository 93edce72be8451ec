package game

import (
	"log"

	"emberhold/internal/input"
	"emberhold/internal/menu"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// GameLoop manages the main game update and render cycle
type GameLoop struct {
	game   *Game
	source input.Source
	input  input.State
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *Game, source input.Source) *GameLoop {
	return &GameLoop{game: game, source: source}
}

// Update handles all game logic updates for one frame
func (gl *GameLoop) Update() error {
	g := gl.game
	if gl.source != nil {
		gl.input.Poll(gl.source)
	}

	g.menus.Update(&gl.input)

	if stack, ok := g.menus.TakeDropStack(); ok {
		g.world.DropLoot(stack)
	}
	gl.usePowers()
	if !g.menus.Paused() {
		gl.updateEffects()
	}
	g.updateQuests()
	g.world.ExecuteTeleport()
	g.menus.MiniMap.MapName = g.world.CurrentMapKey

	if g.menus.Stash.Updated {
		if err := g.store.SaveStash(); err != nil {
			log.Printf("game: saving stash: %v", err)
		}
	}

	if g.menus.Done() {
		if err := g.Save(); err != nil {
			log.Printf("game: saving on exit: %v", err)
		}
		return ErrExit
	}
	return nil
}

// usePowers announces the powers fired by items used from the inventory.
func (gl *GameLoop) usePowers() {
	g := gl.game
	for _, id := range g.menus.Inventory.TakeActivated() {
		if g.powers == nil {
			continue
		}
		if p := g.powers.Get(id); p != nil {
			g.menus.Notify(gotext.Get("Used %s", p.Name))
		}
	}
}

// updateEffects counts down active effects and the transformation timer.
// Indefinite durations (-1) never expire.
func (gl *GameLoop) updateEffects() {
	s := gl.game.stats
	kept := s.Effects[:0]
	for _, e := range s.Effects {
		if e.Duration > 0 {
			e.Duration--
			if e.Duration == 0 {
				continue
			}
		}
		kept = append(kept, e)
	}
	s.Effects = kept

	if s.TransformDuration > 0 {
		s.TransformDuration--
		if s.TransformDuration == 0 {
			s.TransformType = "untransform"
		}
	}
	if s.TransformType == "untransform" && s.Transformed {
		s.Transformed = false
		s.TransformType = ""
		s.Humanoid = true
		gl.game.menus.ActionBar.Untransform()
	}
}

// Transform turns the hero into kind for duration frames (-1 for
// indefinite), swapping in the form's powers on the action bar.
func (g *Game) Transform(kind string, duration int, hotkeys [menu.SlotCount]int) {
	s := g.stats
	if s.Transformed {
		return
	}
	s.Transformed = true
	s.TransformType = kind
	s.TransformDuration = duration
	s.Humanoid = false
	g.menus.CloseAll(false)
	g.menus.ActionBar.Transform(hotkeys)
}

// Draw renders the frame: background, then every menu on top.
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	gl.game.menus.Render(screen)
}
