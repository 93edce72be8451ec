package game

import (
	"errors"
	"image/color"
	"log"

	"emberhold/internal/campaign"
	"emberhold/internal/character"
	"emberhold/internal/config"
	"emberhold/internal/input"
	"emberhold/internal/menu"
	"emberhold/internal/powers"
	"emberhold/internal/quests"
	"emberhold/internal/save"
	"emberhold/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// ErrExit is returned from the game loop to request a clean exit
var ErrExit = errors.New("exit game")

var backgroundColor = color.RGBA{16, 16, 24, 255}

// Deps are the collaborators the game loop drives each frame.
type Deps struct {
	Stats    *character.StatBlock
	Menus    *menu.Manager
	World    *world.WorldManager
	Campaign *campaign.Manager
	Store    *save.Store
	Powers   *powers.Manager
	Quests   *quests.QuestManager // may be nil
	Input    input.Source
}

// Game implements ebiten.Game on top of the menus, the world and the save store.
type Game struct {
	config   *config.Config
	stats    *character.StatBlock
	menus    *menu.Manager
	world    *world.WorldManager
	campaign *campaign.Manager
	store    *save.Store
	powers   *powers.Manager
	quests   *quests.QuestManager

	// campaign blob the quest log was last derived from
	questStatuses string

	gameLoop *GameLoop

	screenW, screenH int
}

// NewGame wires the collaborators together and restores the selected save
// slot. Without a slot only the shared stash is loaded.
func NewGame(cfg *config.Config, d Deps) *Game {
	g := &Game{
		config:   cfg,
		stats:    d.Stats,
		menus:    d.Menus,
		world:    d.World,
		campaign: d.Campaign,
		store:    d.Store,
		powers:   d.Powers,
		quests:   d.Quests,
		screenW:  cfg.GetScreenWidth(),
		screenH:  cfg.GetScreenHeight(),
	}
	g.gameLoop = NewGameLoop(g, d.Input)
	g.restore()
	return g
}

func (g *Game) restore() {
	defer g.syncQuests()
	if g.store.HasSlot() && g.store.Exists(g.store.Slot) {
		if err := g.store.LoadGame(); err != nil {
			log.Printf("game: restoring slot %d: %v", g.store.Slot, err)
		}
		g.world.ExecuteTeleport()
		return
	}
	if err := g.store.LoadStash(); err != nil {
		log.Printf("game: no stash loaded: %v", err)
	}
}

// syncQuests rebuilds the quest log from the campaign without announcing or
// rewarding anything.
func (g *Game) syncQuests() {
	if g.quests == nil {
		return
	}
	g.quests.Sync(g.campaign)
	g.questStatuses = g.campaign.GetAll()
	g.fillQuestLog()
}

func (g *Game) fillQuestLog() {
	g.menus.Log.Clear(menu.LogQuests)
	for _, e := range g.quests.Entries() {
		g.menus.Log.Add(e, menu.LogQuests)
	}
}

// updateQuests announces quests the campaign has started or finished since
// the last frame and pays out completion rewards.
func (g *Game) updateQuests() {
	if g.quests == nil {
		return
	}
	all := g.campaign.GetAll()
	if all == g.questStatuses {
		return
	}
	g.questStatuses = all
	for _, q := range g.quests.Refresh(g.campaign) {
		def := q.Definition
		if q.Status != quests.QuestStatusCompleted {
			g.menus.Notify(gotext.Get("New quest: %s", def.Name))
			continue
		}
		g.menus.Notify(gotext.Get("Quest completed: %s", def.Name))
		g.menus.Inventory.Gold += def.Rewards.Gold
		if def.Rewards.Experience > 0 {
			g.stats.AddXP(def.Rewards.Experience)
		}
	}
	g.fillQuestLog()
}

func (g *Game) Update() error {
	return g.gameLoop.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.gameLoop.Draw(screen)
}

// Layout keeps the configured resolution unless the window is resizable, in
// which case the menus are re-anchored to the new size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if !g.config.Display.Resizable {
		return g.config.GetScreenWidth(), g.config.GetScreenHeight()
	}
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.menus.Resize(outsideWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}

// Save writes the current slot. Having no slot selected is not an error here.
func (g *Game) Save() error {
	err := g.store.SaveGame()
	if errors.Is(err, save.ErrNoSlot) {
		return g.store.SaveStash()
	}
	return err
}
