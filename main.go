package main

import (
	"errors"
	"log"

	"emberhold/internal/audio"
	"emberhold/internal/campaign"
	"emberhold/internal/character"
	"emberhold/internal/config"
	"emberhold/internal/game"
	"emberhold/internal/graphics"
	"emberhold/internal/input"
	"emberhold/internal/items"
	"emberhold/internal/menu"
	"emberhold/internal/powers"
	"emberhold/internal/quests"
	"emberhold/internal/save"
	"emberhold/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Language, cfg.Locale.Domain)

	// Static tables
	itemTable := items.MustLoadItems(cfg.Data.Items)
	powerTable := powers.MustLoadPowers(cfg.Data.Powers)
	icons := graphics.MustLoadIcons(cfg.UI.IconAtlas)

	var questLog *quests.QuestManager
	if questCfg, err := quests.LoadQuestConfig(cfg.Data.Quests); err != nil {
		log.Printf("Warning: %v", err)
	} else {
		questLog = quests.NewQuestManager(questCfg)
	}

	var sounds *audio.Bank
	if cfg.Audio.Enabled {
		sounds = audio.NewBank(cfg.Audio.SampleRate)
		if err := sounds.Load(audio.SoundOpen, cfg.Audio.OpenSound); err != nil {
			log.Printf("Warning: %v", err)
		}
		if err := sounds.Load(audio.SoundClose, cfg.Audio.CloseSound); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	stats := character.NewStatBlock(cfg)
	wm := world.NewWorldManager(cfg.Data.MapsDir)
	camp := campaign.New()
	menus := menu.NewManager(menu.Deps{
		Config: cfg,
		Stats:  stats,
		Items:  itemTable,
		Powers: powerTable,
		Icons:  icons,
		Sounds: sounds,
	})
	menus.Inventory.Gold = cfg.Player.StartingGold
	store := save.New(cfg, save.Deps{
		Stats:    stats,
		Menus:    menus,
		World:    wm,
		Campaign: camp,
		Sounds:   sounds,
	})

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, game.Deps{
		Stats:    stats,
		Menus:    menus,
		World:    wm,
		Campaign: camp,
		Store:    store,
		Powers:   powerTable,
		Quests:   questLog,
		Input:    input.NewEbitenSource(cfg.Keys),
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, game.ErrExit) {
		log.Fatal(err)
	}
}
