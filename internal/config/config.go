package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display DisplayConfig       `yaml:"display"`
	UI      UIConfig            `yaml:"ui"`
	Save    SaveConfig          `yaml:"save"`
	Audio   AudioConfig         `yaml:"audio"`
	Locale  LocaleConfig        `yaml:"locale"`
	Keys    map[string][]string `yaml:"keys"`
	Data    DataConfig          `yaml:"data"`
	Player  PlayerConfig        `yaml:"player"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`

	// Menu rectangles in the layout file are authored for this resolution and
	// re-anchored by alignment when the screen differs.
	LayoutWidth  int `yaml:"layout_width"`
	LayoutHeight int `yaml:"layout_height"`
}

type UIConfig struct {
	LayoutFile string `yaml:"layout_file"`
	IconAtlas  string `yaml:"icon_atlas"`
	IconSize   int    `yaml:"icon_size"`
	MenusPause bool   `yaml:"menus_pause"`
}

type SaveConfig struct {
	Dir      string `yaml:"dir"` // empty means the saves directory next to the executable
	SaveHPMP bool   `yaml:"save_hpmp"`
	Slots    int    `yaml:"slots"`
	Slot     int    `yaml:"slot"` // slot selected at startup, 0 starts a new game
}

type AudioConfig struct {
	Enabled    bool   `yaml:"enabled"`
	SampleRate int    `yaml:"sample_rate"`
	OpenSound  string `yaml:"open_sound"`
	CloseSound string `yaml:"close_sound"`
	HeroDir    string `yaml:"hero_dir"`
}

type LocaleConfig struct {
	Dir      string `yaml:"dir"`
	Language string `yaml:"language"`
	Domain   string `yaml:"domain"`
}

type DataConfig struct {
	Items   string `yaml:"items"`
	Powers  string `yaml:"powers"`
	Quests  string `yaml:"quests"`
	MapsDir string `yaml:"maps_dir"`
}

type PlayerConfig struct {
	BaseHP          int   `yaml:"base_hp"`
	BaseMP          int   `yaml:"base_mp"`
	HPPerPhysical   int   `yaml:"hp_per_physical"`
	MPPerMental     int   `yaml:"mp_per_mental"`
	HPPerLevel      int   `yaml:"hp_per_level"`
	MPPerLevel      int   `yaml:"mp_per_level"`
	StartingGold    int   `yaml:"starting_gold"`
	StatPointsLevel int   `yaml:"stat_points_per_level"`
	XPTable         []int `yaml:"xp_table"`
}

var GlobalConfig *Config

// Default returns the built-in configuration. LoadConfig starts from it, so any
// value missing from the file keeps its default.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			WindowTitle:  "Emberhold",
			LayoutWidth:  640,
			LayoutHeight: 480,
		},
		UI: UIConfig{
			LayoutFile: "assets/menus/menus.txt",
			IconAtlas:  "assets/images/icons/icons_small.png",
			IconSize:   32,
		},
		Save: SaveConfig{
			SaveHPMP: true,
			Slots:    4,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			OpenSound:  "assets/soundfx/inventory/inventory_page.ogg",
			CloseSound: "assets/soundfx/inventory/inventory_book.ogg",
			HeroDir:    "assets/soundfx/hero",
		},
		Locale: LocaleConfig{
			Dir:      "assets/locale",
			Language: "en_US",
			Domain:   "default",
		},
		Keys: map[string][]string{
			"cancel":    {"Escape"},
			"accept":    {"Enter"},
			"character": {"C"},
			"inventory": {"I"},
			"powers":    {"P"},
			"log":       {"L"},
			"ctrl":      {"ControlLeft", "ControlRight"},
			"shift":     {"ShiftLeft", "ShiftRight"},
		},
		Data: DataConfig{
			Items:   "assets/items.yaml",
			Powers:  "assets/powers.yaml",
			Quests:  "assets/quests.yaml",
			MapsDir: "assets/maps",
		},
		Player: PlayerConfig{
			BaseHP:          12,
			BaseMP:          12,
			HPPerPhysical:   8,
			MPPerMental:     8,
			HPPerLevel:      2,
			MPPerLevel:      2,
			StatPointsLevel: 1,
			XPTable:         []int{0, 35, 100, 225, 425, 700, 1075, 1600, 2300, 3200},
		},
	}
}

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetLayoutSize returns the resolution the menu layout was authored for,
// falling back to the screen size.
func (c *Config) GetLayoutSize() (int, int) {
	w, h := c.Display.LayoutWidth, c.Display.LayoutHeight
	if w <= 0 {
		w = c.Display.ScreenWidth
	}
	if h <= 0 {
		h = c.Display.ScreenHeight
	}
	return w, h
}

func (c *Config) GetIconSize() int {
	if c.UI.IconSize <= 0 {
		return 32
	}
	return c.UI.IconSize
}

// GetSlotCount returns the number of save slots, 4 unless configured.
func (c *Config) GetSlotCount() int {
	if c.Save.Slots <= 0 {
		return 4
	}
	return c.Save.Slots
}
