// Package save writes and restores the player's progress as key=value text:
// one save<slot>.txt per slot and a stash.txt shared by every slot.
package save

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"emberhold/internal/campaign"
	"emberhold/internal/character"
	"emberhold/internal/config"
	"emberhold/internal/fileparse"
	"emberhold/internal/menu"
	"emberhold/internal/world"
)

// ErrNoSlot is returned by SaveGame and LoadGame when no usable slot is selected.
var ErrNoSlot = errors.New("no save slot selected")

const stashFile = "stash.txt"

// HeroSounds reloads the sounds that depend on the hero's appearance.
type HeroSounds interface {
	LoadHero(dir, base string)
}

// Deps are the state a Store reads on save and writes on load.
type Deps struct {
	Stats    *character.StatBlock
	Menus    *menu.Manager
	World    *world.WorldManager
	Campaign *campaign.Manager
	Sounds   HeroSounds // may be nil
}

// Store saves and loads one slot plus the shared stash.
type Store struct {
	Dir string
	// Slot is the selected save slot, 1-based. 0 means none.
	Slot int
	// Slots is the number of usable slots. A Slot above it counts as none.
	Slots int

	saveHPMP bool
	heroDir  string
	stats    *character.StatBlock
	menus    *menu.Manager
	world    *world.WorldManager
	camp     *campaign.Manager
	sounds   HeroSounds
}

// New returns a store for the configured save directory and slot.
func New(cfg *config.Config, d Deps) *Store {
	dir := cfg.Save.Dir
	if dir == "" {
		dir = AppSaveDir()
	}
	return &Store{
		Dir:      dir,
		Slot:     cfg.Save.Slot,
		Slots:    cfg.GetSlotCount(),
		saveHPMP: cfg.Save.SaveHPMP,
		heroDir:  cfg.Audio.HeroDir,
		stats:    d.Stats,
		menus:    d.Menus,
		world:    d.World,
		camp:     d.Campaign,
		sounds:   d.Sounds,
	}
}

// HasSlot reports whether the selected slot is one of the usable slots.
func (s *Store) HasSlot() bool {
	return s.Slot > 0 && s.Slot <= s.Slots
}

func (s *Store) checkSlot() error {
	if s.HasSlot() {
		return nil
	}
	if s.Slot > 0 {
		log.Printf("save: slot %d out of range 1-%d", s.Slot, s.Slots)
	}
	return ErrNoSlot
}

// SlotPath returns the file of a save slot.
func (s *Store) SlotPath(slot int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("save%d.txt", slot))
}

// StashPath returns the shared stash file.
func (s *Store) StashPath() string {
	return filepath.Join(s.Dir, stashFile)
}

// Exists reports whether a save slot has been written.
func (s *Store) Exists(slot int) bool {
	_, err := os.Stat(s.SlotPath(slot))
	return err == nil
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// SaveGame writes the selected slot and the stash. Without a usable slot it
// writes nothing and returns ErrNoSlot.
func (s *Store) SaveGame() error {
	if err := s.checkSlot(); err != nil {
		return err
	}
	st := s.stats
	inv := s.menus.Inventory

	var b strings.Builder
	kv := func(key, val string) {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(val)
		b.WriteByte('\n')
	}
	b.WriteString("## emberhold save file ##\n")
	kv("name", st.Name)
	kv("permadeath", boolString(st.Permadeath))
	kv("option", strings.Join([]string{st.Base, st.Head, st.Portrait}, ","))
	kv("xp", strconv.Itoa(st.XP))
	if s.saveHPMP {
		kv("hpmp", fileparse.JoinInts([]int{st.HP, st.MP}))
	}
	kv("build", fileparse.JoinInts([]int{st.Physical, st.Mental, st.Offense, st.Defense}))
	kv("gold", strconv.Itoa(inv.Gold))
	kv("equipped", inv.Equipment.Items())
	kv("equipped_quantity", inv.Equipment.Quantities())
	kv("carried", inv.Carried.Items())
	kv("carried_quantity", inv.Carried.Quantities())
	tx, ty := s.world.RespawnTile()
	kv("spawn", s.world.RespawnMap+","+fileparse.JoinInts([]int{tx, ty}))
	bar := s.menus.ActionBar.Loadout(st.Transformed)
	kv("actionbar", fileparse.JoinInts(bar[:]))
	transformed := ""
	if st.Transformed && st.TransformType != "untransform" {
		transformed = st.TransformType
	}
	kv("transformed", transformed)
	kv("powers", fileparse.JoinInts(s.menus.Powers.Unlocked))
	kv("campaign", s.camp.GetAll())

	path := s.SlotPath(s.Slot)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		log.Printf("save: unable to write %s: %v", path, err)
		return fmt.Errorf("write save: %w", err)
	}
	return s.SaveStash()
}

// SaveStash writes the shared stash and clears its updated flag.
func (s *Store) SaveStash() error {
	stash := s.menus.Stash
	data := "item=" + stash.Stock.Items() + "\nquantity=" + stash.Stock.Quantities() + "\n"
	path := s.StashPath()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		log.Printf("save: unable to write %s: %v", path, err)
		return fmt.Errorf("write stash: %w", err)
	}
	stash.Updated = false
	return nil
}

// loaded collects the fields read from a save before they are applied.
type loaded struct {
	equipped, equippedQty string
	carried, carriedQty   string
	hpmp                  []int
	spawnMap              string
	spawnX, spawnY        int
	hasSpawn              bool
}

// LoadGame restores the selected slot, then the stash. A file that cannot be
// opened leaves the current state untouched. Item lists whose quantities do
// not match are rejected and reported in the returned error.
func (s *Store) LoadGame() error {
	if err := s.checkSlot(); err != nil {
		return err
	}
	path := s.SlotPath(s.Slot)
	p, err := fileparse.Open(path)
	if err != nil {
		log.Printf("save: unable to open %s: %v", path, err)
		return err
	}
	defer p.Close()

	st := s.stats
	var l loaded
	for p.Next() {
		switch p.Key {
		case "name":
			st.Name = p.Val
		case "permadeath":
			st.Permadeath = fileparse.ToInt(p.Val, 0) == 1
		case "option":
			st.Base = p.NextValue()
			st.Head = p.NextValue()
			st.Portrait = p.NextValue()
		case "xp":
			st.XP = fileparse.ToInt(p.Val, 0)
		case "hpmp":
			l.hpmp = fileparse.SplitInts(p.Val, 0)
		case "build":
			st.Physical = fileparse.ToInt(p.NextValue(), 1)
			st.Mental = fileparse.ToInt(p.NextValue(), 1)
			st.Offense = fileparse.ToInt(p.NextValue(), 1)
			st.Defense = fileparse.ToInt(p.NextValue(), 1)
		case "gold":
			s.menus.Inventory.Gold = fileparse.ToInt(p.Val, 0)
		case "equipped":
			l.equipped = p.Val
		case "equipped_quantity":
			l.equippedQty = p.Val
		case "carried":
			l.carried = p.Val
		case "carried_quantity":
			l.carriedQty = p.Val
		case "spawn":
			l.spawnMap = p.NextValue()
			l.spawnX = fileparse.ToInt(p.NextValue(), 0)
			l.spawnY = fileparse.ToInt(p.NextValue(), 0)
			l.hasSpawn = true
		case "actionbar":
			var bar [menu.SlotCount]int
			for i := range bar {
				bar[i] = fileparse.ToInt(p.NextValue(), 0)
			}
			s.menus.ActionBar.Set(bar)
		case "transformed":
			st.TransformType = p.Val
			st.Transformed = p.Val != ""
			st.Humanoid = !st.Transformed
			if st.Transformed {
				st.TransformDuration = -1
			}
		case "powers":
			s.menus.Powers.Unlocked = fileparse.SplitInts(p.Val, 0)
		case "campaign":
			s.camp.SetAll(p.Val)
		}
	}
	if err := p.Err(); err != nil {
		log.Printf("save: reading %s: %v", path, err)
	}

	var errs []error
	inv := s.menus.Inventory
	if err := inv.Equipment.SetContents(l.equipped, l.equippedQty); err != nil {
		log.Printf("save: equipped items in %s: %v", path, err)
		errs = append(errs, fmt.Errorf("equipped: %w", err))
	}
	if err := inv.Carried.SetContents(l.carried, l.carriedQty); err != nil {
		log.Printf("save: carried items in %s: %v", path, err)
		errs = append(errs, fmt.Errorf("carried: %w", err))
	}
	if st.Transformed {
		s.menus.ActionBar.Stored = s.menus.ActionBar.Hotkeys
	}
	if l.hasSpawn {
		s.restoreSpawn(l)
	}

	st.Recalc()
	inv.ApplyEquipment()
	if s.saveHPMP && len(l.hpmp) == 2 {
		st.HP = min(l.hpmp[0], st.MaxHP)
		st.MP = min(l.hpmp[1], st.MaxMP)
	} else {
		st.HP = st.MaxHP
		st.MP = st.MaxMP
	}
	s.menus.Character.RefreshStats()
	st.Direction = 6
	s.menus.Talker.SetHero(st.Name, st.Portrait)
	if s.sounds != nil {
		s.sounds.LoadHero(s.heroDir, st.Base)
	}

	errs = append(errs, s.LoadStash())
	return errors.Join(errs...)
}

func (s *Store) restoreSpawn(l loaded) {
	if !s.world.IsValidMap(l.spawnMap) {
		log.Printf("save: map %q not found, using %s", l.spawnMap, world.FallbackMap)
		s.world.TeleportToFallback()
		return
	}
	s.world.TeleportToTile(l.spawnMap, l.spawnX, l.spawnY)
	s.world.ClearEvents()
}

// LoadStash restores only the shared stash.
func (s *Store) LoadStash() error {
	path := s.StashPath()
	p, err := fileparse.Open(path)
	if err != nil {
		log.Printf("save: unable to open %s: %v", path, err)
		return err
	}
	defer p.Close()

	var itemList, qtyList string
	for p.Next() {
		switch p.Key {
		case "item":
			itemList = p.Val
		case "quantity":
			qtyList = p.Val
		}
	}
	if err := s.menus.Stash.Stock.SetContents(itemList, qtyList); err != nil {
		log.Printf("save: stash in %s: %v", path, err)
		return fmt.Errorf("load stash: %w", err)
	}
	s.menus.Stash.Updated = false
	return nil
}
