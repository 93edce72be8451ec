// Package menu owns the HUD and menu panels: their layout, which of them may
// be open together, click and drag routing between them, and tooltips.
package menu

import (
	"fmt"
	"image"
	"log"

	"emberhold/internal/audio"
	"emberhold/internal/character"
	"emberhold/internal/config"
	"emberhold/internal/input"
	"emberhold/internal/items"
	"emberhold/internal/powers"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// SoundPlayer plays a named sound effect without blocking.
type SoundPlayer interface {
	Play(name string)
}

// Deps are the collaborators a Manager reads and writes.
type Deps struct {
	Config *config.Config
	Stats  *character.StatBlock
	Items  *items.Manager
	Powers *powers.Manager
	Icons  *ebiten.Image // may be nil when nothing is drawn
	Sounds SoundPlayer   // may be nil for silence
	// Tooltips renders tooltip text; nil selects the on-screen renderer.
	Tooltips Rasterizer
}

// Session holds the per-tick flags the game loop reads back.
type Session struct {
	// KeyLock stops one held key from toggling panels on consecutive ticks.
	KeyLock   bool
	MenusOpen bool
	Pause     bool
	Done      bool
}

// Manager owns every panel.
type Manager struct {
	HP        *StatBar
	MP        *StatBar
	XP        *StatBar
	Effects   *ActiveEffects
	HUDLog    *HUDLog
	ActionBar *ActionBar
	Enemy     *EnemyBar
	Vendor    *Vendor
	Talker    *Talker
	Exit      *Exit
	MiniMap   *MiniMap
	Character *CharacterPanel
	Inventory *Inventory
	Powers    *PowersPanel
	Log       *LogPanel
	Stash     *Stash

	// DropStack is an inventory stack released over the game world, waiting
	// for the game to place it as loot.
	DropStack items.ItemStack

	cfg     *config.Config
	stats   *character.StatBlock
	items   *items.Manager
	powers  *powers.Manager
	sounds  SoundPlayer
	screenW int
	screenH int

	panels  [panelCount]Panel
	painter painter
	session Session
	drag    *Drag
	tooltip *TooltipCache
	routes  []clickRoute
	drops   map[DragSource]func(*Drag, image.Point)
}

// NewManager creates every panel and applies the configured layout.
func NewManager(d Deps) *Manager {
	iconSize := d.Config.GetIconSize()
	m := &Manager{
		cfg:     d.Config,
		stats:   d.Stats,
		items:   d.Items,
		powers:  d.Powers,
		sounds:  d.Sounds,
		screenW: d.Config.GetScreenWidth(),
		screenH: d.Config.GetScreenHeight(),
		painter: painter{icons: d.Icons, iconSize: iconSize},
	}
	raster := d.Tooltips
	if raster == nil {
		raster = NewRasterizer()
	}
	m.tooltip = NewTooltipCache(raster)

	m.HP = newStatBar("HP", colorBarHP)
	m.MP = newStatBar("MP", colorBarMP)
	m.XP = newStatBar("XP", colorBarXP)
	m.Effects = &ActiveEffects{Menu: Menu{Visible: true}}
	m.HUDLog = &HUDLog{Menu: Menu{Visible: true}}
	m.ActionBar = newActionBar(d.Powers, iconSize)
	m.Enemy = &EnemyBar{}
	m.Vendor = newVendor(d.Items, iconSize)
	m.Talker = &Talker{}
	m.Exit = &Exit{}
	m.MiniMap = &MiniMap{Menu: Menu{Visible: true}}
	m.Character = newCharacterPanel(d.Stats)
	m.Inventory = newInventory(d.Items, d.Stats, iconSize)
	m.Powers = newPowersPanel(d.Powers, d.Stats, iconSize)
	m.Log = &LogPanel{}
	m.Stash = newStash(d.Items, iconSize)

	m.panels = [panelCount]Panel{
		PanelHP:        m.HP,
		PanelMP:        m.MP,
		PanelXP:        m.XP,
		PanelEffects:   m.Effects,
		PanelHUDLog:    m.HUDLog,
		PanelActionBar: m.ActionBar,
		PanelEnemy:     m.Enemy,
		PanelVendor:    m.Vendor,
		PanelTalker:    m.Talker,
		PanelExit:      m.Exit,
		PanelMiniMap:   m.MiniMap,
		PanelCharacter: m.Character,
		PanelInventory: m.Inventory,
		PanelPowers:    m.Powers,
		PanelLog:       m.Log,
		PanelStash:     m.Stash,
	}
	m.ActionBar.attn = [buttonCount]*Menu{
		ButtonCharacter: &m.Character.Menu,
		ButtonInventory: &m.Inventory.Menu,
		ButtonPowers:    &m.Powers.Menu,
		ButtonLog:       &m.Log.Menu,
	}

	if path := d.Config.UI.LayoutFile; path != "" {
		if err := m.LoadLayout(path); err != nil {
			log.Printf("menu: %v", err)
		}
	} else {
		m.relayout()
	}
	m.Vendor.initBuyback()

	m.routes = m.clickRoutes()
	m.drops = m.dropHandlers()
	return m
}

// Panel returns the panel registered under id.
func (m *Manager) Panel(id PanelID) *Menu {
	return m.panels[id].base()
}

// Session returns the flags computed by the last Update.
func (m *Manager) Session() Session {
	return m.session
}

// Done reports whether the player confirmed leaving the game.
func (m *Manager) Done() bool {
	return m.session.Done
}

// Paused reports whether open menus pause the game.
func (m *Manager) Paused() bool {
	return m.session.Pause
}

// MenusOpen reports whether any menu panel is open.
func (m *Manager) MenusOpen() bool {
	return m.session.MenusOpen
}

// Update advances the menus by one tick.
func (m *Manager) Update(in *input.State) {
	s := m.stats
	m.painter.mouse = in.Mouse

	m.HP.Update(s.HP, s.MaxHP, in.Mouse, fmt.Sprintf("HP %d/%d", s.HP, s.MaxHP))
	m.MP.Update(s.MP, s.MaxMP, in.Mouse, fmt.Sprintf("MP %d/%d", s.MP, s.MaxMP))
	cur, span := s.XPProgress()
	m.XP.Update(cur, span, in.Mouse, gotext.Get("XP: %d/%d", s.XP, s.NextLevelXP()))
	m.Effects.Update(s)

	for _, p := range []logicPanel{m.HUDLog, m.Enemy, m.Character, m.Inventory, m.Vendor, m.Powers, m.Log, m.Talker, m.Stash} {
		p.Logic(in)
	}

	if m.Character.CheckUpgrade() || s.LevelUp {
		m.Inventory.ApplyEquipment()
		s.HP = s.MaxHP
		s.MP = s.MaxMP
		s.LevelUp = false
		m.Character.RefreshStats()
	}

	m.enforcePairing()
	m.releaseKeyLock(in)

	clicked := m.ActionBar.CheckMenu(in)

	if m.Exit.Visible {
		m.Exit.Logic(in)
		if m.Exit.ExitRequested() {
			m.session.Done = true
		}
	}

	m.checkCancel(in)
	m.applyToggles(in, clicked)
	m.enforcePairing()
	m.refreshMenusOpen()

	if s.Alive {
		m.routeClicks(in)
		m.routeSecondary(in)
		m.resolveDrop(in.Mouse, in.Pressing[input.Main1])
	}

	if m.Inventory.ChangedEquipment || m.Inventory.ChangedArtifact {
		m.Inventory.ApplyEquipment()
		m.Inventory.ChangedEquipment = false
		m.Inventory.ChangedArtifact = false
		m.Character.RefreshStats()
	}

	m.refreshSlots()
}

// refreshSlots disables action-bar slots whose power needs an item the
// player lacks: a carried consumable or an equipped item.
func (m *Manager) refreshSlots() {
	bar := m.ActionBar
	for i, id := range bar.Hotkeys {
		bar.SlotEnabled[i] = true
		bar.SlotItemCount[i] = -1
		if id == 0 {
			continue
		}
		item := m.powers.RequiredItem(id)
		if item == 0 {
			continue
		}
		if m.items.Get(item).Type == items.ItemConsumable {
			bar.SlotItemCount[i] = m.Inventory.CountCarried(item)
			if bar.SlotItemCount[i] == 0 {
				bar.SlotEnabled[i] = false
			}
		} else if !m.Inventory.IsEquipped(item) {
			bar.SlotEnabled[i] = false
		}
	}
}

// Notify posts a notice to the HUD and the message log.
func (m *Manager) Notify(msg string) {
	m.HUDLog.Add(msg)
	m.Log.Add(msg, LogMessages)
}

// OpenVendor shows an NPC's shop next to the inventory.
func (m *Manager) OpenVendor(npc string, stock []items.ItemStack, fromTalker bool) {
	if m.drag != nil {
		return
	}
	m.CloseAll(false)
	m.Vendor.SetStock(npc, stock)
	m.Vendor.TalkerVisible = fromTalker
	m.Vendor.Visible = true
	m.Inventory.Visible = true
	m.play(audio.SoundOpen)
}

// OpenStash shows the shared stash next to the inventory.
func (m *Manager) OpenStash() {
	if m.drag != nil {
		return
	}
	m.CloseAll(false)
	m.Stash.Visible = true
	m.Inventory.Visible = true
	m.play(audio.SoundOpen)
}

// Talk starts a conversation with an NPC.
func (m *Manager) Talk(npc string, lines []string) {
	if m.drag != nil {
		return
	}
	m.CloseAll(false)
	m.Talker.Start(npc, lines)
	if m.Talker.Visible {
		m.play(audio.SoundOpen)
	}
}

// SelectTooltip returns the tooltip for the element under p. Later sources
// take priority: character, vendor, stash, powers, inventory (not while
// dragging), action bar.
func (m *Manager) SelectTooltip(p image.Point) TooltipData {
	var tip TooltipData
	if m.Character.Visible && m.Character.Contains(p) {
		tip = m.Character.CheckTooltip(p)
	}
	if m.Vendor.Visible && m.Vendor.Contains(p) {
		tip = m.Vendor.CheckTooltip(p)
	}
	if m.Stash.Visible && m.Stash.Contains(p) {
		tip = m.Stash.CheckTooltip(p)
	}
	if m.Powers.Visible && m.Powers.Contains(p) {
		tip = m.Powers.CheckTooltip(p)
	}
	if m.Inventory.Visible && m.Inventory.Contains(p) && m.drag == nil {
		tip = m.Inventory.CheckTooltip(p)
	}
	if m.ActionBar.Visible && m.ActionBar.InBar(p) {
		tip = m.ActionBar.CheckTooltip(p)
	}
	return tip
}

// RefreshTooltip selects the tooltip under p and returns its rendering,
// reporting whether it had to be rendered anew. It returns nil when there is
// no tooltip.
func (m *Manager) RefreshTooltip(p image.Point) (*ebiten.Image, bool) {
	tip := m.SelectTooltip(p)
	if tip.Empty() {
		return nil, false
	}
	return m.tooltip.Resolve(tip)
}

// Render draws the panels in creation order, then the tooltip and the
// dragged icon.
func (m *Manager) Render(dst *ebiten.Image) {
	for _, p := range m.panels {
		p.Render(dst, &m.painter)
	}

	mouse := m.painter.mouse
	if img, _ := m.RefreshTooltip(mouse); img != nil {
		b := img.Bounds()
		x := min(mouse.X+12, m.screenW-b.Dx())
		y := min(mouse.Y+12, m.screenH-b.Dy())
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(max(x, 0)), float64(max(y, 0)))
		dst.DrawImage(img, opts)
	}

	if m.drag == nil {
		return
	}
	half := m.painter.iconSize / 2
	icon := -1
	switch pl := m.drag.Payload.(type) {
	case ItemPayload:
		icon = m.items.Get(pl.Stack.Item).Icon
	case PowerPayload:
		if pw := m.powers.Get(pl.Power); pw != nil {
			icon = pw.Icon
		}
	}
	m.painter.icon(dst, icon, mouse.X-half, mouse.Y-half)
}
