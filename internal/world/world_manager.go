package world

import (
	"image"
	"log"
	"os"
	"path/filepath"

	"emberhold/internal/items"
)

// UnitsPerTile converts tile coordinates to map units.
const UnitsPerTile = 64

// FallbackMap is where the hero is sent when a saved map no longer exists.
const FallbackMap = "spawn.txt"

// LootDrop is an item stack lying on the ground.
type LootDrop struct {
	Stack items.ItemStack
	Pos   image.Point
}

// WorldManager is the slice of map state the menus and save routines touch:
// the respawn point, pending teleports and dropped loot.
type WorldManager struct {
	MapsDir       string
	CurrentMapKey string

	RespawnMap   string
	RespawnPoint image.Point // map units

	TeleportMap         string
	TeleportDestination image.Point // map units
	Teleportation       bool

	HeroPos image.Point
	Loot    []LootDrop

	eventsCleared bool
}

// NewWorldManager returns a manager that starts on the fallback spawn map.
func NewWorldManager(mapsDir string) *WorldManager {
	return &WorldManager{
		MapsDir:       mapsDir,
		CurrentMapKey: FallbackMap,
		RespawnMap:    FallbackMap,
		RespawnPoint:  image.Pt(UnitsPerTile/2, UnitsPerTile/2),
	}
}

// IsValidMap reports whether a map file exists in the maps directory.
func (wm *WorldManager) IsValidMap(mapKey string) bool {
	if mapKey == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(wm.MapsDir, mapKey))
	return err == nil
}

// TeleportToTile requests a teleport to the centre of a tile.
func (wm *WorldManager) TeleportToTile(mapKey string, tileX, tileY int) {
	wm.TeleportMap = mapKey
	wm.TeleportDestination = image.Pt(tileX*UnitsPerTile+UnitsPerTile/2, tileY*UnitsPerTile+UnitsPerTile/2)
	wm.Teleportation = true
}

// TeleportToFallback sends the hero to the fallback spawn map.
func (wm *WorldManager) TeleportToFallback() {
	wm.TeleportMap = FallbackMap
	wm.TeleportDestination = image.Pt(1, 1)
	wm.Teleportation = true
}

// ClearEvents drops the on-load events of the current map so they do not
// override a teleport restored from a save.
func (wm *WorldManager) ClearEvents() {
	wm.eventsCleared = true
}

// EventsCleared reports whether ClearEvents ran since the last map switch.
func (wm *WorldManager) EventsCleared() bool {
	return wm.eventsCleared
}

// ExecuteTeleport applies a pending teleport and makes the destination the
// new respawn point.
func (wm *WorldManager) ExecuteTeleport() bool {
	if !wm.Teleportation {
		return false
	}
	if wm.TeleportMap != wm.CurrentMapKey {
		log.Printf("world: switching map from %s to %s", wm.CurrentMapKey, wm.TeleportMap)
		wm.eventsCleared = false
	}
	wm.CurrentMapKey = wm.TeleportMap
	wm.HeroPos = wm.TeleportDestination
	wm.RespawnMap = wm.TeleportMap
	wm.RespawnPoint = wm.TeleportDestination
	wm.Teleportation = false
	return true
}

// DropLoot leaves a stack on the ground at the hero's position.
func (wm *WorldManager) DropLoot(stack items.ItemStack) {
	if stack.Empty() {
		return
	}
	wm.Loot = append(wm.Loot, LootDrop{Stack: stack, Pos: wm.HeroPos})
}

// RespawnTile returns the respawn point in tile coordinates.
func (wm *WorldManager) RespawnTile() (int, int) {
	return wm.RespawnPoint.X / UnitsPerTile, wm.RespawnPoint.Y / UnitsPerTile
}
