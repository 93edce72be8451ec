package character

import "emberhold/internal/config"

// Build attributes a stat point can be spent on.
const (
	StatPhysical = "physical"
	StatMental   = "mental"
	StatOffense  = "offense"
	StatDefense  = "defense"
)

// Effect is an active effect shown by the effects panel.
type Effect struct {
	Name     string
	Icon     int
	Duration int // frames remaining, -1 for indefinite
}

// StatBlock is the player's stat block as read and written by the menus and
// the save routines.
type StatBlock struct {
	Name       string
	Permadeath bool

	// Visual options
	Base     string
	Head     string
	Portrait string

	Level   int
	XP      int
	XPTable []int

	HP    int
	MaxHP int
	MP    int
	MaxMP int

	Physical int
	Mental   int
	Offense  int
	Defense  int

	Alive    bool
	Corpse   bool
	Humanoid bool
	LevelUp  bool

	Transformed       bool
	TransformType     string
	TransformDuration int

	Direction int
	Effects   []Effect

	// Bonuses from equipped items, keyed by "hp", "mp", "physical", ...
	Bonus map[string]int

	cfg config.PlayerConfig
}

// NewStatBlock returns a fresh level 1 hero.
func NewStatBlock(cfg *config.Config) *StatBlock {
	s := &StatBlock{
		Level:    1,
		XPTable:  append([]int(nil), cfg.Player.XPTable...),
		Physical: 1,
		Mental:   1,
		Offense:  1,
		Defense:  1,
		Alive:    true,
		Humanoid: true,
		Bonus:    make(map[string]int),
		cfg:      cfg.Player,
	}
	s.Recalc()
	s.HP = s.MaxHP
	s.MP = s.MaxMP
	return s
}

// Recalc derives level and maximum hp/mp from xp, build and equipment bonuses.
func (s *StatBlock) Recalc() {
	s.Level = s.levelForXP(s.XP)
	s.MaxHP = s.cfg.BaseHP + (s.Physical+s.Bonus[StatPhysical])*s.cfg.HPPerPhysical + (s.Level-1)*s.cfg.HPPerLevel + s.Bonus["hp"]
	s.MaxMP = s.cfg.BaseMP + (s.Mental+s.Bonus[StatMental])*s.cfg.MPPerMental + (s.Level-1)*s.cfg.MPPerLevel + s.Bonus["mp"]
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	if s.MP > s.MaxMP {
		s.MP = s.MaxMP
	}
}

func (s *StatBlock) levelForXP(xp int) int {
	level := 1
	for i, need := range s.XPTable {
		if i == 0 {
			continue
		}
		if xp < need {
			break
		}
		level = i + 1
	}
	return level
}

// AddXP grants experience and raises LevelUp when a new level is reached.
func (s *StatBlock) AddXP(amount int) {
	before := s.Level
	s.XP += amount
	s.Recalc()
	if s.Level > before {
		s.LevelUp = true
	}
}

// XPProgress returns experience gained into the current level and the span
// of the current level.
func (s *StatBlock) XPProgress() (int, int) {
	if len(s.XPTable) == 0 {
		return 0, 0
	}
	lo := 0
	if s.Level-1 < len(s.XPTable) {
		lo = s.XPTable[s.Level-1]
	}
	if s.Level >= len(s.XPTable) {
		return s.XP - lo, 0
	}
	return s.XP - lo, s.XPTable[s.Level] - lo
}

// NextLevelXP returns the experience needed for the next level, or the last
// table value at the level cap.
func (s *StatBlock) NextLevelXP() int {
	if len(s.XPTable) == 0 {
		return 0
	}
	if s.Level < len(s.XPTable) {
		return s.XPTable[s.Level]
	}
	return s.XPTable[len(s.XPTable)-1]
}

// StatPointsAvailable returns unspent build points for the current level.
func (s *StatBlock) StatPointsAvailable() int {
	spent := s.Physical + s.Mental + s.Offense + s.Defense - 4
	return (s.Level-1)*s.cfg.StatPointsLevel - spent
}

// Spend raises one build attribute if a point is available.
func (s *StatBlock) Spend(stat string) bool {
	if s.StatPointsAvailable() <= 0 {
		return false
	}
	switch stat {
	case StatPhysical:
		s.Physical++
	case StatMental:
		s.Mental++
	case StatOffense:
		s.Offense++
	case StatDefense:
		s.Defense++
	default:
		return false
	}
	s.Recalc()
	return true
}

// Stat returns a build attribute by name including equipment bonuses.
func (s *StatBlock) Stat(stat string) int {
	switch stat {
	case StatPhysical:
		return s.Physical + s.Bonus[stat]
	case StatMental:
		return s.Mental + s.Bonus[stat]
	case StatOffense:
		return s.Offense + s.Bonus[stat]
	case StatDefense:
		return s.Defense + s.Bonus[stat]
	}
	return 0
}

// SetBonus replaces the equipment bonuses and recalculates derived stats.
func (s *StatBlock) SetBonus(bonus map[string]int) {
	s.Bonus = bonus
	if s.Bonus == nil {
		s.Bonus = make(map[string]int)
	}
	s.Recalc()
}

// Interruptible reports whether the player may open the exit menu: not a
// permadeath corpse and not mid-transformation.
func (s *StatBlock) Interruptible() bool {
	return !(s.Corpse && s.Permadeath) && s.TransformDuration < 1
}
