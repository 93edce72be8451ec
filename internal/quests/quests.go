// Package quests derives the quest log from campaign statuses.
package quests

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// QuestStatus represents the current status of a quest
type QuestStatus string

const (
	QuestStatusHidden    QuestStatus = "hidden"
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
)

// QuestRewards are granted once, when a quest completes during play.
type QuestRewards struct {
	Gold       int `yaml:"gold"`
	Experience int `yaml:"experience"`
}

// QuestDefinition is the YAML configuration for a quest. A quest becomes
// active once every RequiresStatus is set and no RequiresNotStatus is, and
// completes when CompleteStatus is set.
type QuestDefinition struct {
	Name              string       `yaml:"name"`
	Description       string       `yaml:"description"`
	Order             int          `yaml:"order"`
	RequiresStatus    []string     `yaml:"requires_status"`
	RequiresNotStatus []string     `yaml:"requires_not_status"`
	CompleteStatus    string       `yaml:"complete_status"`
	Rewards           QuestRewards `yaml:"rewards"`
}

// Quest is a definition together with its derived status.
type Quest struct {
	ID         string
	Definition *QuestDefinition
	Status     QuestStatus
}

// QuestConfig holds all quest definitions loaded from YAML
type QuestConfig struct {
	Quests map[string]*QuestDefinition `yaml:"quests"`
}

// StatusChecker is the campaign state quests are derived from.
type StatusChecker interface {
	Check(status string) bool
}

// QuestManager tracks the derived status of every quest.
type QuestManager struct {
	config *QuestConfig
	order  []string
	quests map[string]*Quest
}

// LoadQuestConfig loads quest definitions from YAML file
func LoadQuestConfig(filepath string) (*QuestConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read quest config: %w", err)
	}

	var config QuestConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse quest config: %w", err)
	}

	return &config, nil
}

// NewQuestManager creates a new quest manager with loaded config. Quests are
// listed by Order, then by id.
func NewQuestManager(config *QuestConfig) *QuestManager {
	if config == nil {
		config = &QuestConfig{}
	}
	qm := &QuestManager{
		config: config,
		quests: make(map[string]*Quest, len(config.Quests)),
	}
	for id, def := range config.Quests {
		qm.order = append(qm.order, id)
		qm.quests[id] = &Quest{ID: id, Definition: def, Status: QuestStatusHidden}
	}
	sort.Slice(qm.order, func(i, j int) bool {
		a, b := config.Quests[qm.order[i]], config.Quests[qm.order[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return qm.order[i] < qm.order[j]
	})
	return qm
}

func (def *QuestDefinition) status(c StatusChecker) QuestStatus {
	if def.CompleteStatus != "" && c.Check(def.CompleteStatus) {
		return QuestStatusCompleted
	}
	for _, s := range def.RequiresStatus {
		if !c.Check(s) {
			return QuestStatusHidden
		}
	}
	for _, s := range def.RequiresNotStatus {
		if c.Check(s) {
			return QuestStatusHidden
		}
	}
	return QuestStatusActive
}

// Refresh re-derives every quest from c and returns the quests whose status
// changed to active or completed, in log order.
func (qm *QuestManager) Refresh(c StatusChecker) []*Quest {
	var changed []*Quest
	for _, id := range qm.order {
		q := qm.quests[id]
		st := q.Definition.status(c)
		if st == q.Status {
			continue
		}
		q.Status = st
		if st != QuestStatusHidden {
			changed = append(changed, q)
		}
	}
	return changed
}

// Sync re-derives every quest without reporting changes, as after a load.
func (qm *QuestManager) Sync(c StatusChecker) {
	qm.Refresh(c)
}

// GetQuest returns a specific quest by ID
func (qm *QuestManager) GetQuest(questID string) *Quest {
	return qm.quests[questID]
}

// GetActiveQuests returns all active quests in log order.
func (qm *QuestManager) GetActiveQuests() []*Quest {
	var quests []*Quest
	for _, id := range qm.order {
		if q := qm.quests[id]; q.Status == QuestStatusActive {
			quests = append(quests, q)
		}
	}
	return quests
}

// Entries returns the quest log lines: active quests first, then completed ones.
func (qm *QuestManager) Entries() []string {
	var active, done []string
	for _, id := range qm.order {
		q := qm.quests[id]
		switch q.Status {
		case QuestStatusActive:
			active = append(active, q.Definition.Name+": "+q.Definition.Description)
		case QuestStatusCompleted:
			done = append(done, q.GetStatusString()+": "+q.Definition.Name)
		}
	}
	return append(active, done...)
}

// GetStatusString returns a human-readable status
func (q *Quest) GetStatusString() string {
	switch q.Status {
	case QuestStatusActive:
		return "In Progress"
	case QuestStatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
