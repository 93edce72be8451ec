package quests

import (
	"os"
	"path/filepath"
	"testing"
)

type statusSet map[string]bool

func (s statusSet) Check(status string) bool { return s[status] }

func testConfig() *QuestConfig {
	return &QuestConfig{
		Quests: map[string]*QuestDefinition{
			"smith": {
				Name:           "The Smith's Hammer",
				Description:    "Find the lost hammer",
				Order:          1,
				RequiresStatus: []string{"met_smith"},
				CompleteStatus: "hammer_returned",
				Rewards:        QuestRewards{Gold: 50, Experience: 100},
			},
			"crypt": {
				Name:              "Into the Crypt",
				Description:       "Open the crypt door",
				Order:             2,
				RequiresStatus:    []string{"has_key"},
				RequiresNotStatus: []string{"crypt_sealed"},
				CompleteStatus:    "crypt_open",
			},
		},
	}
}

func TestQuestLifecycle(t *testing.T) {
	qm := NewQuestManager(testConfig())
	statuses := statusSet{}

	if changed := qm.Refresh(statuses); len(changed) != 0 {
		t.Fatalf("no statuses: got %d changes", len(changed))
	}

	statuses["met_smith"] = true
	changed := qm.Refresh(statuses)
	if len(changed) != 1 || changed[0].ID != "smith" || changed[0].Status != QuestStatusActive {
		t.Fatalf("activation: got %+v", changed)
	}
	if changed := qm.Refresh(statuses); len(changed) != 0 {
		t.Fatalf("unchanged statuses should report nothing, got %d", len(changed))
	}

	statuses["hammer_returned"] = true
	changed = qm.Refresh(statuses)
	if len(changed) != 1 || changed[0].Status != QuestStatusCompleted {
		t.Fatalf("completion: got %+v", changed)
	}
	if changed[0].Definition.Rewards.Gold != 50 {
		t.Fatalf("rewards: got %+v", changed[0].Definition.Rewards)
	}
}

func TestRequiresNotStatusHides(t *testing.T) {
	qm := NewQuestManager(testConfig())
	qm.Refresh(statusSet{"has_key": true})
	if q := qm.GetQuest("crypt"); q.Status != QuestStatusActive {
		t.Fatalf("crypt: got %s want active", q.Status)
	}
	qm.Refresh(statusSet{"has_key": true, "crypt_sealed": true})
	if q := qm.GetQuest("crypt"); q.Status != QuestStatusHidden {
		t.Fatalf("sealed crypt: got %s want hidden", q.Status)
	}
}

func TestEntriesOrder(t *testing.T) {
	qm := NewQuestManager(testConfig())
	qm.Sync(statusSet{"met_smith": true, "hammer_returned": true, "has_key": true})

	got := qm.Entries()
	want := []string{"Into the Crypt: Open the crypt door", "Completed: The Smith's Hammer"}
	if len(got) != len(want) {
		t.Fatalf("entries: got %q want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %q want %q", i, got[i], want[i])
		}
	}
	if active := qm.GetActiveQuests(); len(active) != 1 || active[0].ID != "crypt" {
		t.Fatalf("active quests: got %+v", active)
	}
}

func TestLoadQuestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quests.yaml")
	data := `quests:
  smith:
    name: "The Smith's Hammer"
    description: "Find the lost hammer"
    requires_status: [met_smith]
    complete_status: hammer_returned
    rewards:
      gold: 50
      experience: 100
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadQuestConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := cfg.Quests["smith"]
	if def == nil || def.CompleteStatus != "hammer_returned" || def.Rewards.Experience != 100 {
		t.Fatalf("smith: got %+v", def)
	}
	if len(def.RequiresStatus) != 1 || def.RequiresStatus[0] != "met_smith" {
		t.Fatalf("requires_status: got %v", def.RequiresStatus)
	}
}

func TestLoadQuestConfigMissingFile(t *testing.T) {
	if _, err := LoadQuestConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
