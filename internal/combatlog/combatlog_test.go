package combatlog

import (
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 10, 14, 30, 5, 0, time.UTC)
}

func TestRecordDefaultsAbilityTag(t *testing.T) {
	log := New(nil)

	entry := log.Record("Hero", "Goblin King", 12, "")

	if entry.Ability != DefaultAbility {
		t.Errorf("Ability = %q, want %q", entry.Ability, DefaultAbility)
	}
	if entry.Attacker != "Hero" || entry.Defender != "Goblin King" {
		t.Errorf("Entry names = %q/%q, want Hero/Goblin King", entry.Attacker, entry.Defender)
	}
	if entry.Amount != 12 {
		t.Errorf("Amount = %d, want 12", entry.Amount)
	}
}

func TestRecordKeepsAbilityTag(t *testing.T) {
	log := New(nil)

	entry := log.Record("Shadow Knight", "Hero", 34, "Dark Magic")

	if entry.Ability != "Dark Magic" {
		t.Errorf("Ability = %q, want 'Dark Magic'", entry.Ability)
	}
}

func TestHistoryOrderAndIsolation(t *testing.T) {
	log := New(nil)

	log.Record("Hero", "Goblin King", 12, "")
	log.Record("Goblin King", "Hero", 8, "")
	log.Record("Healing Spirit", "Hero", -15, "Heal")

	history := log.History()
	if len(history) != 3 {
		t.Fatalf("History length = %d, want 3", len(history))
	}
	if history[0].Attacker != "Hero" || history[2].Amount != -15 {
		t.Error("History is not in append order")
	}

	// Mutating the returned slice must not affect the log.
	history[0].Attacker = "Tampered"
	if log.History()[0].Attacker != "Hero" {
		t.Error("History() must return a copy")
	}
}

func TestMirrorLinePhrases(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		ability  string
		wantPart string
	}{
		{"attack", 12, "", "Hero attacked Goblin King for 12 damage"},
		{"heal", -15, "Heal", "used Heal to healed Goblin King for 15 health"},
		{"zero ability", 0, "Curse", "used Curse to used an ability on Goblin King"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []string
			log := New(func(line string) { lines = append(lines, line) })
			log.now = fixedClock

			log.Record("Hero", "Goblin King", tt.amount, tt.ability)

			if len(lines) != 1 {
				t.Fatalf("Expected 1 mirrored line, got %d", len(lines))
			}
			if !strings.Contains(lines[0], tt.wantPart) {
				t.Errorf("Line %q does not contain %q", lines[0], tt.wantPart)
			}
			if !strings.HasPrefix(lines[0], "[14:30:05] COMBAT:") {
				t.Errorf("Line %q missing timestamp prefix", lines[0])
			}
		})
	}
}

func TestNilSinkDoesNotPanic(t *testing.T) {
	log := New(nil)
	log.Record("Hero", "Goblin King", 5, "")
	if log.Len() != 1 {
		t.Errorf("Len() = %d, want 1", log.Len())
	}
}
