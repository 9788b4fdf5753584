// Package combatlog records every damage and heal event of a run as an
// append-only history.
package combatlog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultAbility tags entries produced by a plain attack.
const DefaultAbility = "basic_attack"

// Entry is an immutable record of one combat event. A negative Amount means
// the defender was healed.
type Entry struct {
	ID        uuid.UUID
	Timestamp time.Time
	Attacker  string
	Defender  string
	Amount    int
	Ability   string
}

// Log is the append-only combat history for a single run. Recorded lines are
// optionally mirrored to a sink (the presentation boundary).
type Log struct {
	entries []Entry
	sink    func(line string)
	now     func() time.Time
}

// New creates an empty combat log. sink may be nil to disable mirroring.
func New(sink func(line string)) *Log {
	return &Log{sink: sink, now: time.Now}
}

// Record appends a combat event. amount is the signed damage: positive for an
// attack, negative for a heal, zero for a non-damaging ability. ability may be
// empty, in which case the entry is tagged as a basic attack.
func (l *Log) Record(attacker, defender string, amount int, ability string) Entry {
	entry := Entry{
		ID:        uuid.New(),
		Timestamp: l.now(),
		Attacker:  attacker,
		Defender:  defender,
		Amount:    amount,
		Ability:   ability,
	}
	if entry.Ability == "" {
		entry.Ability = DefaultAbility
	}
	l.entries = append(l.entries, entry)

	if l.sink != nil {
		l.sink(formatLine(entry, ability))
	}
	return entry
}

// History returns a copy of the full ordered log.
func (l *Log) History() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// formatLine builds the human-readable mirror line. The action phrase is
// derived from the sign of the amount; a named ability prefixes it.
func formatLine(e Entry, ability string) string {
	var action string
	switch {
	case e.Amount > 0:
		action = fmt.Sprintf("attacked %s for %d damage", e.Defender, e.Amount)
	case e.Amount < 0:
		action = fmt.Sprintf("healed %s for %d health", e.Defender, -e.Amount)
	default:
		action = fmt.Sprintf("used an ability on %s", e.Defender)
	}
	if ability != "" {
		action = fmt.Sprintf("used %s to %s", ability, action)
	}
	return fmt.Sprintf("[%s] COMBAT: %s %s", e.Timestamp.Format("15:04:05"), e.Attacker, action)
}
