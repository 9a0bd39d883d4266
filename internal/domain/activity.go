package domain

import "time"

type ActivityKind string

const (
	ActivityInfo    ActivityKind = "info"
	ActivitySuccess ActivityKind = "success"
	ActivityError   ActivityKind = "error"
)

// ActivityEntry is one user-visible outcome. Immutable once recorded.
type ActivityEntry struct {
	Message string
	Kind    ActivityKind
	At      time.Time
}

// ActivityLedgerCapacity bounds the client-side activity history.
const ActivityLedgerCapacity = 20

// ActivityLedger is a bounded, newest-first log of outcomes. It is the
// client-side history, not the remote ledger. The orchestrator is its only
// writer.
type ActivityLedger struct {
	entries []ActivityEntry
}

func NewActivityLedger() *ActivityLedger {
	return &ActivityLedger{}
}

// Record prepends an entry and evicts the oldest ones beyond capacity in the
// same operation.
func (l *ActivityLedger) Record(message string, kind ActivityKind, at time.Time) {
	l.entries = append([]ActivityEntry{{Message: message, Kind: kind, At: at}}, l.entries...)
	if len(l.entries) > ActivityLedgerCapacity {
		l.entries = l.entries[:ActivityLedgerCapacity]
	}
}

func (l *ActivityLedger) Clear() {
	l.entries = nil
}

func (l *ActivityLedger) Len() int {
	return len(l.entries)
}

// Entries returns a copy in newest-first order, safe to hold across later
// mutations.
func (l *ActivityLedger) Entries() []ActivityEntry {
	out := make([]ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Head returns the most recent entry.
func (l *ActivityLedger) Head() (ActivityEntry, bool) {
	if len(l.entries) == 0 {
		return ActivityEntry{}, false
	}
	return l.entries[0], true
}
