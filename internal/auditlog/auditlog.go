// Package auditlog keeps an in-memory trail of session activity. State
// is process-lifetime only; nothing is ever written to disk.
package auditlog

import (
	"fmt"
	"time"
)

// Entry is one recorded action.
type Entry struct {
	Timestamp time.Time
	UserID    string
	Action    string
	Details   string
}

// Known actions.
const (
	ActionLogin    = "login"
	ActionDeposit  = "deposit"
	ActionWithdraw = "withdraw"
	ActionTransfer = "transfer"
	ActionLogout   = "logout"
)

// Trail records entries in the order they happen. Not safe for
// concurrent use; the session model is single-threaded.
type Trail struct {
	entries []Entry
}

// New creates an empty trail.
func New() *Trail {
	return &Trail{}
}

// Record appends an entry timestamped now.
func (t *Trail) Record(userID, action, details string) {
	t.entries = append(t.entries, Entry{
		Timestamp: time.Now(),
		UserID:    userID,
		Action:    action,
		Details:   details,
	})
}

// All returns a copy of the recorded entries in order.
func (t *Trail) All() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of recorded entries.
func (t *Trail) Len() int {
	return len(t.entries)
}

// SummaryLine renders an entry for the end-of-session dump.
func (e Entry) SummaryLine() string {
	return fmt.Sprintf("%s  %s  %s  %s",
		e.Timestamp.Format(time.RFC3339), e.UserID, e.Action, e.Details)
}
