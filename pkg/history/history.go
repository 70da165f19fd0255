// Package history keeps the audit trail of command text entered by the user.
package history

import "slices"

// Log is an append-only record of attempted commands. Undo and redo never
// touch it.
type Log struct {
	entries []string
}

func New() *Log {
	return &Log{}
}

// Record appends text, whether or not the command it belongs to succeeded.
func (l *Log) Record(text string) {
	l.entries = append(l.entries, text)
}

// Entries returns the recorded text, oldest first.
func (l *Log) Entries() []string {
	return slices.Clone(l.entries)
}

// Recent returns the recorded text, newest first.
func (l *Log) Recent() []string {
	out := l.Entries()
	slices.Reverse(out)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}
