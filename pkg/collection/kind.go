// Package collection holds the versioned, observable containers backing each
// kind of record in life.
package collection

import (
	"fmt"
	"strings"
)

// Kind identifies one of the six collections.
type Kind string

const (
	KindContacts  Kind = "contacts"
	KindTasks     Kind = "tasks"
	KindTicked    Kind = "ticked"
	KindPurchases Kind = "purchases"
	KindWorkouts  Kind = "workouts"
	KindHabits    Kind = "habits"
)

// AllKinds returns the kinds in their stable display order.
func AllKinds() []Kind {
	return []Kind{
		KindContacts,
		KindTasks,
		KindTicked,
		KindPurchases,
		KindWorkouts,
		KindHabits,
	}
}

var kindAliases = map[string]Kind{
	"contacts":  KindContacts,
	"contact":   KindContacts,
	"person":    KindContacts,
	"tasks":     KindTasks,
	"task":      KindTasks,
	"todo":      KindTasks,
	"ticked":    KindTicked,
	"done":      KindTicked,
	"purchases": KindPurchases,
	"purchase":  KindPurchases,
	"expense":   KindPurchases,
	"exp":       KindPurchases,
	"workouts":  KindWorkouts,
	"workout":   KindWorkouts,
	"exercise":  KindWorkouts,
	"habits":    KindHabits,
	"habit":     KindHabits,
}

// ParseKind converts a kind name or alias to a Kind.
func ParseKind(raw string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("collection: unknown kind %q", raw)
}

// Label is the human name of the collection, used in logs and messages.
func (k Kind) Label() string {
	switch k {
	case KindContacts:
		return "contact list"
	case KindTasks:
		return "task list"
	case KindTicked:
		return "ticked task list"
	case KindPurchases:
		return "expenditure list"
	case KindWorkouts:
		return "workout list"
	case KindHabits:
		return "habit list"
	}
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}
