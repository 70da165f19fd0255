// Package command contains the units of work run by the dispatch engine.
//
// Commands are built by the parser with shape-checked arguments. Execute
// re-checks business rules such as index bounds against the current filtered
// view before touching any collection.
package command

import (
	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/history"
	"tableflip.dev/life/pkg/model"
)

// Command mutates or inspects the model.
type Command interface {
	Execute(m *model.Model, h *history.Log) (Result, error)
}

// ViewHint tells the caller which view to show after a command.
type ViewHint int

const (
	ViewNone ViewHint = iota
	ViewContacts
	ViewTasks
	ViewTicked
	ViewPurchases
	ViewWorkouts
	ViewHabits
	ViewHelp
	ViewExit
)

var hintKinds = map[ViewHint]collection.Kind{
	ViewContacts:  collection.KindContacts,
	ViewTasks:     collection.KindTasks,
	ViewTicked:    collection.KindTicked,
	ViewPurchases: collection.KindPurchases,
	ViewWorkouts:  collection.KindWorkouts,
	ViewHabits:    collection.KindHabits,
}

// HintFor returns the view showing collection k.
func HintFor(k collection.Kind) ViewHint {
	for h, kind := range hintKinds {
		if kind == k {
			return h
		}
	}
	return ViewNone
}

// Kind returns the collection shown by the view, if the view shows one.
func (h ViewHint) Kind() (collection.Kind, bool) {
	k, ok := hintKinds[h]
	return k, ok
}

func (h ViewHint) String() string {
	switch h {
	case ViewNone:
		return ""
	case ViewHelp:
		return "help"
	case ViewExit:
		return "exit"
	}
	if k, ok := h.Kind(); ok {
		return string(k)
	}
	return "unknown"
}

func (h ViewHint) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Result is what the user sees after a command ran.
type Result struct {
	Message string   `json:"message"`
	View    ViewHint `json:"view,omitempty"`
}
