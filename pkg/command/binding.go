package command

import (
	"fmt"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/entity"
	"tableflip.dev/life/pkg/model"
)

// Item is what the generic commands require of a record.
type Item[E any] interface {
	collection.Entity[E]
	fmt.Stringer
}

// Binding ties a record type to its collection in the model.
type Binding[E Item[E]] struct {
	Kind collection.Kind
	Noun string
	Get  func(m *model.Model) *collection.Versioned[E]
}

var (
	Contacts = Binding[entity.Contact]{
		Kind: collection.KindContacts,
		Noun: "contact",
		Get:  func(m *model.Model) *collection.Versioned[entity.Contact] { return m.Contacts },
	}
	Tasks = Binding[entity.Task]{
		Kind: collection.KindTasks,
		Noun: "task",
		Get:  func(m *model.Model) *collection.Versioned[entity.Task] { return m.Tasks },
	}
	Ticked = Binding[entity.Task]{
		Kind: collection.KindTicked,
		Noun: "ticked task",
		Get:  func(m *model.Model) *collection.Versioned[entity.Task] { return m.Ticked },
	}
	Purchases = Binding[entity.Purchase]{
		Kind: collection.KindPurchases,
		Noun: "purchase",
		Get:  func(m *model.Model) *collection.Versioned[entity.Purchase] { return m.Purchases },
	}
	Workouts = Binding[entity.Workout]{
		Kind: collection.KindWorkouts,
		Noun: "workout",
		Get:  func(m *model.Model) *collection.Versioned[entity.Workout] { return m.Workouts },
	}
	Habits = Binding[entity.Habit]{
		Kind: collection.KindHabits,
		Noun: "habit",
		Get:  func(m *model.Model) *collection.Versioned[entity.Habit] { return m.Habits },
	}
)

func (b Binding[E]) hint() ViewHint {
	return HintFor(b.Kind)
}
