// Package model is the application state shared by the dispatch engine and
// any renderer: one versioned collection per kind.
package model

import (
	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/entity"
)

// Data is the plain content used to build a Model, usually read from storage.
type Data struct {
	Contacts  []entity.Contact
	Tasks     []entity.Task
	Ticked    []entity.Task
	Purchases []entity.Purchase
	Workouts  []entity.Workout
	Habits    []entity.Habit
}

// Tracked is the kind-independent view of a collection.
type Tracked interface {
	Kind() collection.Kind
	Len() int
	Dirty() bool
	MarkClean()
	Subscribe(fn collection.Subscriber) func()
}

type Model struct {
	Contacts  *collection.Versioned[entity.Contact]
	Tasks     *collection.Versioned[entity.Task]
	Ticked    *collection.Versioned[entity.Task]
	Purchases *collection.Versioned[entity.Purchase]
	Workouts  *collection.Versioned[entity.Workout]
	Habits    *collection.Versioned[entity.Habit]
}

func New(d Data) *Model {
	return &Model{
		Contacts:  collection.New(collection.KindContacts, d.Contacts),
		Tasks:     collection.New(collection.KindTasks, d.Tasks),
		Ticked:    collection.New(collection.KindTicked, d.Ticked),
		Purchases: collection.New(collection.KindPurchases, d.Purchases),
		Workouts:  collection.New(collection.KindWorkouts, d.Workouts),
		Habits:    collection.New(collection.KindHabits, d.Habits),
	}
}

// Load replaces every collection with d.
func (m *Model) Load(d Data) {
	m.Contacts.Reset(d.Contacts)
	m.Tasks.Reset(d.Tasks)
	m.Ticked.Reset(d.Ticked)
	m.Purchases.Reset(d.Purchases)
	m.Workouts.Reset(d.Workouts)
	m.Habits.Reset(d.Habits)
}

// Snapshot returns the current items of every collection.
func (m *Model) Snapshot() Data {
	return Data{
		Contacts:  m.Contacts.Items(),
		Tasks:     m.Tasks.Items(),
		Ticked:    m.Ticked.Items(),
		Purchases: m.Purchases.Items(),
		Workouts:  m.Workouts.Items(),
		Habits:    m.Habits.Items(),
	}
}

// Collection returns the collection for k, or nil for an unknown kind.
func (m *Model) Collection(k collection.Kind) Tracked {
	switch k {
	case collection.KindContacts:
		return m.Contacts
	case collection.KindTasks:
		return m.Tasks
	case collection.KindTicked:
		return m.Ticked
	case collection.KindPurchases:
		return m.Purchases
	case collection.KindWorkouts:
		return m.Workouts
	case collection.KindHabits:
		return m.Habits
	}
	return nil
}

// All returns every collection in collection.AllKinds order.
func (m *Model) All() []Tracked {
	kinds := collection.AllKinds()
	out := make([]Tracked, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, m.Collection(k))
	}
	return out
}
