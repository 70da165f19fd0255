package collection

// EventType describes what happened to a collection.
type EventType int

const (
	EventAdded EventType = iota + 1
	EventDeleted
	EventReplaced
	EventSorted
	EventCleared
	EventCommitted
	EventRestored
	EventReset
	EventFiltered
	EventSelected
)

var eventNames = map[EventType]string{
	EventAdded:     "added",
	EventDeleted:   "deleted",
	EventReplaced:  "replaced",
	EventSorted:    "sorted",
	EventCleared:   "cleared",
	EventCommitted: "committed",
	EventRestored:  "restored",
	EventReset:     "reset",
	EventFiltered:  "filtered",
	EventSelected:  "selected",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Mutation reports whether the event changed the items in a way that needs
// to reach storage. Restores from history and wholesale resets do not.
func (t EventType) Mutation() bool {
	switch t {
	case EventAdded, EventDeleted, EventReplaced, EventSorted, EventCleared:
		return true
	}
	return false
}

// Event is delivered synchronously to subscribers after the change has been
// fully applied.
type Event struct {
	Type EventType
	Kind Kind
}

// Subscriber receives collection events.
type Subscriber func(Event)
