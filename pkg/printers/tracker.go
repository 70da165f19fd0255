package printers

import (
	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/model"
)

// Tracker remembers which collections changed since the last call to
// Changed, so a renderer redraws only those.
type Tracker struct {
	changed map[collection.Kind]bool
	stop    []func()
}

func NewTracker(m *model.Model) *Tracker {
	t := &Tracker{changed: make(map[collection.Kind]bool)}
	for _, c := range m.All() {
		t.stop = append(t.stop, c.Subscribe(t.observe))
	}
	return t
}

func (t *Tracker) observe(ev collection.Event) {
	if ev.Type == collection.EventCommitted {
		return
	}
	t.changed[ev.Kind] = true
}

// Changed returns the changed kinds in collection.AllKinds order and forgets
// them.
func (t *Tracker) Changed() []collection.Kind {
	var out []collection.Kind
	for _, k := range collection.AllKinds() {
		if t.changed[k] {
			out = append(out, k)
		}
	}
	clear(t.changed)
	return out
}

func (t *Tracker) Close() {
	for _, stop := range t.stop {
		stop()
	}
	t.stop = nil
}
