package collection

import (
	"errors"
	"slices"
)

var (
	ErrDuplicate = errors.New("collection: duplicate entry")
	ErrNotFound  = errors.New("collection: entry not found")
	ErrNoHistory = errors.New("collection: no more history")
)

// Entity is the contract every stored record fulfils. IsSame is the identity
// used to reject duplicates; Equal is full field equality.
type Entity[E any] interface {
	IsSame(other E) bool
	Equal(other E) bool
}

// Versioned is an ordered collection with a filtered projection, an optional
// selection, a linear undo/redo history and a dirty flag.
//
// It is not safe for concurrent use. Subscribers are called synchronously on
// the mutating goroutine once the change is complete.
type Versioned[E Entity[E]] struct {
	kind  Kind
	items []E

	history [][]E
	current int

	filter func(E) bool
	view   []E
	stale  bool

	selected    E
	hasSelected bool

	dirty bool

	subs   []subscription
	nextID int
}

type subscription struct {
	id int
	fn Subscriber
}

// New builds a collection whose only history entry is items.
func New[E Entity[E]](kind Kind, items []E) *Versioned[E] {
	v := &Versioned[E]{
		kind:  kind,
		items: slices.Clone(items),
		stale: true,
	}
	v.history = [][]E{slices.Clone(v.items)}
	return v
}

func (v *Versioned[E]) Kind() Kind {
	return v.kind
}

// Items returns a copy of the unfiltered items in insertion order.
func (v *Versioned[E]) Items() []E {
	return slices.Clone(v.items)
}

func (v *Versioned[E]) Len() int {
	return len(v.items)
}

// Add appends e unless an existing item IsSame as e.
func (v *Versioned[E]) Add(e E) error {
	if v.indexSame(e) >= 0 {
		return ErrDuplicate
	}
	v.items = append(v.items, e)
	v.mutated(EventAdded)
	return nil
}

// Delete removes the item matching e. An exact match is preferred over one
// that is only the same.
func (v *Versioned[E]) Delete(e E) error {
	i := v.locate(e)
	if i < 0 {
		return ErrNotFound
	}
	removed := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)
	if v.hasSelected && v.selected.Equal(removed) {
		v.clearSelection()
	}
	v.mutated(EventDeleted)
	return nil
}

// Replace swaps target for replacement in place.
func (v *Versioned[E]) Replace(target, replacement E) error {
	i := v.locate(target)
	if i < 0 {
		return ErrNotFound
	}
	for j, item := range v.items {
		if j != i && item.IsSame(replacement) {
			return ErrDuplicate
		}
	}
	old := v.items[i]
	v.items[i] = replacement
	if v.hasSelected && v.selected.Equal(old) {
		v.selected = replacement
	}
	v.mutated(EventReplaced)
	return nil
}

// Sort reorders the items with a stable sort.
func (v *Versioned[E]) Sort(cmp func(a, b E) int) {
	slices.SortStableFunc(v.items, cmp)
	v.mutated(EventSorted)
}

// Clear removes every item.
func (v *Versioned[E]) Clear() {
	v.items = nil
	v.clearSelection()
	v.mutated(EventCleared)
}

// SetFilter replaces the active predicate. A nil predicate shows everything.
// The selection is dropped when it falls out of the new view.
func (v *Versioned[E]) SetFilter(pred func(E) bool) {
	v.filter = pred
	v.stale = true
	v.keepVisibleSelection()
	v.notify(EventFiltered)
}

// Filtering reports whether a predicate other than show-all is active.
func (v *Versioned[E]) Filtering() bool {
	return v.filter != nil
}

// Filtered returns the items visible through the active predicate.
func (v *Versioned[E]) Filtered() []E {
	if v.stale {
		v.view = v.view[:0]
		for _, item := range v.items {
			if v.filter == nil || v.filter(item) {
				v.view = append(v.view, item)
			}
		}
		v.stale = false
	}
	return slices.Clone(v.view)
}

// Select marks e as selected. e must be in the filtered view.
func (v *Versioned[E]) Select(e E) error {
	if !slices.ContainsFunc(v.Filtered(), e.Equal) {
		return ErrNotFound
	}
	v.selected = e
	v.hasSelected = true
	v.notify(EventSelected)
	return nil
}

func (v *Versioned[E]) Deselect() {
	if !v.hasSelected {
		return
	}
	v.clearSelection()
	v.notify(EventSelected)
}

// Selected returns the selected item, if any.
func (v *Versioned[E]) Selected() (E, bool) {
	return v.selected, v.hasSelected
}

// Commit snapshots the items, discarding any redoable states.
func (v *Versioned[E]) Commit() {
	v.history = append(v.history[:v.current+1], slices.Clone(v.items))
	v.current = len(v.history) - 1
	v.notify(EventCommitted)
}

func (v *Versioned[E]) CanUndo() bool {
	return v.current > 0
}

func (v *Versioned[E]) CanRedo() bool {
	return v.current < len(v.history)-1
}

// Undo restores the previous snapshot. It does not mark the collection dirty.
func (v *Versioned[E]) Undo() error {
	if !v.CanUndo() {
		return ErrNoHistory
	}
	v.current--
	v.restore()
	return nil
}

// Redo restores the next snapshot. It does not mark the collection dirty.
func (v *Versioned[E]) Redo() error {
	if !v.CanRedo() {
		return ErrNoHistory
	}
	v.current++
	v.restore()
	return nil
}

// Reset replaces the whole collection, e.g. after loading from storage.
// History collapses to a single snapshot and the collection is clean.
func (v *Versioned[E]) Reset(items []E) {
	v.items = slices.Clone(items)
	v.history = [][]E{slices.Clone(v.items)}
	v.current = 0
	v.stale = true
	v.dirty = false
	v.clearSelection()
	v.notify(EventReset)
}

// Dirty reports whether there are mutations that have not been persisted.
func (v *Versioned[E]) Dirty() bool {
	return v.dirty
}

// MarkClean is called once the items have been persisted.
func (v *Versioned[E]) MarkClean() {
	v.dirty = false
}

// Subscribe registers fn for every event and returns a function removing it.
func (v *Versioned[E]) Subscribe(fn Subscriber) func() {
	v.nextID++
	id := v.nextID
	v.subs = append(v.subs, subscription{id: id, fn: fn})
	return func() {
		v.subs = slices.DeleteFunc(v.subs, func(s subscription) bool { return s.id == id })
	}
}

func (v *Versioned[E]) restore() {
	v.items = slices.Clone(v.history[v.current])
	v.stale = true
	v.keepVisibleSelection()
	v.notify(EventRestored)
}

func (v *Versioned[E]) mutated(t EventType) {
	v.stale = true
	v.dirty = true
	v.notify(t)
}

func (v *Versioned[E]) notify(t EventType) {
	ev := Event{Type: t, Kind: v.kind}
	for _, s := range slices.Clone(v.subs) {
		s.fn(ev)
	}
}

func (v *Versioned[E]) keepVisibleSelection() {
	if v.hasSelected && !slices.ContainsFunc(v.Filtered(), v.selected.Equal) {
		v.clearSelection()
	}
}

func (v *Versioned[E]) clearSelection() {
	var zero E
	v.selected = zero
	v.hasSelected = false
}

func (v *Versioned[E]) indexSame(e E) int {
	return slices.IndexFunc(v.items, e.IsSame)
}

func (v *Versioned[E]) locate(e E) int {
	if i := slices.IndexFunc(v.items, e.Equal); i >= 0 {
		return i
	}
	return v.indexSame(e)
}
