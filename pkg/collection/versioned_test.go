package collection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	title string
	body  string
}

func (n note) IsSame(o note) bool { return strings.EqualFold(n.title, o.title) }
func (n note) Equal(o note) bool  { return n == o }

func notes(titles ...string) []note {
	out := make([]note, 0, len(titles))
	for _, t := range titles {
		out = append(out, note{title: t})
	}
	return out
}

func TestAddRejectsDuplicates(t *testing.T) {
	v := New(KindTasks, notes("a"))
	require.False(t, v.Dirty())

	err := v.Add(note{title: "A", body: "different"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, notes("a"), v.Items())
	assert.False(t, v.Dirty())

	require.NoError(t, v.Add(note{title: "b"}))
	assert.Equal(t, notes("a", "b"), v.Items())
	assert.True(t, v.Dirty())
}

func TestAddThenDeleteRoundTrip(t *testing.T) {
	before := notes("a", "b", "c")
	v := New(KindContacts, before)

	e := note{title: "d", body: "x"}
	require.NoError(t, v.Add(e))
	require.NoError(t, v.Delete(e))
	assert.Equal(t, before, v.Items())
}

func TestDeletePrefersExactMatch(t *testing.T) {
	v := New(KindTasks, []note{{title: "a", body: "1"}})
	assert.ErrorIs(t, v.Delete(note{title: "z"}), ErrNotFound)
	require.NoError(t, v.Delete(note{title: "A", body: "other"}))
	assert.Empty(t, v.Items())
}

func TestReplace(t *testing.T) {
	v := New(KindHabits, notes("a", "b", "c"))

	assert.ErrorIs(t, v.Replace(note{title: "z"}, note{title: "y"}), ErrNotFound)
	assert.ErrorIs(t, v.Replace(note{title: "a"}, note{title: "B"}), ErrDuplicate)
	assert.False(t, v.Dirty())

	require.NoError(t, v.Replace(note{title: "b"}, note{title: "b", body: "edited"}))
	assert.Equal(t, []note{{title: "a"}, {title: "b", body: "edited"}, {title: "c"}}, v.Items())
	assert.True(t, v.Dirty())
}

func TestUndoRedo(t *testing.T) {
	v := New(KindTasks, notes("a"))
	assert.ErrorIs(t, v.Undo(), ErrNoHistory)
	assert.ErrorIs(t, v.Redo(), ErrNoHistory)

	require.NoError(t, v.Add(note{title: "b"}))
	v.Commit()
	v.MarkClean()

	require.NoError(t, v.Undo())
	assert.Equal(t, notes("a"), v.Items())
	assert.False(t, v.Dirty())

	require.NoError(t, v.Redo())
	assert.Equal(t, notes("a", "b"), v.Items())
	assert.False(t, v.Dirty())
	assert.ErrorIs(t, v.Redo(), ErrNoHistory)
}

func TestCommitAfterUndoDiscardsFuture(t *testing.T) {
	v := New[note](KindTasks, nil)
	require.NoError(t, v.Add(note{title: "a"}))
	v.Commit()
	require.NoError(t, v.Add(note{title: "b"}))
	v.Commit()

	require.NoError(t, v.Undo())
	require.True(t, v.CanRedo())

	require.NoError(t, v.Add(note{title: "c"}))
	v.Commit()
	assert.False(t, v.CanRedo())
	assert.ErrorIs(t, v.Redo(), ErrNoHistory)

	require.NoError(t, v.Undo())
	assert.Equal(t, notes("a"), v.Items())
}

func TestCommitDoesNotTouchDirty(t *testing.T) {
	v := New[note](KindTasks, nil)
	require.NoError(t, v.Add(note{title: "a"}))
	v.Commit()
	assert.True(t, v.Dirty())
}

func TestFilteredView(t *testing.T) {
	v := New(KindContacts, notes("apple", "banana", "avocado"))
	v.SetFilter(func(n note) bool { return strings.HasPrefix(n.title, "a") })
	assert.True(t, v.Filtering())
	assert.Equal(t, notes("apple", "avocado"), v.Filtered())
	assert.False(t, v.Dirty())

	require.NoError(t, v.Add(note{title: "apricot"}))
	assert.Equal(t, notes("apple", "avocado", "apricot"), v.Filtered())

	v.SetFilter(nil)
	assert.Len(t, v.Filtered(), 4)
}

func TestSelection(t *testing.T) {
	v := New(KindContacts, notes("a", "b"))
	assert.ErrorIs(t, v.Select(note{title: "z"}), ErrNotFound)

	require.NoError(t, v.Select(note{title: "b"}))
	sel, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.title)

	require.NoError(t, v.Replace(note{title: "b"}, note{title: "b", body: "x"}))
	sel, ok = v.Selected()
	require.True(t, ok)
	assert.Equal(t, "x", sel.body)

	v.SetFilter(func(n note) bool { return n.title == "a" })
	_, ok = v.Selected()
	assert.False(t, ok)

	v.SetFilter(nil)
	require.NoError(t, v.Select(note{title: "a"}))
	require.NoError(t, v.Delete(note{title: "a"}))
	_, ok = v.Selected()
	assert.False(t, ok)
}

func TestResetCollapsesHistory(t *testing.T) {
	v := New[note](KindPurchases, nil)
	require.NoError(t, v.Add(note{title: "a"}))
	v.Commit()
	require.NoError(t, v.Select(note{title: "a"}))

	v.Reset(notes("x", "y"))
	assert.Equal(t, notes("x", "y"), v.Items())
	assert.False(t, v.CanUndo())
	assert.False(t, v.Dirty())
	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestSortAndClear(t *testing.T) {
	v := New(KindContacts, notes("c", "a", "b"))
	v.Sort(func(a, b note) int { return strings.Compare(a.title, b.title) })
	assert.Equal(t, notes("a", "b", "c"), v.Items())
	v.Commit()

	v.Clear()
	assert.Zero(t, v.Len())
	v.Commit()

	require.NoError(t, v.Undo())
	assert.Equal(t, notes("a", "b", "c"), v.Items())
}

func TestSubscribers(t *testing.T) {
	v := New[note](KindTasks, nil)
	var first, second []EventType
	v.Subscribe(func(e Event) {
		assert.Equal(t, KindTasks, e.Kind)
		first = append(first, e.Type)
	})
	stop := v.Subscribe(func(e Event) { second = append(second, e.Type) })

	require.NoError(t, v.Add(note{title: "a"}))
	v.Commit()
	stop()
	require.NoError(t, v.Undo())

	assert.Equal(t, []EventType{EventAdded, EventCommitted, EventRestored}, first)
	assert.Equal(t, []EventType{EventAdded, EventCommitted}, second)
}

func TestSubscriberSeesAppliedChange(t *testing.T) {
	v := New[note](KindTasks, nil)
	var seen int
	v.Subscribe(func(Event) { seen = v.Len() })
	require.NoError(t, v.Add(note{title: "a"}))
	assert.Equal(t, 1, seen)
}

func TestMutationEvents(t *testing.T) {
	for _, et := range []EventType{EventAdded, EventDeleted, EventReplaced, EventSorted, EventCleared} {
		assert.True(t, et.Mutation(), et.String())
	}
	for _, et := range []EventType{EventCommitted, EventRestored, EventReset, EventFiltered, EventSelected} {
		assert.False(t, et.Mutation(), et.String())
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"Contact": KindContacts,
		"todo":    KindTasks,
		"done":    KindTicked,
		" exp ":   KindPurchases,
		"workout": KindWorkouts,
		"habits":  KindHabits,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("notes")
	assert.Error(t, err)
	assert.Equal(t, "expenditure list", KindPurchases.Label())
}
