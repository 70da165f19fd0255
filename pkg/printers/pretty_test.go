package printers

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/command"
	"tableflip.dev/life/pkg/entity"
	"tableflip.dev/life/pkg/model"
)

func init() {
	color.NoColor = true
}

func testModel() *model.Model {
	return model.New(model.Data{
		Habits: []entity.Habit{{Title: "Read", Streak: 2}, {Title: "Run"}},
	})
}

func TestResultPrintsHintedView(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	m := testModel()
	require.NoError(t, m.Habits.Select(entity.Habit{Title: "Run"}))

	pp.Result(m, command.Result{Message: "Listed all habits", View: command.ViewHabits})

	out := buf.String()
	assert.Contains(t, out, "Listed all habits")
	assert.Contains(t, out, "habit list - 2 items")
	assert.Contains(t, out, "1. ○ Read Streak: 2")
	assert.Contains(t, out, "› 2. ○ Run Streak: 0")
}

func TestViewShowsFilterAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	m := testModel()
	m.Habits.SetFilter(func(h entity.Habit) bool { return h.Title == "Run" })

	pp.View(m, collection.KindHabits)
	assert.Contains(t, buf.String(), "habit list (filtered) - 1 of 2 items")

	buf.Reset()
	pp.View(m, collection.KindContacts)
	assert.Contains(t, buf.String(), "contact list - 0 items")
	assert.Contains(t, buf.String(), "none")
}

func TestResultWithoutView(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Result(testModel(), command.Result{Message: "Saving any pending changes"})
	assert.Equal(t, "Saving any pending changes\n", buf.String())

	buf.Reset()
	pp.Error(errors.New("boom"))
	assert.Equal(t, "boom\n", buf.String())
}

func TestTracker(t *testing.T) {
	m := testModel()
	tr := NewTracker(m)
	defer tr.Close()

	assert.Empty(t, tr.Changed())

	require.NoError(t, m.Tasks.Add(entity.Task{Name: "Buy milk", Deadline: entity.MustDate("2024-01-01")}))
	m.Tasks.Commit()
	m.Habits.SetFilter(nil)
	assert.Equal(t, []collection.Kind{collection.KindTasks, collection.KindHabits}, tr.Changed())
	assert.Empty(t, tr.Changed())

	tr.Close()
	require.NoError(t, m.Tasks.Undo())
	assert.Empty(t, tr.Changed())
}
