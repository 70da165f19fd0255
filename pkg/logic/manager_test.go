package logic

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/command"
	"tableflip.dev/life/pkg/entity"
	"tableflip.dev/life/pkg/history"
	"tableflip.dev/life/pkg/model"
	"tableflip.dev/life/pkg/parser"
	"tableflip.dev/life/pkg/store"
)

var errDiskFull = errors.New("disk full")

// memoryBlobs records every write and can be told to fail writes per key.
type memoryBlobs struct {
	data   map[string][]byte
	writes []string
	fail   map[string]error
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{data: map[string][]byte{}, fail: map[string]error{}}
}

func (b *memoryBlobs) Read(key string) ([]byte, error) {
	d, ok := b.data[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, fs.ErrNotExist)
	}
	return d, nil
}

func (b *memoryBlobs) Write(key string, data []byte) error {
	if err := b.fail[key]; err != nil {
		return err
	}
	b.writes = append(b.writes, key)
	b.data[key] = data
	return nil
}

type commandFunc func(m *model.Model, h *history.Log) (command.Result, error)

func (f commandFunc) Execute(m *model.Model, h *history.Log) (command.Result, error) {
	return f(m, h)
}

// fixedParser returns cmd for any text.
type fixedParser struct {
	cmd command.Command
}

func (p fixedParser) Parse(string) (command.Command, error) {
	return p.cmd, nil
}

func newManager(t *testing.T, d model.Data, p Parser) (*Manager, *memoryBlobs, *store.Storage) {
	t.Helper()
	blobs := newMemoryBlobs()
	s := store.NewStorage(blobs, nil)
	if p == nil {
		p = parser.New()
	}
	mgr := New(model.New(d), s, p)
	t.Cleanup(mgr.Close)
	return mgr, blobs, s
}

func TestAddTaskSavesOnce(t *testing.T) {
	mgr, blobs, s := newManager(t, model.Data{}, nil)

	var dirtyOnAdd bool
	mgr.Model().Tasks.Subscribe(func(ev collection.Event) {
		if ev.Type == collection.EventAdded {
			dirtyOnAdd = mgr.Model().Tasks.Dirty()
		}
	})

	res, err := mgr.Execute("add task n/Buy milk d/2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, command.ViewTasks, res.View)

	view := mgr.Model().Tasks.Filtered()
	require.Len(t, view, 1)
	assert.Equal(t, "Buy milk", view[0].Name)
	assert.True(t, dirtyOnAdd)
	assert.False(t, mgr.Model().Tasks.Dirty())
	assert.Equal(t, []string{"tasks"}, blobs.writes)

	saved, err := s.Tasks.Load()
	require.NoError(t, err)
	assert.Equal(t, view, saved)
}

func TestInvalidIndexSavesNothing(t *testing.T) {
	mgr, blobs, _ := newManager(t, model.Data{
		Tasks: []entity.Task{{Name: "Buy milk", Deadline: entity.MustDate("2024-01-01")}},
	}, nil)

	_, err := mgr.Execute("delete task 2")
	assert.ErrorIs(t, err, command.ErrInvalidIndex)
	assert.True(t, IsRecoverable(err))
	assert.Equal(t, 1, mgr.History().Len())
	assert.Empty(t, blobs.writes)
	assert.Equal(t, 1, mgr.Model().Tasks.Len())
}

func TestHistoryGrowsByOnePerCycle(t *testing.T) {
	mgr, _, _ := newManager(t, model.Data{}, nil)
	inputs := []string{
		"add habit n/Read",
		"add habit n/read",
		"gibberish",
		"",
		"list habits",
		"undo habits",
		"undo habits",
	}
	for i, text := range inputs {
		_, _ = mgr.Execute(text)
		assert.Equal(t, i+1, mgr.History().Len(), text)
	}
	assert.Equal(t, inputs, mgr.History().Entries())
}

func TestParseErrorIsRecoverable(t *testing.T) {
	mgr, blobs, _ := newManager(t, model.Data{}, nil)
	_, err := mgr.Execute("launch rockets")
	var perr *command.ParseError
	require.ErrorAs(t, err, &perr)
	assert.True(t, IsRecoverable(err))
	assert.Empty(t, blobs.writes)
}

func TestSecondSaveFailureLeavesFirstSaved(t *testing.T) {
	both := commandFunc(func(m *model.Model, _ *history.Log) (command.Result, error) {
		if err := m.Tasks.Add(entity.Task{Name: "Buy milk", Deadline: entity.MustDate("2024-01-01")}); err != nil {
			return command.Result{}, err
		}
		if err := m.Habits.Add(entity.Habit{Title: "Read"}); err != nil {
			return command.Result{}, err
		}
		return command.Result{Message: "ok"}, nil
	})
	mgr, blobs, s := newManager(t, model.Data{}, fixedParser{cmd: both})
	blobs.fail["habits"] = errDiskFull

	_, err := mgr.Execute("both")

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, collection.KindHabits, perr.Kind)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, "could not save data to file: disk full", err.Error())
	assert.False(t, IsRecoverable(err))

	tasks, lerr := s.Tasks.Load()
	require.NoError(t, lerr)
	assert.Len(t, tasks, 1)
	habits, lerr := s.Habits.Load()
	require.NoError(t, lerr)
	assert.Empty(t, habits)

	assert.Equal(t, 1, mgr.Model().Habits.Len())
	assert.True(t, mgr.Model().Habits.Dirty())
	assert.False(t, mgr.Model().Tasks.Dirty())
}

func TestFailedSaveIsRetriedBySave(t *testing.T) {
	mgr, blobs, s := newManager(t, model.Data{}, nil)
	blobs.fail["habits"] = errDiskFull

	_, err := mgr.Execute("add habit n/Read")
	require.Error(t, err)

	delete(blobs.fail, "habits")
	_, err = mgr.Execute("save")
	require.NoError(t, err)

	habits, err := s.Habits.Load()
	require.NoError(t, err)
	assert.Len(t, habits, 1)
	assert.False(t, mgr.Model().Habits.Dirty())
}

func TestPersistOrder(t *testing.T) {
	d := entity.MustDate("2024-01-01")
	all := commandFunc(func(m *model.Model, _ *history.Log) (command.Result, error) {
		_ = m.Contacts.Add(entity.Contact{Name: "Alex", Phone: "123", Email: "a@x.io"})
		_ = m.Workouts.Add(entity.Workout{Exercise: "Run", Sets: 1, Reps: 1, Duration: 1, Date: d})
		_ = m.Habits.Add(entity.Habit{Title: "Read"})
		_ = m.Purchases.Add(entity.Purchase{Name: "Coffee", Price: 1, Date: d})
		_ = m.Tasks.Add(entity.Task{Name: "Buy milk", Deadline: d})
		_ = m.Ticked.Add(entity.Task{Name: "Pay rent", Deadline: d})
		return command.Result{}, nil
	})
	mgr, blobs, _ := newManager(t, model.Data{}, fixedParser{cmd: all})

	_, err := mgr.Execute("everything")
	require.NoError(t, err)
	assert.Equal(t, []string{"tasks", "purchases", "habits", "workouts", "contacts"}, blobs.writes)
}

func TestPartialMutationIsPersisted(t *testing.T) {
	partial := commandFunc(func(m *model.Model, _ *history.Log) (command.Result, error) {
		_ = m.Habits.Add(entity.Habit{Title: "Read"})
		return command.Result{}, errors.New("second step failed")
	})
	mgr, blobs, _ := newManager(t, model.Data{}, fixedParser{cmd: partial})

	_, err := mgr.Execute("partial")
	assert.EqualError(t, err, "second step failed")
	assert.Equal(t, []string{"habits"}, blobs.writes)
}

func TestTickDoesNotPersistTicked(t *testing.T) {
	mgr, blobs, _ := newManager(t, model.Data{
		Tasks: []entity.Task{{Name: "Buy milk", Deadline: entity.MustDate("2024-01-01")}},
	}, nil)

	res, err := mgr.Execute("tick 1")
	require.NoError(t, err)
	assert.Equal(t, command.ViewTicked, res.View)
	assert.Equal(t, []string{"tasks"}, blobs.writes)
	assert.Equal(t, 1, mgr.Model().Ticked.Len())
}

func TestUndoRedoDoNotSave(t *testing.T) {
	mgr, blobs, _ := newManager(t, model.Data{}, nil)

	_, err := mgr.Execute("add habit n/Read")
	require.NoError(t, err)
	blobs.writes = nil

	_, err = mgr.Execute("undo habits")
	require.NoError(t, err)
	assert.Zero(t, mgr.Model().Habits.Len())
	assert.False(t, mgr.Model().Habits.Dirty())

	_, err = mgr.Execute("redo habits")
	require.NoError(t, err)
	assert.Equal(t, 1, mgr.Model().Habits.Len())

	_, err = mgr.Execute("undo habits")
	require.NoError(t, err)
	_, err = mgr.Execute("redo habits")
	require.NoError(t, err)
	_, err = mgr.Execute("redo habits")
	assert.ErrorIs(t, err, collection.ErrNoHistory)

	assert.Empty(t, blobs.writes)
}

func TestViewOnlyCommandsDoNotSave(t *testing.T) {
	mgr, blobs, _ := newManager(t, model.Data{
		Contacts: []entity.Contact{{Name: "Alex Yeoh", Phone: "123", Email: "a@x.io"}},
	}, nil)

	for _, text := range []string{"find contact alex", "select contact 1", "list contacts", "history", "help"} {
		_, err := mgr.Execute(text)
		require.NoError(t, err, text)
	}
	assert.Empty(t, blobs.writes)
}

func TestHistoryCommandSeesEarlierInput(t *testing.T) {
	mgr, _, _ := newManager(t, model.Data{}, nil)
	_, _ = mgr.Execute("list tasks")
	res, err := mgr.Execute("history")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "list tasks")
}

func TestCloseStopsObserving(t *testing.T) {
	mgr, blobs, _ := newManager(t, model.Data{}, nil)
	mgr.Close()
	require.NoError(t, mgr.Model().Habits.Add(entity.Habit{Title: "Read"}))
	assert.False(t, mgr.modified[collection.KindHabits])
	assert.Empty(t, blobs.writes)
}
