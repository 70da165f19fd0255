package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/entity"
	"tableflip.dev/life/pkg/history"
	"tableflip.dev/life/pkg/model"
)

// DefaultRecent is how many workouts Recent shows when no count is given.
const DefaultRecent = 3

// Tick moves the task at Index of the filtered task view to the ticked list.
type Tick struct {
	Index Index
}

func (c Tick) Execute(m *model.Model, _ *history.Log) (Result, error) {
	task, ok := resolve(m.Tasks.Filtered(), c.Index)
	if !ok {
		return Result{}, invalidIndex(collection.KindTasks, Tasks.Noun)
	}
	if err := m.Ticked.Add(task); err != nil {
		if errors.Is(err, collection.ErrDuplicate) {
			return Result{}, validation(collection.KindTicked, err, "This task has already been ticked")
		}
		return Result{}, err
	}
	if err := m.Tasks.Delete(task); err != nil {
		return Result{}, validation(collection.KindTasks, err, "The task to tick could not be found")
	}
	m.Ticked.Commit()
	m.Tasks.Commit()
	return Result{Message: fmt.Sprintf("Ticked task: %s", task), View: ViewTicked}, nil
}

// Recent filters the workouts to the N most recently added.
type Recent struct {
	N int
}

func (c Recent) Execute(m *model.Model, _ *history.Log) (Result, error) {
	n := c.N
	if n <= 0 {
		n = DefaultRecent
	}
	items := m.Workouts.Items()
	latest := items[max(0, len(items)-n):]
	m.Workouts.SetFilter(func(w entity.Workout) bool {
		return slices.ContainsFunc(latest, w.Equal)
	})
	return Result{Message: fmt.Sprintf("Showing the %d most recent workouts", len(latest)), View: ViewWorkouts}, nil
}

// Total sums the prices of the purchases in the filtered view.
type Total struct{}

func (Total) Execute(m *model.Model, _ *history.Log) (Result, error) {
	view := m.Purchases.Filtered()
	var sum entity.Price
	for _, p := range view {
		sum += p.Price
	}
	return Result{Message: fmt.Sprintf("Total expenditure: %s over %d purchases", sum, len(view)), View: ViewPurchases}, nil
}

// History lists previously entered commands, most recent first.
type History struct{}

func (History) Execute(_ *model.Model, h *history.Log) (Result, error) {
	entries := h.Recent()
	if len(entries) == 0 {
		return Result{Message: "You have not yet entered any commands."}, nil
	}
	return Result{Message: "Entered commands (from most recent to earliest):\n" + strings.Join(entries, "\n")}, nil
}

// Help shows Text, the usage summary supplied by the parser.
type Help struct {
	Text string
}

func (c Help) Execute(*model.Model, *history.Log) (Result, error) {
	return Result{Message: c.Text, View: ViewHelp}, nil
}

// Save changes nothing. The dispatch cycle flushes anything still dirty.
type Save struct{}

func (Save) Execute(*model.Model, *history.Log) (Result, error) {
	return Result{Message: "Saving any pending changes"}, nil
}

type Exit struct{}

func (Exit) Execute(*model.Model, *history.Log) (Result, error) {
	return Result{Message: "Exiting life as requested ...", View: ViewExit}, nil
}
