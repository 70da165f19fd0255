package command

import (
	"errors"
	"fmt"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/history"
	"tableflip.dev/life/pkg/model"
)

// Add appends Item and commits.
type Add[E Item[E]] struct {
	Of   Binding[E]
	Item E
}

func (c Add[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	col := c.Of.Get(m)
	if err := col.Add(c.Item); err != nil {
		if errors.Is(err, collection.ErrDuplicate) {
			return Result{}, validation(c.Of.Kind, err, "This %s already exists in the %s", c.Of.Noun, c.Of.Kind.Label())
		}
		return Result{}, err
	}
	col.Commit()
	return Result{Message: fmt.Sprintf("New %s added: %s", c.Of.Noun, c.Item), View: c.Of.hint()}, nil
}

// Delete removes the item at Index of the filtered view and commits.
type Delete[E Item[E]] struct {
	Of    Binding[E]
	Index Index
}

func (c Delete[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	col := c.Of.Get(m)
	target, ok := resolve(col.Filtered(), c.Index)
	if !ok {
		return Result{}, invalidIndex(c.Of.Kind, c.Of.Noun)
	}
	if err := col.Delete(target); err != nil {
		return Result{}, validation(c.Of.Kind, err, "The %s to delete could not be found", c.Of.Noun)
	}
	col.Commit()
	return Result{Message: fmt.Sprintf("Deleted %s: %s", c.Of.Noun, target), View: c.Of.hint()}, nil
}

// Edit replaces the item at Index with the result of Apply and commits.
// Apply merges the edited fields into the current item and validates it.
type Edit[E Item[E]] struct {
	Of    Binding[E]
	Index Index
	Apply func(current E) (E, error)
}

func (c Edit[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	col := c.Of.Get(m)
	target, ok := resolve(col.Filtered(), c.Index)
	if !ok {
		return Result{}, invalidIndex(c.Of.Kind, c.Of.Noun)
	}
	edited, err := c.Apply(target)
	if err != nil {
		return Result{}, &ValidationError{Kind: c.Of.Kind, Msg: err.Error(), Err: err}
	}
	if err := col.Replace(target, edited); err != nil {
		if errors.Is(err, collection.ErrDuplicate) {
			return Result{}, validation(c.Of.Kind, err, "This %s already exists in the %s", c.Of.Noun, c.Of.Kind.Label())
		}
		return Result{}, validation(c.Of.Kind, err, "The %s to edit could not be found", c.Of.Noun)
	}
	col.Commit()
	return Result{Message: fmt.Sprintf("Edited %s: %s", c.Of.Noun, edited), View: c.Of.hint()}, nil
}

// List clears any filter.
type List[E Item[E]] struct {
	Of Binding[E]
}

func (c List[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	c.Of.Get(m).SetFilter(nil)
	return Result{Message: fmt.Sprintf("Listed all %ss", c.Of.Noun), View: c.Of.hint()}, nil
}

// Find filters the view to items matching any of Keywords.
type Find[E Item[E]] struct {
	Of       Binding[E]
	Keywords []string
	Match    func(item E, keywords []string) bool
}

func (c Find[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	col := c.Of.Get(m)
	col.SetFilter(func(item E) bool { return c.Match(item, c.Keywords) })
	n := len(col.Filtered())
	noun := c.Of.Noun
	if n != 1 {
		noun += "s"
	}
	return Result{Message: fmt.Sprintf("%d %s listed!", n, noun), View: c.Of.hint()}, nil
}

// Sort reorders the collection and commits.
type Sort[E Item[E]] struct {
	Of  Binding[E]
	By  string
	Cmp func(a, b E) int
}

func (c Sort[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	col := c.Of.Get(m)
	col.Sort(c.Cmp)
	col.Commit()
	msg := fmt.Sprintf("Sorted the %s", c.Of.Kind.Label())
	if c.By != "" {
		msg += " by " + c.By
	}
	return Result{Message: msg, View: c.Of.hint()}, nil
}

// Select marks the item at Index of the filtered view.
type Select[E Item[E]] struct {
	Of    Binding[E]
	Index Index
}

func (c Select[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	col := c.Of.Get(m)
	target, ok := resolve(col.Filtered(), c.Index)
	if !ok {
		return Result{}, invalidIndex(c.Of.Kind, c.Of.Noun)
	}
	if err := col.Select(target); err != nil {
		return Result{}, invalidIndex(c.Of.Kind, c.Of.Noun)
	}
	return Result{Message: fmt.Sprintf("Selected %s: %d", c.Of.Noun, c.Index.OneBased()), View: c.Of.hint()}, nil
}

// Clear empties the collection and commits, so it can be undone.
type Clear[E Item[E]] struct {
	Of Binding[E]
}

func (c Clear[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	col := c.Of.Get(m)
	col.Clear()
	col.Commit()
	return Result{Message: fmt.Sprintf("The %s has been cleared", c.Of.Kind.Label()), View: c.Of.hint()}, nil
}

type Undo[E Item[E]] struct {
	Of Binding[E]
}

func (c Undo[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	if err := c.Of.Get(m).Undo(); err != nil {
		return Result{}, validation(c.Of.Kind, err, "No more commands to undo in the %s", c.Of.Kind.Label())
	}
	return Result{Message: fmt.Sprintf("Undo success on the %s", c.Of.Kind.Label()), View: c.Of.hint()}, nil
}

type Redo[E Item[E]] struct {
	Of Binding[E]
}

func (c Redo[E]) Execute(m *model.Model, _ *history.Log) (Result, error) {
	if err := c.Of.Get(m).Redo(); err != nil {
		return Result{}, validation(c.Of.Kind, err, "No more commands to redo in the %s", c.Of.Kind.Label())
	}
	return Result{Message: fmt.Sprintf("Redo success on the %s", c.Of.Kind.Label()), View: c.Of.hint()}, nil
}
