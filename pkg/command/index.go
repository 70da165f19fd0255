package command

import "fmt"

// Index is a zero-based position in a filtered view.
type Index int

// IndexFromOneBased converts user input. Only the shape is checked here;
// bounds depend on the view at execution time.
func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return 0, fmt.Errorf("index must be a positive integer, got %d", n)
	}
	return Index(n - 1), nil
}

func (i Index) OneBased() int {
	return int(i) + 1
}

func resolve[E any](view []E, i Index) (E, bool) {
	if i < 0 || int(i) >= len(view) {
		var zero E
		return zero, false
	}
	return view[i], true
}
