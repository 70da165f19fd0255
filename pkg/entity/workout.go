package entity

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/life/pkg/timeutil"
)

// Workout is one logged exercise session.
type Workout struct {
	Exercise string        `json:"exercise"`
	Sets     int           `json:"sets"`
	Reps     int           `json:"reps"`
	Duration time.Duration `json:"duration"`
	Date     Date          `json:"date"`
}

// NewWorkout validates the fields and builds a Workout.
func NewWorkout(exercise string, sets, reps int, duration time.Duration, date Date) (Workout, error) {
	w := Workout{
		Exercise: strings.TrimSpace(exercise),
		Sets:     sets,
		Reps:     reps,
		Duration: duration,
		Date:     date,
	}
	if err := w.Validate(); err != nil {
		return Workout{}, err
	}
	return w, nil
}

// Validate checks the workout fields.
func (w Workout) Validate() error {
	if w.Exercise == "" {
		return fmt.Errorf("%w: exercise names should not be blank", ErrInvalidField)
	}
	if w.Sets <= 0 || w.Reps <= 0 {
		return fmt.Errorf("%w: sets and reps should be positive whole numbers", ErrInvalidField)
	}
	if w.Duration <= 0 {
		return fmt.Errorf("%w: workout durations should be greater than zero", ErrInvalidField)
	}
	if w.Date.IsZero() {
		return fmt.Errorf("%w: workouts need a date", ErrInvalidField)
	}
	return nil
}

// IsSame is full equality; two identical log lines are duplicates.
func (w Workout) IsSame(other Workout) bool {
	return w.Equal(other)
}

func (w Workout) Equal(other Workout) bool {
	return strings.EqualFold(w.Exercise, other.Exercise) &&
		w.Sets == other.Sets &&
		w.Reps == other.Reps &&
		w.Duration == other.Duration &&
		w.Date.Same(other.Date)
}

func (w Workout) String() string {
	return fmt.Sprintf("%s Sets: %d Reps: %d Time: %s Date: %s",
		w.Exercise, w.Sets, w.Reps, timeutil.FormatDuration(w.Duration), w.Date)
}
