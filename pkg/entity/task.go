package entity

import (
	"fmt"
	"regexp"
	"strings"
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Task is a to-do item with a deadline. Ticked tasks use the same type.
type Task struct {
	Name     string   `json:"name"`
	Deadline Date     `json:"deadline"`
	Time     string   `json:"time,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// NewTask validates the fields and builds a Task. clock is an optional HH:MM.
func NewTask(name string, deadline Date, clock string, tags []string) (Task, error) {
	t := Task{
		Name:     strings.TrimSpace(name),
		Deadline: deadline,
		Time:     strings.TrimSpace(clock),
		Tags:     normalizeTags(tags),
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate checks the task fields.
func (t Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: task names should not be blank", ErrInvalidField)
	}
	if t.Deadline.IsZero() {
		return fmt.Errorf("%w: tasks need a deadline date", ErrInvalidField)
	}
	if t.Time != "" && !timePattern.MatchString(t.Time) {
		return fmt.Errorf("%w: times should be in the 24-hour format HH:MM", ErrInvalidField)
	}
	return nil
}

// IsSame reports whether both tasks share a name and a deadline date.
func (t Task) IsSame(other Task) bool {
	return strings.EqualFold(t.Name, other.Name) && t.Deadline.Same(other.Deadline)
}

func (t Task) Equal(other Task) bool {
	return t.Name == other.Name &&
		t.Deadline.Same(other.Deadline) &&
		t.Time == other.Time &&
		tagsEqual(t.Tags, other.Tags)
}

// Matches reports whether any keyword is a word of the task name.
func (t Task) Matches(keywords []string) bool {
	return MatchesWord(t.Name, keywords)
}

func (t Task) String() string {
	due := t.Deadline.String()
	if t.Time != "" {
		due += " " + t.Time
	}
	return fmt.Sprintf("%s Deadline: %s%s", t.Name, due, formatTags(t.Tags))
}

// CompareTaskDeadline orders tasks by deadline date, then time, then name.
func CompareTaskDeadline(a, b Task) int {
	if c := a.Deadline.Cmp(b.Deadline); c != 0 {
		return c
	}
	switch {
	case a.Time == b.Time:
	case a.Time == "":
		return 1
	case b.Time == "":
		return -1
	default:
		return strings.Compare(a.Time, b.Time)
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}
