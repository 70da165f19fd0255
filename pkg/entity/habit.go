package entity

import (
	"fmt"
	"strings"
)

// Habit is a routine tracked by its current streak.
type Habit struct {
	Title  string   `json:"title"`
	Streak int      `json:"streak"`
	Tags   []string `json:"tags,omitempty"`
}

// NewHabit validates the fields and builds a Habit.
func NewHabit(title string, streak int, tags []string) (Habit, error) {
	h := Habit{
		Title:  strings.TrimSpace(title),
		Streak: streak,
		Tags:   normalizeTags(tags),
	}
	if err := h.Validate(); err != nil {
		return Habit{}, err
	}
	return h, nil
}

// Validate checks the habit fields.
func (h Habit) Validate() error {
	if h.Title == "" {
		return fmt.Errorf("%w: habit titles should not be blank", ErrInvalidField)
	}
	if h.Streak < 0 {
		return fmt.Errorf("%w: streaks cannot be negative", ErrInvalidField)
	}
	return nil
}

// IsSame reports whether both habits have the same title.
func (h Habit) IsSame(other Habit) bool {
	return strings.EqualFold(h.Title, other.Title)
}

func (h Habit) Equal(other Habit) bool {
	return h.Title == other.Title && h.Streak == other.Streak && tagsEqual(h.Tags, other.Tags)
}

// Matches reports whether any keyword is a word of the habit title.
func (h Habit) Matches(keywords []string) bool {
	return MatchesWord(h.Title, keywords)
}

func (h Habit) String() string {
	return fmt.Sprintf("%s Streak: %d%s", h.Title, h.Streak, formatTags(h.Tags))
}
