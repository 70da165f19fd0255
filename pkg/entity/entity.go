// Package entity defines the records managed by life: contacts, tasks,
// purchases, workouts and habits.
//
// Every record offers two notions of sameness. Equal is full field equality.
// IsSame is the weaker identity used to keep duplicates out of a collection.
package entity

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidField is wrapped by every constructor validation failure.
	ErrInvalidField = errors.New("entity: invalid field")
)

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func tagsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, "][") + "]"
}

// MatchesWord reports whether any keyword equals, ignoring case, a whole word
// of text.
func MatchesWord(text string, keywords []string) bool {
	words := strings.Fields(text)
	for _, keyword := range keywords {
		for _, word := range words {
			if strings.EqualFold(word, keyword) {
				return true
			}
		}
	}
	return false
}
