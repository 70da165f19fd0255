// Package glyph holds the markers printed in front of each kind of record.
package glyph

import (
	"fmt"

	"tableflip.dev/life/pkg/collection"
)

type Glyph struct {
	Symbol  string
	Meaning string
	Kind    collection.Kind
}

const (
	escape     = "\x1b"
	resetCode  = 0
	faintCode  = 2
	strikeCode = 9
)

// Selected marks the selected row of a list.
var Selected = Glyph{Symbol: "›", Meaning: "selected"}

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Faint(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, faintCode, in, escape, resetCode)
}

// DefaultGlyphs returns one glyph per collection kind, in collection.AllKinds
// order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Symbol: "☺", Meaning: "contact", Kind: collection.KindContacts},
		{Symbol: "●", Meaning: "task", Kind: collection.KindTasks},
		{Symbol: "✘", Meaning: "task ticked", Kind: collection.KindTicked},
		{Symbol: "$", Meaning: "purchase", Kind: collection.KindPurchases},
		{Symbol: "⚑", Meaning: "workout", Kind: collection.KindWorkouts},
		{Symbol: "○", Meaning: "habit", Kind: collection.KindHabits},
	}
}

// For returns the glyph of kind k, or an empty glyph for an unknown kind.
func For(k collection.Kind) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Kind == k {
			return g
		}
	}
	return Glyph{Symbol: " ", Kind: k}
}

func (g Glyph) String() string {
	return g.Symbol
}
