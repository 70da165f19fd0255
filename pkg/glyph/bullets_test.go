package glyph

import (
	"testing"

	"tableflip.dev/life/pkg/collection"
)

func TestEveryKindHasAGlyph(t *testing.T) {
	seen := map[string]collection.Kind{}
	for _, k := range collection.AllKinds() {
		g := For(k)
		if g.Kind != k || g.Meaning == "" {
			t.Fatalf("no glyph for %s", k)
		}
		if other, dup := seen[g.Symbol]; dup {
			t.Fatalf("%s and %s share glyph %q", k, other, g.Symbol)
		}
		seen[g.Symbol] = k
	}
	if For("nope").Symbol != " " {
		t.Fatalf("expected blank glyph for unknown kind")
	}
}

func TestStrike(t *testing.T) {
	if got, want := Strike("done"), "\x1b[9mdone\x1b[0m"; got != want {
		t.Fatalf("Strike() = %q, want %q", got, want)
	}
}
