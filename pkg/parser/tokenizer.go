package parser

import (
	"sort"
	"strings"
	"unicode"
)

// Field prefixes.
const (
	prefixName     = "n/"
	prefixPhone    = "p/"
	prefixEmail    = "e/"
	prefixAddress  = "a/"
	prefixTag      = "t/"
	prefixDate     = "d/"
	prefixTime     = "h/"
	prefixPrice    = "$/"
	prefixSets     = "s/"
	prefixReps     = "r/"
	prefixDuration = "l/"
	prefixStreak   = "k/"
)

// arguments holds the text before the first prefix and every prefixed value
// in order of appearance.
type arguments struct {
	preamble string
	values   map[string][]string
}

type position struct {
	at     int
	prefix string
}

// tokenize splits args on the given prefixes. A prefix only counts at the
// start of args or after whitespace, so "a/b" inside a value is left alone.
func tokenize(args string, prefixes ...string) arguments {
	var found []position
	for _, prefix := range prefixes {
		from := 0
		for {
			i := strings.Index(args[from:], prefix)
			if i < 0 {
				break
			}
			at := from + i
			if at == 0 || unicode.IsSpace(rune(args[at-1])) {
				found = append(found, position{at: at, prefix: prefix})
			}
			from = at + len(prefix)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].at < found[j].at })

	out := arguments{values: map[string][]string{}}
	if len(found) == 0 {
		out.preamble = strings.TrimSpace(args)
		return out
	}
	out.preamble = strings.TrimSpace(args[:found[0].at])
	for i, p := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].at
		}
		v := strings.TrimSpace(args[p.at+len(p.prefix) : end])
		out.values[p.prefix] = append(out.values[p.prefix], v)
	}
	return out
}

// value returns the last value given for prefix.
func (a arguments) value(prefix string) (string, bool) {
	vs := a.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (a arguments) all(prefix string) []string {
	return a.values[prefix]
}

func (a arguments) has(prefix string) bool {
	return len(a.values[prefix]) > 0
}

func (a arguments) empty() bool {
	return len(a.values) == 0
}
