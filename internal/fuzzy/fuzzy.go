// Package fuzzy finds the closest long option name for "did you mean"
// hints attached to unknown option errors.
package fuzzy

import (
	"strings"
)

// DefaultMaxDistance is the edit distance used by Suggest.
const DefaultMaxDistance = 2

// Matcher ranks candidate names by edit distance to an input.
type Matcher struct {
	maxDistance int
	minLength   int
	prev, cur   []int // reusable rows for the distance computation
}

// NewMatcher creates a matcher accepting candidates within maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single letters are not worth a hint
	}
}

// Match is a ranked candidate.
type Match struct {
	Value    string
	Distance int
	Prefix   int // length in runes of the prefix shared with the input
}

// FindBest returns the closest candidate, or "" when none is close enough.
// Ties are broken by the longer shared prefix, then by candidate order.
func (m *Matcher) FindBest(input string, candidates []string) string {
	best, ok := m.best(input, candidates)
	if !ok {
		return ""
	}
	return best.Value
}

func (m *Matcher) best(input string, candidates []string) (Match, bool) {
	in := []rune(strings.ToLower(input))
	if len(in) < m.minLength {
		return Match{}, false
	}

	var best Match
	found := false
	for _, candidate := range candidates {
		c := []rune(strings.ToLower(candidate))
		d := m.distance(in, c)
		if candidate == input || d > m.maxDistance {
			continue
		}
		match := Match{Value: candidate, Distance: d, Prefix: commonPrefix(in, c)}
		if !found || better(match, best) {
			best, found = match, true
		}
	}
	return best, found
}

func better(a, b Match) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Prefix > b.Prefix
}

// distance is the Levenshtein distance between a and b, or maxDistance+1
// as soon as the result is known to exceed maxDistance.
func (m *Matcher) distance(a, b []rune) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	if cap(m.prev) < len(a)+1 {
		m.prev = make([]int, len(a)+1)
		m.cur = make([]int, len(a)+1)
	}
	prev, cur := m.prev[:len(a)+1], m.cur[:len(a)+1]
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Suggest returns the closest name to input within DefaultMaxDistance edits.
func Suggest(input string, names []string) string {
	return NewMatcher(DefaultMaxDistance).FindBest(input, names)
}
