package domain

import "fmt"

// Preference is the outcome of comparing the average sentiment of two
// groups.
type Preference int

const (
	// Inconclusive means at least one group has no documents, so no
	// comparison was made.
	Inconclusive Preference = iota

	// PreferFirst means the first group's average is strictly greater.
	PreferFirst

	// PreferSecond means the first group's average is strictly less.
	PreferSecond

	// EquallyLiked means both averages are exactly equal.
	EquallyLiked
)

var preferenceNames = map[Preference]string{
	Inconclusive: "inconclusive",
	PreferFirst:  "prefer_first",
	PreferSecond: "prefer_second",
	EquallyLiked: "equally_liked",
}

// String returns the snake_case name of p.
func (p Preference) String() string {
	if name, ok := preferenceNames[p]; ok {
		return name
	}
	return fmt.Sprintf("preference(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler so a Preference encodes as
// its name in JSON.
func (p Preference) MarshalText() ([]byte, error) {
	if _, ok := preferenceNames[p]; !ok {
		return nil, fmt.Errorf("unknown preference %d", int(p))
	}
	return []byte(p.String()), nil
}

// Compare decides which of two groups is liked more by average sentiment.
// Averages are compared exactly, with no tolerance, so EquallyLiked is
// only reported for bit-identical averages.
func Compare(first, second GroupAggregate) Preference {
	a, okA := first.Average()
	b, okB := second.Average()
	if !okA || !okB {
		return Inconclusive
	}

	switch {
	case a > b:
		return PreferFirst
	case a < b:
		return PreferSecond
	default:
		return EquallyLiked
	}
}
