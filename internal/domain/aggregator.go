package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// GroupAggregate is the running sentiment total and document count of one
// named group of reviews. The zero value is an empty group.
type GroupAggregate struct {
	// Total is the sum of the document totals accumulated so far.
	Total float64 `json:"total"`

	// Count is the number of documents accumulated so far.
	Count int `json:"count"`
}

// Accumulate adds one document's total sentiment to the group.
func (g *GroupAggregate) Accumulate(documentTotal float64) {
	g.Total += documentTotal
	g.Count++
}

// HasData reports whether at least one document was accumulated.
func (g GroupAggregate) HasData() bool { return g.Count > 0 }

// Average returns Total/Count. The second result is false when the group
// is empty, in which case no average exists and the first result is 0.
func (g GroupAggregate) Average() (float64, bool) {
	if g.Count == 0 {
		return 0, false
	}
	return g.Total / float64(g.Count), true
}

// Tally holds the aggregates of a fixed, ordered set of named groups.
// Incoming group names are matched against the configured names with
// Unicode case folding. A Tally is not safe for concurrent use.
type Tally struct {
	names  []string
	folded map[string]int
	groups []GroupAggregate
	fold   cases.Caser
}

// NewTally creates a Tally for the given group names. Names are trimmed;
// empty names and names equal under case folding are rejected.
func NewTally(names ...string) (*Tally, error) {
	t := &Tally{
		names:  make([]string, 0, len(names)),
		folded: make(map[string]int, len(names)),
		groups: make([]GroupAggregate, len(names)),
		fold:   cases.Fold(),
	}

	verr := NewValidationError("Tally")
	if len(names) == 0 {
		verr.AddError("at least one group name is required")
	}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			verr.AddError(fmt.Sprintf("group %d has an empty name", i))
			continue
		}
		key := t.fold.String(name)
		if prev, dup := t.folded[key]; dup {
			verr.AddError(fmt.Sprintf("group %q duplicates group %q", name, t.names[prev]))
			continue
		}
		t.folded[key] = len(t.names)
		t.names = append(t.names, name)
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return t, nil
}

// Names returns the configured group names in order.
func (t *Tally) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Match returns the configured group name that raw refers to. raw is
// compared whole, case-insensitively; it is not trimmed.
func (t *Tally) Match(raw string) (string, bool) {
	idx, ok := t.folded[t.fold.String(raw)]
	if !ok {
		return "", false
	}
	return t.names[idx], true
}

// Accumulate adds documentTotal to the group raw matches.
// It returns ErrUnknownGroup when raw matches no configured group.
func (t *Tally) Accumulate(raw string, documentTotal float64) error {
	idx, ok := t.folded[t.fold.String(raw)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, raw)
	}
	t.groups[idx].Accumulate(documentTotal)
	return nil
}

// Group returns the aggregate of the configured group name, matched
// case-insensitively.
func (t *Tally) Group(name string) (GroupAggregate, bool) {
	idx, ok := t.folded[t.fold.String(name)]
	if !ok {
		return GroupAggregate{}, false
	}
	return t.groups[idx], true
}
