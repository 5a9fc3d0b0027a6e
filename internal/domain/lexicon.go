// Package domain contains the pure scoring model for review sentiment:
// the lexicon, tokenization rules, per-document scoring, and group
// aggregation and comparison.
package domain

import "strings"

// Lexicon is an immutable table mapping lowercase words to sentiment
// scores. Scores are nominally in [-1, 1] but the range is not enforced.
// A Lexicon is read-only after construction and safe to share.
type Lexicon struct {
	scores map[string]float64
}

// NewLexicon builds a Lexicon from entries, lowercasing every key.
// Keys that collide after lowercasing resolve in unspecified order; use
// LexiconBuilder when insertion order matters.
func NewLexicon(entries map[string]float64) *Lexicon {
	b := NewLexiconBuilder()
	for word, score := range entries {
		b.Add(word, score)
	}
	return b.Build()
}

// Lookup returns the score stored for key and whether it was present.
// The key is matched exactly; callers lowercase before lookup.
func (l *Lexicon) Lookup(key string) (float64, bool) {
	if l == nil {
		return 0, false
	}
	score, ok := l.scores[key]
	return score, ok
}

// Len reports the number of distinct words in the lexicon.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.scores)
}

// LexiconBuilder accumulates entries in order. A later entry for the same
// lowercase word replaces an earlier one.
type LexiconBuilder struct {
	scores map[string]float64
}

// NewLexiconBuilder returns an empty builder.
func NewLexiconBuilder() *LexiconBuilder {
	return &LexiconBuilder{scores: make(map[string]float64)}
}

// Add records score for word.
func (b *LexiconBuilder) Add(word string, score float64) {
	b.scores[strings.ToLower(word)] = score
}

// Len reports the number of distinct words added so far.
func (b *LexiconBuilder) Len() int { return len(b.scores) }

// Build returns a Lexicon holding a copy of the accumulated entries.
// The builder may continue to be used afterwards.
func (b *LexiconBuilder) Build() *Lexicon {
	scores := make(map[string]float64, len(b.scores))
	for word, score := range b.scores {
		scores[word] = score
	}
	return &Lexicon{scores: scores}
}
