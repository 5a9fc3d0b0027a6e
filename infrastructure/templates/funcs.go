// Package templates generates review text from templates whose adjective
// slots are filled from the positive and negative adjective lists.
//
// A template is first executed as a text/template with the functions from
// FuncMap, so it may call the adjective pickers directly:
//
//	This app is {{positiveAdjective}} but the ads are {{negativeAdjective}}.
//
// Any remaining whitespace-delimited token that starts with "*" is then
// treated as a slot and replaced by an adjective of the requested tone,
// keeping the token's trailing punctuation ("*word!" becomes "superb!").
package templates

import (
	"math/rand/v2"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/ahrav/go-revsent/internal/domain"
)

// FuncMap returns the template functions available to review templates.
// The adjective functions draw from lists using rng and fail the template
// execution when the list they need is empty.
func FuncMap(lists domain.AdjectiveLists, rng *rand.Rand) template.FuncMap {
	return template.FuncMap{
		// Template usage: {{positiveAdjective}}
		"positiveAdjective": func() (string, error) {
			return lists.RandomPositive(rng)
		},

		// Template usage: {{negativeAdjective}}
		"negativeAdjective": func() (string, error) {
			return lists.RandomNegative(rng)
		},

		// randomAdjective picks either list with equal probability.
		// Template usage: {{randomAdjective}}
		"randomAdjective": func() (string, error) {
			return lists.RandomAdjective(rng)
		},

		// punctuation returns the trailing punctuation of word.
		// Template usage: {{punctuation "great!?"}}
		"punctuation": domain.TrailingPunctuation,

		// normalize strips surrounding non-letters from word.
		// Template usage: {{normalize $word}}
		"normalize": domain.Normalize,

		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"trim":  strings.TrimSpace,

		// Template usage: {{join $items ", "}}
		"join": func(elems []string, sep string) string {
			return strings.Join(elems, sep)
		},

		// truncate limits s to length runes, adding "..." if truncated.
		// Returns empty string if length <= 0.
		// Template usage: {{truncate $review 80}}
		"truncate": truncate,
	}
}

func truncate(s string, length int) string {
	if length <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	runes := []rune(s)
	// Reserve space for ellipsis when length allows.
	if length > 3 {
		return string(runes[:length-3]) + "..."
	}
	return string(runes[:length])
}
