package templates

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"text/template"

	"github.com/ahrav/go-revsent/internal/domain"
	"github.com/ahrav/go-revsent/internal/ports"
)

// SlotMarker prefixes a token that is replaced by an adjective.
const SlotMarker = "*"

var _ ports.ReviewGenerator = (*Generator)(nil)

var tokenPattern = regexp.MustCompile(`\S+`)

// Generator fills review templates with adjectives. It owns its random
// source and is not safe for concurrent use.
type Generator struct {
	lists domain.AdjectiveLists
	rng   *rand.Rand
	funcs template.FuncMap
}

// NewGenerator creates a Generator drawing from lists with rng.
func NewGenerator(lists domain.AdjectiveLists, rng *rand.Rand) *Generator {
	return &Generator{
		lists: lists,
		rng:   rng,
		funcs: FuncMap(lists, rng),
	}
}

// Generate executes text as a template and then fills its "*" slots with
// adjectives of the given tone. An empty tone picks from either list.
func (g *Generator) Generate(text string, tone domain.Tone) (string, error) {
	tmpl, err := template.New("review").Funcs(g.funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse review template: %w", err)
	}

	var b strings.Builder
	data := struct{ Tone string }{Tone: string(tone)}
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to execute review template: %w", err)
	}

	return FakeReview(b.String(), g.lists, g.rng, tone)
}

// FakeReview replaces every whitespace-delimited token of text that starts
// with SlotMarker by an adjective of the given tone followed by the
// token's trailing punctuation. Whitespace between tokens is preserved.
func FakeReview(text string, lists domain.AdjectiveLists, rng *rand.Rand, tone domain.Tone) (string, error) {
	var firstErr error
	out := tokenPattern.ReplaceAllStringFunc(text, func(tok string) string {
		if firstErr != nil || !strings.HasPrefix(tok, SlotMarker) {
			return tok
		}
		adj, err := lists.Pick(tone, rng)
		if err != nil {
			firstErr = fmt.Errorf("slot %q: %w", tok, err)
			return tok
		}
		return adj + domain.TrailingPunctuation(tok)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}
