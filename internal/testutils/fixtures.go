package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-revsent/internal/domain"
)

// LexiconCSV is a small lexicon in the "word,score" format.
const LexiconCSV = `great,2.5
good,1.5
love,3
bad,-2
terrible,-3.5
fine,0
`

// ReviewsCSV is a review file with a header row, a quoted review containing
// commas, a row for an unrelated app and a short row that must be skipped.
const ReviewsCSV = `app,date,rating,review
Spotify,2021-01-01,5,"great app, love it"
Apple Music,2021-01-02,1,terrible and bad
spotify,2021-01-03,4,good
Pandora,2021-01-04,3,great
Spotify,2021-01-05
`

// PositiveAdjectives and NegativeAdjectives are small adjective lists.
var (
	PositiveAdjectives = []string{"wonderful", "superb", "delightful"}
	NegativeAdjectives = []string{"dreadful", "awful", "clumsy"}
)

// Lexicon returns the domain lexicon equivalent to LexiconCSV.
func Lexicon() *domain.Lexicon {
	return domain.NewLexicon(map[string]float64{
		"great":    2.5,
		"good":     1.5,
		"love":     3,
		"bad":      -2,
		"terrible": -3.5,
		"fine":     0,
	})
}

// Adjectives returns the fixture adjective lists.
func Adjectives() domain.AdjectiveLists {
	return domain.AdjectiveLists{
		Positive: append([]string(nil), PositiveAdjectives...),
		Negative: append([]string(nil), NegativeAdjectives...),
	}
}

// WriteFile writes content to name inside a per-test temporary directory
// and returns the full path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
