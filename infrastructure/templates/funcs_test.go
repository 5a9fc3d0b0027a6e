package templates

import (
	"math/rand/v2"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-revsent/internal/domain"
)

func testLists() domain.AdjectiveLists {
	return domain.AdjectiveLists{
		Positive: []string{"superb", "lovely"},
		Negative: []string{"awful", "clunky"},
	}
}

func TestFuncMap(t *testing.T) {
	funcMap := FuncMap(testLists(), rand.New(rand.NewPCG(7, 7)))
	require.NotNil(t, funcMap)

	expectedFunctions := []string{
		"positiveAdjective", "negativeAdjective", "randomAdjective",
		"punctuation", "normalize",
		"lower", "upper", "trim", "join", "truncate",
	}
	assert.Len(t, funcMap, len(expectedFunctions))
	for _, name := range expectedFunctions {
		assert.Contains(t, funcMap, name, "FuncMap should contain function '%s'", name)
	}
}

func execute(t *testing.T, funcMap template.FuncMap, text string) (string, error) {
	t.Helper()
	tmpl, err := template.New("t").Funcs(funcMap).Parse(text)
	require.NoError(t, err)
	var b strings.Builder
	err = tmpl.Execute(&b, nil)
	return b.String(), err
}

func TestFuncMap_Adjectives(t *testing.T) {
	lists := testLists()
	funcMap := FuncMap(lists, rand.New(rand.NewPCG(7, 7)))

	for range 20 {
		got, err := execute(t, funcMap, "{{positiveAdjective}}")
		require.NoError(t, err)
		assert.Contains(t, lists.Positive, got)

		got, err = execute(t, funcMap, "{{negativeAdjective}}")
		require.NoError(t, err)
		assert.Contains(t, lists.Negative, got)

		got, err = execute(t, funcMap, "{{randomAdjective}}")
		require.NoError(t, err)
		assert.Contains(t, append(append([]string{}, lists.Positive...), lists.Negative...), got)
	}

	t.Run("empty list fails execution", func(t *testing.T) {
		empty := FuncMap(domain.AdjectiveLists{}, rand.New(rand.NewPCG(1, 1)))
		_, err := execute(t, empty, "{{positiveAdjective}}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive adjectives")
	})
}

func TestFuncMap_Strings(t *testing.T) {
	funcMap := FuncMap(testLists(), rand.New(rand.NewPCG(7, 7)))

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"punctuation reversed", `{{punctuation "wow?!"}}`, "!?"},
		{"punctuation none", `{{punctuation "wow"}}`, ""},
		{"normalize", `{{normalize "\"great!\""}}`, "great"},
		{"lower", `{{lower "LOUD"}}`, "loud"},
		{"upper", `{{upper "quiet"}}`, "QUIET"},
		{"trim", `{{trim "  padded  "}}`, "padded"},
		{"truncate", `{{truncate "a very long review" 9}}`, "a very..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, funcMap, tt.tmpl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{"non-positive length", "hello", 0, ""},
		{"within limit", "hello", 5, "hello"},
		{"ellipsis", "hello world", 8, "hello..."},
		{"short limit has no ellipsis", "hello", 2, "he"},
		{"counts runes", "héllo wörld", 7, "héll..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.length))
		})
	}
}
