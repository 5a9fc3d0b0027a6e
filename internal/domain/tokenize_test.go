package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty input", "", []string{}},
		{"only whitespace", " \t\n ", []string{}},
		{"single word", "great", []string{"great"}},
		{"collapses whitespace runs", "This  is\tgreat!\n Not bad.", []string{"This", "is", "great!", "Not", "bad."}},
		{"keeps punctuation attached", `"Great, truly great"`, []string{`"Great,`, "truly", `great"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"plain word", "great", "great"},
		{"trailing punctuation", "great!", "great"},
		{"leading and trailing", `"(bad.)"`, "bad"},
		{"interior apostrophe kept", "don't", "don't"},
		{"interior hyphen kept", "well-made,", "well-made"},
		{"leading digits stripped", "3rd", "rd"},
		{"interior digits kept", "mp3player!", "mp3player"},
		{"trailing digits stripped", "abc123", "abc"},
		{"case preserved", "GREAT!!", "GREAT"},
		{"unicode letters", "¡café!", "café"},
		{"empty token", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.token))
		})
	}
}

func TestNormalize_NoLetters(t *testing.T) {
	for _, token := range []string{"!!!", "123", "...", "--", "42!", "$5.00", "😀"} {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, "", Normalize(token), "tokens without letters normalize to empty")
		})
	}
}

func TestTrailingPunctuation(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"none", "great", ""},
		{"single mark", "great!", "!"},
		{"suffix is reversed", "wow?!", "!?"},
		{"quote and period reversed", `end."`, `".`},
		{"digit stops the scan", "top10!", "!"},
		{"all punctuation", "?!.", ".!?"},
		{"empty token", "", ""},
		{"leading punctuation ignored", "*happy", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrailingPunctuation(tt.token))
		})
	}
}
