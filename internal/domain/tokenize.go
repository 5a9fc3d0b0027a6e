package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into raw tokens on runs of whitespace.
// Empty or all-whitespace input yields an empty slice.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Normalize strips the leading and trailing runs of non-letter runes from
// token. Interior punctuation and digits are kept, so "don't!" becomes
// "don't" and "3rd." becomes "rd". A token without letters normalizes to "".
func Normalize(token string) string {
	return strings.TrimRightFunc(strings.TrimLeftFunc(token, notLetter), notLetter)
}

// TrailingPunctuation returns the contiguous run of runes at the end of
// token that are neither letters nor digits, in the order they are met
// scanning backward. A multi-rune suffix is therefore reversed: "wow?!"
// yields "!?".
func TrailingPunctuation(token string) string {
	var b strings.Builder
	for i := len(token); i > 0; {
		r, size := utf8.DecodeLastRuneInString(token[:i])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		b.WriteRune(r)
		i -= size
	}
	return b.String()
}

func notLetter(r rune) bool { return !unicode.IsLetter(r) }
