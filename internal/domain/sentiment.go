package domain

import "strings"

// NeutralScore is the score of any word the lexicon does not contain.
const NeutralScore = 0.0

// Score returns the lexicon score of word, matched case-insensitively.
// Words absent from the lexicon, including the empty string, score
// NeutralScore. A nil lexicon scores every word as neutral.
func Score(word string, lex *Lexicon) float64 {
	score, ok := lex.Lookup(strings.ToLower(word))
	if !ok {
		return NeutralScore
	}
	return score
}

// DocumentScore is the breakdown of one document's sentiment.
type DocumentScore struct {
	// Total is the sum of every token's score.
	Total float64 `json:"total"`

	// Tokens is the number of whitespace-delimited tokens in the document.
	Tokens int `json:"tokens"`

	// Matched counts tokens whose normalized form was found in the lexicon.
	Matched int `json:"matched"`
}

// ScoreDocument tokenizes text, normalizes each token, and sums the
// tokens' lexicon scores.
func ScoreDocument(text string, lex *Lexicon) DocumentScore {
	var ds DocumentScore
	for _, tok := range Tokenize(text) {
		ds.Tokens++
		word := Normalize(tok)
		if _, ok := lex.Lookup(strings.ToLower(word)); ok {
			ds.Matched++
		}
		ds.Total += Score(word, lex)
	}
	return ds
}

// DocumentSentiment returns the total sentiment of text. Empty text
// scores 0.
func DocumentSentiment(text string, lex *Lexicon) float64 {
	return ScoreDocument(text, lex).Total
}

// Star rating thresholds on a document's total sentiment. Each bound is
// exclusive: a total equal to a bound falls into the higher rating.
const (
	oneStarBelow   = -3.0
	twoStarsBelow  = 2.0
	threeStarBelow = 3.0
	fourStarsBelow = 7.0
)

// StarRating maps a document's total sentiment onto a 1 to 5 rating.
func StarRating(total float64) int {
	switch {
	case total < oneStarBelow:
		return 1
	case total < twoStarsBelow:
		return 2
	case total < threeStarBelow:
		return 3
	case total < fourStarsBelow:
		return 4
	default:
		return 5
	}
}
