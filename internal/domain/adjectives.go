package domain

import (
	"fmt"
	"math/rand/v2"
)

// Tone selects which adjective list a pick draws from.
type Tone string

// Supported adjective tones.
const (
	// TonePositive draws from the positive list.
	TonePositive Tone = "positive"

	// ToneNegative draws from the negative list.
	ToneNegative Tone = "negative"

	// ToneRandom draws from either list with equal probability.
	ToneRandom Tone = "random"
)

// AdjectiveLists holds the positive and negative adjective lists used to
// fill review templates. The lists are read-only once built.
type AdjectiveLists struct {
	Positive []string
	Negative []string
}

// RandomFrom returns a uniformly chosen element of list.
// It returns ErrEmptyList when list has no elements.
func RandomFrom(list []string, rng *rand.Rand) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyList
	}
	return list[rng.IntN(len(list))], nil
}

// RandomPositive returns a random positive adjective.
func (a AdjectiveLists) RandomPositive(rng *rand.Rand) (string, error) {
	adj, err := RandomFrom(a.Positive, rng)
	if err != nil {
		return "", fmt.Errorf("positive adjectives: %w", err)
	}
	return adj, nil
}

// RandomNegative returns a random negative adjective.
func (a AdjectiveLists) RandomNegative(rng *rand.Rand) (string, error) {
	adj, err := RandomFrom(a.Negative, rng)
	if err != nil {
		return "", fmt.Errorf("negative adjectives: %w", err)
	}
	return adj, nil
}

// RandomAdjective picks the positive list with probability 1/2 and the
// negative list otherwise, then returns a random element of it.
func (a AdjectiveLists) RandomAdjective(rng *rand.Rand) (string, error) {
	if rng.Float64() < 0.5 {
		return a.RandomPositive(rng)
	}
	return a.RandomNegative(rng)
}

// Pick returns a random adjective of the given tone.
func (a AdjectiveLists) Pick(tone Tone, rng *rand.Rand) (string, error) {
	switch tone {
	case TonePositive:
		return a.RandomPositive(rng)
	case ToneNegative:
		return a.RandomNegative(rng)
	case ToneRandom, "":
		return a.RandomAdjective(rng)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTone, tone)
	}
}
