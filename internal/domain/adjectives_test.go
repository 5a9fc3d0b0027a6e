package domain

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestRandomFrom(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, err := RandomFrom(nil, newTestRand())
		assert.ErrorIs(t, err, ErrEmptyList)
	})

	t.Run("single element", func(t *testing.T) {
		got, err := RandomFrom([]string{"only"}, newTestRand())
		require.NoError(t, err)
		assert.Equal(t, "only", got)
	})

	t.Run("every element is reachable", func(t *testing.T) {
		list := []string{"a", "b", "c", "d"}
		rng := newTestRand()
		seen := make(map[string]int)
		for range 2000 {
			got, err := RandomFrom(list, rng)
			require.NoError(t, err)
			seen[got]++
		}
		assert.Len(t, seen, len(list))
		for _, w := range list {
			assert.Greater(t, seen[w], 350, "%q drawn too rarely for a uniform pick", w)
		}
	})

	t.Run("same seed gives same sequence", func(t *testing.T) {
		list := []string{"a", "b", "c", "d", "e"}
		r1, r2 := newTestRand(), newTestRand()
		for range 20 {
			a, _ := RandomFrom(list, r1)
			b, _ := RandomFrom(list, r2)
			assert.Equal(t, a, b)
		}
	})
}

func TestAdjectiveLists(t *testing.T) {
	lists := AdjectiveLists{
		Positive: []string{"wonderful", "superb"},
		Negative: []string{"dreadful", "awful"},
	}

	t.Run("positive and negative draw from their lists", func(t *testing.T) {
		rng := newTestRand()
		for range 50 {
			pos, err := lists.RandomPositive(rng)
			require.NoError(t, err)
			assert.Contains(t, lists.Positive, pos)

			neg, err := lists.RandomNegative(rng)
			require.NoError(t, err)
			assert.Contains(t, lists.Negative, neg)
		}
	})

	t.Run("random adjective uses both lists", func(t *testing.T) {
		rng := newTestRand()
		var pos, neg int
		for range 1000 {
			adj, err := lists.RandomAdjective(rng)
			require.NoError(t, err)
			switch {
			case adj == "wonderful" || adj == "superb":
				pos++
			case adj == "dreadful" || adj == "awful":
				neg++
			default:
				t.Fatalf("unexpected adjective %q", adj)
			}
		}
		assert.Greater(t, pos, 400)
		assert.Greater(t, neg, 400)
	})

	t.Run("pick by tone", func(t *testing.T) {
		rng := newTestRand()

		adj, err := lists.Pick(TonePositive, rng)
		require.NoError(t, err)
		assert.Contains(t, lists.Positive, adj)

		adj, err = lists.Pick(ToneNegative, rng)
		require.NoError(t, err)
		assert.Contains(t, lists.Negative, adj)

		adj, err = lists.Pick("", rng)
		require.NoError(t, err)
		assert.Contains(t, append(lists.Positive, lists.Negative...), adj)

		_, err = lists.Pick("sarcastic", rng)
		assert.ErrorIs(t, err, ErrUnknownTone)
	})

	t.Run("empty list reports which list", func(t *testing.T) {
		_, err := AdjectiveLists{}.RandomNegative(newTestRand())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyList))
		assert.Contains(t, err.Error(), "negative adjectives")
	})
}
