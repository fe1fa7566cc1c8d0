package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckhound/motif/pkg/motif/pattern"
)

func TestCounting_ThreePairs(t *testing.T) {
	same := []pattern.Find{
		{ID: pattern.IDPair, Positions: []int{0, 1}},
		{ID: pattern.IDPair, Positions: []int{10, 11}},
		{ID: pattern.IDPair, Positions: []int{40, 41}},
	}
	finds := Counting(same)
	require.Len(t, finds, 1)
	assert.Equal(t, pattern.IDNPairs, finds[0].ID)
	assert.Equal(t, "3 Pairs", finds[0].Name)
	assert.Equal(t, []int{0, 1, 10, 11, 40, 41}, finds[0].Positions)
}

func TestCounting_TwoPairsAreNotEnough(t *testing.T) {
	same := []pattern.Find{
		{ID: pattern.IDPair, Positions: []int{0, 1}},
		{ID: pattern.IDPair, Positions: []int{10, 11}},
	}
	assert.Empty(t, Counting(same))
}

func TestCounting_TwoTriplesAndTwoQuads(t *testing.T) {
	same := []pattern.Find{
		{ID: pattern.IDTriple, Positions: []int{0, 1, 2}},
		{ID: pattern.IDTriple, Positions: []int{20, 21, 22}},
		{ID: pattern.IDQuad, Positions: []int{5, 6, 7, 8}},
		{ID: pattern.IDQuad, Positions: []int{30, 31, 32, 33}},
	}
	finds := Counting(same)
	require.Len(t, finds, 2)

	triples, ok := findByID(finds, pattern.IDTwoTriples)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 20, 21, 22}, triples.Positions)

	quads, ok := findByID(finds, pattern.IDTwoQuads)
	require.True(t, ok)
	assert.Equal(t, []int{5, 6, 7, 8, 30, 31, 32, 33}, quads.Positions)
}

func TestCounting_EmptyInput(t *testing.T) {
	assert.Empty(t, Counting(nil))
}

func TestMirror_ThreeMatches(t *testing.T) {
	// 8 cards: positions 0/7, 1/6 and 3/4 share a rank; 2/5 do not.
	d := mustDeck(t, "9♠", "K♥", "2♦", "5♣", "5♠", "J♥", "K♦", "9♣")
	finds := Mirror(d)
	require.Len(t, finds, 1)
	assert.Equal(t, pattern.IDMirror, finds[0].ID)
	assert.Equal(t, "Rank Mirror ×3", finds[0].Name)
	assert.Equal(t, []int{0, 7, 1, 6, 3, 4}, finds[0].Positions)
}

func TestMirror_TwoMatchesAreNotEnough(t *testing.T) {
	d := mustDeck(t, "9♠", "K♥", "2♦", "5♣", "J♠", "Q♥", "K♦", "9♣")
	assert.Empty(t, Mirror(d))
}
