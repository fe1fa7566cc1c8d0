package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/internalerr"
	"github.com/deckhound/motif/pkg/motif/pattern"
)

// buildDeck assembles a full permutation: front cards first, then
// every factory-order card not otherwise placed, then back cards.
func buildDeck(t *testing.T, front, back []string) []string {
	t.Helper()
	used := make(map[string]bool)
	for _, tok := range front {
		used[tok] = true
	}
	for _, tok := range back {
		used[tok] = true
	}

	deck := append([]string(nil), front...)
	for _, tok := range card.FactoryOrder() {
		if !used[tok] {
			deck = append(deck, tok)
		}
	}
	deck = append(deck, back...)
	require.Len(t, deck, card.Size)
	return deck
}

func findByID(finds []pattern.Find, id string) (pattern.Find, bool) {
	for _, f := range finds {
		if f.ID == id {
			return f, true
		}
	}
	return pattern.Find{}, false
}

func assertInvariants(t *testing.T, finds []pattern.Find) {
	t.Helper()
	seenIDs := make(map[string]bool)
	for _, f := range finds {
		assert.False(t, seenIDs[f.ID], "duplicate find id %q", f.ID)
		seenIDs[f.ID] = true

		require.NotEmpty(t, f.Positions, f.ID)
		seenPos := make(map[int]bool)
		for _, p := range f.Positions {
			assert.GreaterOrEqual(t, p, 0, f.ID)
			assert.Less(t, p, card.Size, f.ID)
			assert.False(t, seenPos[p], "find %q repeats position %d", f.ID, p)
			seenPos[p] = true
		}
	}
	for i := 1; i < len(finds); i++ {
		assert.LessOrEqual(t, finds[i-1].Tier, finds[i].Tier, "output not sorted rarest first")
	}
}

func TestDetect_FactoryDeck(t *testing.T) {
	engine := New(Options{})
	finds, err := engine.Detect(card.FactoryOrder())
	require.NoError(t, err)
	assertInvariants(t, finds)

	factory, ok := findByID(finds, pattern.IDFactoryRun)
	require.True(t, ok)
	assert.Equal(t, "Factory Run of 52", factory.Name)
	assert.Len(t, factory.Positions, card.Size)
	assert.Equal(t, pattern.Extraordinary, factory.Tier)

	// The manufactured ordering carries its own patterns: two
	// ascending suited runs of 13 become a straight flush and the
	// surviving suited streak, the leading ace gives Ace High and an
	// ascending top five, and the back half mirrors the front.
	flush, ok := findByID(finds, pattern.IDStraightFlush)
	require.True(t, ok)
	assert.Len(t, flush.Positions, 13)

	suited, ok := findByID(finds, pattern.IDSuited8)
	require.True(t, ok)
	assert.Len(t, suited.Positions, 13)

	_, ok = findByID(finds, pattern.IDAceHigh)
	assert.True(t, ok)
	_, ok = findByID(finds, pattern.IDAscendingFive)
	assert.True(t, ok)

	mirror, ok := findByID(finds, pattern.IDMirror)
	require.True(t, ok)
	assert.Len(t, mirror.Positions, card.Size)

	// The 13-long rank runs all overlap a surviving straight flush
	// and are suppressed.
	_, ok = findByID(finds, pattern.IDRun7)
	assert.False(t, ok)
	_, ok = findByID(finds, pattern.IDRoyalFlush)
	assert.False(t, ok)
}

func TestDetect_StableSortWithinTier(t *testing.T) {
	engine := New(Options{})
	finds, err := engine.Detect(card.FactoryOrder())
	require.NoError(t, err)

	var extraordinary []string
	for _, f := range finds {
		if f.Tier == pattern.Extraordinary {
			extraordinary = append(extraordinary, f.ID)
		}
	}
	// Equal-tier finds keep the fixed detector concatenation order.
	assert.Equal(t, []string{
		pattern.IDSuited8,
		pattern.IDStraightFlush,
		pattern.IDAscendingFive,
		pattern.IDFactoryRun,
	}, extraordinary)
}

func TestDetect_TripleOfSevens(t *testing.T) {
	deck := buildDeck(t, []string{"7♠", "7♥", "7♦"}, nil)

	engine := New(Options{})
	finds, err := engine.Detect(deck)
	require.NoError(t, err)
	assertInvariants(t, finds)

	triple, ok := findByID(finds, pattern.IDTriple)
	require.True(t, ok)
	assert.Equal(t, "Triple of 7s", triple.Name)
	assert.Equal(t, []int{0, 1, 2}, triple.Positions)
	assert.Equal(t, pattern.Uncommon, triple.Tier)

	_, ok = findByID(finds, pattern.IDQuad)
	assert.False(t, ok)
}

func TestDetect_DeadMansHand(t *testing.T) {
	// The spade ace moves to the back so no second window qualifies.
	deck := buildDeck(t, []string{"A♥", "8♣", "A♦", "8♠"}, []string{"A♠"})

	engine := New(Options{})
	finds, err := engine.Detect(deck)
	require.NoError(t, err)
	assertInvariants(t, finds)

	dmh, ok := findByID(finds, pattern.IDDeadMansHand)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, dmh.Positions)
	assert.Equal(t, pattern.Extraordinary, dmh.Tier)
}

func TestDetect_RoyalFlush(t *testing.T) {
	deck := buildDeck(t, []string{"10♠", "J♠", "Q♠", "K♠", "A♠"}, nil)

	engine := New(Options{})
	finds, err := engine.Detect(deck)
	require.NoError(t, err)
	assertInvariants(t, finds)

	royal, ok := findByID(finds, pattern.IDRoyalFlush)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, royal.Positions)
	assert.Equal(t, pattern.Legendary, royal.Tier)
	assert.Equal(t, royal, finds[0], "the royal flush sorts first")

	// No straight flush, straight or suited streak may share the
	// royal's positions.
	royalPos := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true}
	for _, f := range finds {
		if f.ID == pattern.IDRoyalFlush {
			continue
		}
		switch f.ID {
		case pattern.IDStraightFlush, pattern.IDStraight,
			pattern.IDSuited3, pattern.IDSuited4, pattern.IDSuited5,
			pattern.IDSuited6, pattern.IDSuited7, pattern.IDSuited8:
			for _, p := range f.Positions {
				assert.False(t, royalPos[p], "%s overlaps the royal flush at %d", f.ID, p)
			}
		}
	}
}

func TestDetect_RejectsInvalidDecks(t *testing.T) {
	engine := New(Options{})

	_, err := engine.Detect(card.FactoryOrder()[:51])
	assert.ErrorIs(t, err, internalerr.ErrInvalidDeck)

	dup := card.FactoryOrder()
	dup[5] = dup[45]
	_, err = engine.Detect(dup)
	assert.ErrorIs(t, err, internalerr.ErrDuplicateCard)

	bad := card.FactoryOrder()
	bad[0] = "A♤"
	_, err = engine.Detect(bad)
	assert.ErrorIs(t, err, internalerr.ErrUnknownToken)
}

type stubNovelty struct {
	old map[string]bool
}

func (s stubNovelty) IsNew(id string) bool { return !s.old[id] }

func TestDetect_NoveltyCollaborator(t *testing.T) {
	engine := New(Options{Novelty: stubNovelty{old: map[string]bool{pattern.IDMirror: true}}})
	finds, err := engine.Detect(card.FactoryOrder())
	require.NoError(t, err)

	for _, f := range finds {
		if f.ID == pattern.IDMirror {
			assert.False(t, f.IsNew)
		} else {
			assert.True(t, f.IsNew, f.ID)
		}
	}
}

func TestDetect_DefaultMarksEverythingNew(t *testing.T) {
	engine := New(Options{})
	finds, err := engine.Detect(card.FactoryOrder())
	require.NoError(t, err)
	require.NotEmpty(t, finds)
	for _, f := range finds {
		assert.True(t, f.IsNew, f.ID)
	}
}
