// Package detect holds the pattern detectors: stateless scan functions
// that each read the full deck and emit zero or more candidate finds.
// Detectors never filter each other; redundant candidates are handled
// downstream by the reconciler. The one exception to independence is
// the counting aggregate, which consumes the same-rank detector's
// output as an explicit input instead of rescanning the deck.
package detect

import (
	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/pattern"
)

// Run executes every detector in fixed order and returns the
// concatenated candidates. The order is part of the engine's
// observable contract: it decides which candidate wins a position-set
// size tie in the reconciler's dedup pass.
func Run(d card.Deck, tokens []string) []pattern.Find {
	var finds []pattern.Find

	same := SameRank(d)
	finds = append(finds, same...)
	finds = append(finds, SuitedStreaks(d)...)
	finds = append(finds, RankRuns(d)...)
	finds = append(finds, ColorStreaks(d)...)
	finds = append(finds, AlternatingColors(d)...)
	finds = append(finds, Blackjacks(d)...)
	finds = append(finds, Counting(same)...)
	finds = append(finds, Mirror(d)...)
	finds = append(finds, TwoPairWindows(d)...)
	finds = append(finds, FullHouseWindows(d)...)
	finds = append(finds, StraightFlushes(d)...)
	finds = append(finds, DeadMansHand(d)...)
	finds = append(finds, SolitaireRuns(d)...)
	finds = append(finds, AceHigh(d)...)
	finds = append(finds, AscendingTopFive(d)...)
	finds = append(finds, FactoryRuns(tokens)...)

	return finds
}

// span is a contiguous block of deck positions, start inclusive and
// end exclusive.
type span struct {
	start, end int
}

func (s span) length() int {
	return s.end - s.start
}

func (s span) positions() []int {
	pos := make([]int, 0, s.length())
	for i := s.start; i < s.end; i++ {
		pos = append(pos, i)
	}
	return pos
}

// chainRuns partitions [0,n) into maximal blocks where link(i) holds
// between positions i and i+1. Singleton blocks are included; callers
// filter by length. Maximality means no block can be extended in
// either direction.
func chainRuns(n int, link func(i int) bool) []span {
	var spans []span
	start := 0
	for i := 0; i < n-1; i++ {
		if !link(i) {
			spans = append(spans, span{start, i + 1})
			start = i + 1
		}
	}
	if n > 0 {
		spans = append(spans, span{start, n})
	}
	return spans
}
