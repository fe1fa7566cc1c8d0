package detect

import (
	"fmt"

	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/pattern"
)

// AceHigh reports a find when the very first card is the Ace of the
// reference suit.
func AceHigh(d card.Deck) []pattern.Find {
	if len(d) == 0 {
		return nil
	}
	if d[0].Rank != "A" || d[0].Suit != card.ReferenceSuit {
		return nil
	}
	return []pattern.Find{{
		ID:        pattern.IDAceHigh,
		Positions: []int{0},
	}}
}

// AscendingTopFive reports a find when the first five cards strictly
// increase in value, by any step.
func AscendingTopFive(d card.Deck) []pattern.Find {
	if len(d) < 5 {
		return nil
	}
	for i := 0; i < 4; i++ {
		if d[i+1].Value <= d[i].Value {
			return nil
		}
	}
	return []pattern.Find{{
		ID:        pattern.IDAscendingFive,
		Positions: []int{0, 1, 2, 3, 4},
	}}
}

// FactoryRuns compares the raw token sequence against the factory
// ordering and reports every maximal block of four or more positions
// left exactly where the factory put them. Disjoint blocks each get
// their own find; the reconciler's dedup keeps the largest.
func FactoryRuns(tokens []string) []pattern.Find {
	var finds []pattern.Find
	i := 0
	for i < len(tokens) {
		if tokens[i] != card.FactoryToken(i) {
			i++
			continue
		}
		start := i
		for i < len(tokens) && tokens[i] == card.FactoryToken(i) {
			i++
		}
		if n := i - start; n >= 4 {
			finds = append(finds, pattern.Find{
				ID:        pattern.IDFactoryRun,
				Name:      fmt.Sprintf("Factory Run of %d", n),
				Positions: span{start, i}.positions(),
			})
		}
	}
	return finds
}
