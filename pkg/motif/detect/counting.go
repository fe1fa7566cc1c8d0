package detect

import (
	"fmt"

	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/pattern"
)

// Counting derives the aggregate finds from the same-rank detector's
// output: three or more separate pairs become one "N Pairs" find, two
// or more triples "Two Triples", two or more quads "Two Quads". Each
// aggregate's positions are the union of its members' positions.
func Counting(sameRank []pattern.Find) []pattern.Find {
	var pairs, triples, quads []pattern.Find
	for _, f := range sameRank {
		switch f.ID {
		case pattern.IDPair:
			pairs = append(pairs, f)
		case pattern.IDTriple:
			triples = append(triples, f)
		case pattern.IDQuad:
			quads = append(quads, f)
		}
	}

	var finds []pattern.Find
	if len(pairs) >= 3 {
		finds = append(finds, pattern.Find{
			ID:        pattern.IDNPairs,
			Name:      fmt.Sprintf("%d Pairs", len(pairs)),
			Positions: unionPositions(pairs),
		})
	}
	if len(triples) >= 2 {
		finds = append(finds, pattern.Find{
			ID:        pattern.IDTwoTriples,
			Positions: unionPositions(triples),
		})
	}
	if len(quads) >= 2 {
		finds = append(finds, pattern.Find{
			ID:        pattern.IDTwoQuads,
			Positions: unionPositions(quads),
		})
	}
	return finds
}

func unionPositions(finds []pattern.Find) []int {
	var pos []int
	for _, f := range finds {
		pos = append(pos, f.Positions...)
	}
	return pos
}

// Mirror compares each card in the top half with its mirrored partner
// from the bottom of the deck. Three or more equal-rank pairings make
// one mirror find covering every position involved.
func Mirror(d card.Deck) []pattern.Find {
	var pos []int
	count := 0
	for i := 0; i < len(d)/2; i++ {
		j := len(d) - 1 - i
		if d[i].Rank == d[j].Rank {
			count++
			pos = append(pos, i, j)
		}
	}
	if count < 3 {
		return nil
	}
	return []pattern.Find{{
		ID:        pattern.IDMirror,
		Name:      fmt.Sprintf("Rank Mirror ×%d", count),
		Positions: pos,
	}}
}
