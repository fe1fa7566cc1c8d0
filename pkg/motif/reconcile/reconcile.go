// Package reconcile turns the raw candidate list into the final
// reported set. Three ordered passes: aggregate subsumption, the
// cross-family suppression table, then per-identifier dedup. The whole
// pipeline is idempotent; running it on its own output changes
// nothing.
package reconcile

import "github.com/deckhound/motif/pkg/motif/pattern"

// aggregates maps each counting find to the individual id it subsumes.
var aggregates = map[string]string{
	pattern.IDNPairs:     pattern.IDPair,
	pattern.IDTwoTriples: pattern.IDTriple,
	pattern.IDTwoQuads:   pattern.IDQuad,
}

var suitedLoserIDs = []string{
	pattern.IDSuited3, pattern.IDSuited4, pattern.IDSuited5,
	pattern.IDSuited6, pattern.IDSuited7, pattern.IDSuited8,
}

// suppressions is the fixed winner-to-losers table. A loser is dropped
// only where its positions intersect a surviving winner instance.
// Winners run in this order, so a find suppressed by an earlier winner
// never suppresses anything itself.
var suppressions = []struct {
	winner string
	losers []string
}{
	{pattern.IDRoyalFlush, append([]string{
		pattern.IDStraightFlush, pattern.IDStraight, pattern.IDRun6, pattern.IDRun7,
	}, suitedLoserIDs...)},
	{pattern.IDStraightFlush, append([]string{
		pattern.IDStraight, pattern.IDRun6, pattern.IDRun7,
	}, suitedLoserIDs...)},
	{pattern.IDPerfectBlackjack, []string{pattern.IDSuitedBlackjack, pattern.IDBlackjack}},
	{pattern.IDSuitedBlackjack, []string{pattern.IDBlackjack}},
	{pattern.IDTwoQuads, []string{pattern.IDTwoTriples}},
}

// Reconcile applies the three passes and returns the surviving finds
// in their original relative order.
func Reconcile(finds []pattern.Find) []pattern.Find {
	finds = dropSubsumed(finds)
	finds = applySuppressions(finds)
	return dedupe(finds)
}

// dropSubsumed removes every individual find whose counting aggregate
// is present: "N Pairs" swallows the pairs it counted, and likewise
// for two triples and two quads.
func dropSubsumed(finds []pattern.Find) []pattern.Find {
	drop := make(map[string]bool)
	for _, f := range finds {
		if member, ok := aggregates[f.ID]; ok {
			drop[member] = true
		}
	}
	if len(drop) == 0 {
		return finds
	}

	kept := finds[:0:0]
	for _, f := range finds {
		if !drop[f.ID] {
			kept = append(kept, f)
		}
	}
	return kept
}

// applySuppressions walks the suppression table in order, removing
// each loser that shares a position with a surviving winner instance.
func applySuppressions(finds []pattern.Find) []pattern.Find {
	removed := make([]bool, len(finds))

	for _, rule := range suppressions {
		losers := make(map[string]bool, len(rule.losers))
		for _, id := range rule.losers {
			losers[id] = true
		}

		for wi, w := range finds {
			if removed[wi] || w.ID != rule.winner {
				continue
			}
			for li, l := range finds {
				if removed[li] || !losers[l.ID] {
					continue
				}
				if overlaps(w.Positions, l.Positions) {
					removed[li] = true
				}
			}
		}
	}

	kept := finds[:0:0]
	for i, f := range finds {
		if !removed[i] {
			kept = append(kept, f)
		}
	}
	return kept
}

// dedupe keeps exactly one find per identifier: the one occupying the
// most positions, with position-count ties going to the candidate seen
// first. Survivors keep their original relative order.
func dedupe(finds []pattern.Find) []pattern.Find {
	best := make(map[string]int, len(finds))
	for i, f := range finds {
		prev, ok := best[f.ID]
		if !ok || len(f.Positions) > len(finds[prev].Positions) {
			best[f.ID] = i
		}
	}

	keep := make(map[int]bool, len(best))
	for _, i := range best {
		keep[i] = true
	}

	kept := finds[:0:0]
	for i, f := range finds {
		if keep[i] {
			kept = append(kept, f)
		}
	}
	return kept
}

func overlaps(a, b []int) bool {
	set := make(map[int]bool, len(a))
	for _, p := range a {
		set[p] = true
	}
	for _, p := range b {
		if set[p] {
			return true
		}
	}
	return false
}
