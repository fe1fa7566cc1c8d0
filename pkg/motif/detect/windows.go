package detect

import (
	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/pattern"
)

// Blackjacks slides a two-card window and reports every adjacent
// Ace + ten-value pairing. The Ace and Jack of the reference suit
// together rate Perfect Blackjack; any other same-suit pairing rates
// Suited Blackjack; the rest plain Blackjack. Overlapping windows are
// each reported; suppression of lesser duplicates is the reconciler's
// job.
func Blackjacks(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for i := 0; i+1 < len(d); i++ {
		a, b := d[i], d[i+1]

		hit := (a.Value == 1 && b.Value >= 10) || (b.Value == 1 && a.Value >= 10)
		if !hit {
			continue
		}

		find := pattern.Find{Positions: []int{i, i + 1}}
		switch {
		case isPerfectPair(a, b):
			find.ID = pattern.IDPerfectBlackjack
		case a.Suit == b.Suit:
			find.ID = pattern.IDSuitedBlackjack
		default:
			find.ID = pattern.IDBlackjack
		}
		finds = append(finds, find)
	}
	return finds
}

// isPerfectPair reports whether the two cards are exactly the Ace and
// Jack of the reference suit, in either order.
func isPerfectPair(a, b card.Card) bool {
	if a.Suit != card.ReferenceSuit || b.Suit != card.ReferenceSuit {
		return false
	}
	return (a.Rank == "A" && b.Rank == "J") || (a.Rank == "J" && b.Rank == "A")
}

// TwoPairWindows slides a four-card window and reports every AABB rank
// shape: two adjacent pairs of different ranks.
func TwoPairWindows(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for i := 0; i+3 < len(d); i++ {
		if d[i].Rank == d[i+1].Rank && d[i+2].Rank == d[i+3].Rank && d[i].Rank != d[i+2].Rank {
			finds = append(finds, pattern.Find{
				ID:        pattern.IDTwoPair,
				Positions: []int{i, i + 1, i + 2, i + 3},
			})
		}
	}
	return finds
}

// FullHouseWindows slides a five-card window and reports every AAABB
// or AABBB rank shape: an adjacent three-group and two-group of
// different ranks.
func FullHouseWindows(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for i := 0; i+4 < len(d); i++ {
		threeThenTwo := d[i].Rank == d[i+1].Rank && d[i+1].Rank == d[i+2].Rank &&
			d[i+3].Rank == d[i+4].Rank && d[i+2].Rank != d[i+3].Rank
		twoThenThree := d[i].Rank == d[i+1].Rank &&
			d[i+2].Rank == d[i+3].Rank && d[i+3].Rank == d[i+4].Rank &&
			d[i+1].Rank != d[i+2].Rank
		if threeThenTwo || twoThenThree {
			finds = append(finds, pattern.Find{
				ID:        pattern.IDFullHouse,
				Positions: []int{i, i + 1, i + 2, i + 3, i + 4},
			})
		}
	}
	return finds
}

// DeadMansHand slides a four-card window and reports every window
// holding exactly two Aces and exactly two Eights, in any arrangement.
func DeadMansHand(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for i := 0; i+3 < len(d); i++ {
		aces, eights := 0, 0
		for j := i; j < i+4; j++ {
			switch d[j].Rank {
			case "A":
				aces++
			case "8":
				eights++
			}
		}
		if aces == 2 && eights == 2 {
			finds = append(finds, pattern.Find{
				ID:        pattern.IDDeadMansHand,
				Positions: []int{i, i + 1, i + 2, i + 3},
			})
		}
	}
	return finds
}
