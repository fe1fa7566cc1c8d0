package detect

import (
	"fmt"

	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/pattern"
)

// SameRank finds maximal blocks of adjacent equal-rank cards. Blocks
// of four or more cards rate a quad, exactly three a triple, exactly
// two a pair. Each block yields its single best tier only.
func SameRank(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for _, s := range chainRuns(len(d), func(i int) bool { return d[i].Rank == d[i+1].Rank }) {
		rank := d[s.start].Rank
		switch n := s.length(); {
		case n >= 4:
			finds = append(finds, pattern.Find{
				ID:        pattern.IDQuad,
				Name:      fmt.Sprintf("Quad of %ss", rank),
				Positions: s.positions(),
			})
		case n == 3:
			finds = append(finds, pattern.Find{
				ID:        pattern.IDTriple,
				Name:      fmt.Sprintf("Triple of %ss", rank),
				Positions: s.positions(),
			})
		case n == 2:
			finds = append(finds, pattern.Find{
				ID:        pattern.IDPair,
				Name:      fmt.Sprintf("Pair of %ss", rank),
				Positions: s.positions(),
			})
		}
	}
	return finds
}

// SuitedStreaks finds maximal blocks of adjacent same-suit cards of
// length three or more. The id encodes the length, capped at eight.
func SuitedStreaks(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for _, s := range chainRuns(len(d), func(i int) bool { return d[i].Suit == d[i+1].Suit }) {
		n := s.length()
		if n < 3 {
			continue
		}
		capped := n
		if capped > 8 {
			capped = 8
		}
		finds = append(finds, pattern.Find{
			ID:        fmt.Sprintf("suited-%d", capped),
			Name:      fmt.Sprintf("Suited Run of %d", n),
			Positions: s.positions(),
		})
	}
	return finds
}

// RankRuns finds maximal blocks of strictly ascending consecutive
// values, length three or more. A run ending on a King picks up an
// immediately following Ace as a fourteenth value; the extension is
// checked once per run, never recursively, and the Ace stays available
// to start a run of its own.
func RankRuns(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for _, s := range chainRuns(len(d), func(i int) bool { return d[i+1].Value == d[i].Value+1 }) {
		pos := s.positions()
		if d[s.end-1].Value == 13 && s.end < len(d) && d[s.end].Rank == "A" {
			pos = append(pos, s.end)
		}
		n := len(pos)
		if n < 3 {
			continue
		}

		find := pattern.Find{Positions: pos}
		switch {
		case n == 3:
			find.ID = pattern.IDRun3
		case n == 4:
			find.ID = pattern.IDRun4
		case n == 5:
			find.ID = pattern.IDStraight
		case n == 6:
			find.ID = pattern.IDRun6
		default:
			find.ID = pattern.IDRun7
			find.Name = fmt.Sprintf("Run of %d", n)
		}
		finds = append(finds, find)
	}
	return finds
}

// ColorStreaks finds maximal blocks of adjacent same-color cards of
// length six or more.
func ColorStreaks(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for _, s := range chainRuns(len(d), func(i int) bool { return d[i].Color() == d[i+1].Color() }) {
		n := s.length()
		if n < 6 {
			continue
		}

		find := pattern.Find{
			Name:      fmt.Sprintf("Color Run of %d", n),
			Positions: s.positions(),
		}
		switch {
		case n >= 10:
			find.ID = pattern.IDColor10
		case n >= 8:
			find.ID = pattern.IDColor8
		default:
			find.ID = pattern.IDColor6
		}
		finds = append(finds, find)
	}
	return finds
}

// AlternatingColors finds maximal blocks where every card flips color
// against its predecessor, length seven or more.
func AlternatingColors(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	for _, s := range chainRuns(len(d), func(i int) bool { return d[i].Color() != d[i+1].Color() }) {
		n := s.length()
		if n < 7 {
			continue
		}

		find := pattern.Find{
			Name:      fmt.Sprintf("Alternating Colors ×%d", n),
			Positions: s.positions(),
		}
		if n >= 10 {
			find.ID = pattern.IDAlternating10
		} else {
			find.ID = pattern.IDAlternating7
		}
		finds = append(finds, find)
	}
	return finds
}

// SolitaireRuns finds maximal blocks that descend by exactly one in
// value while alternating color every card, the Klondike placement
// rule, length five or more.
func SolitaireRuns(d card.Deck) []pattern.Find {
	var finds []pattern.Find
	link := func(i int) bool {
		return d[i+1].Value == d[i].Value-1 && d[i+1].Color() != d[i].Color()
	}
	for _, s := range chainRuns(len(d), link) {
		n := s.length()
		if n < 5 {
			continue
		}
		finds = append(finds, pattern.Find{
			ID:        pattern.IDSolitaireRun,
			Name:      fmt.Sprintf("Solitaire Run of %d", n),
			Positions: s.positions(),
		})
	}
	return finds
}
