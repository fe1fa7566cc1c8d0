package detect

import (
	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/pattern"
)

// StraightFlushes finds maximal blocks that hold the same suit while
// ascending by exactly one in value, length five or more. A King-ended
// block picks up an immediately following Ace of the same suit, the
// same once-only extension the rank-run detector applies. A block
// whose values are exactly Ace plus ten through King is a Royal Flush;
// every other qualifying block is a Straight Flush.
func StraightFlushes(d card.Deck) []pattern.Find {
	link := func(i int) bool {
		return d[i].Suit == d[i+1].Suit && d[i+1].Value == d[i].Value+1
	}

	var finds []pattern.Find
	for _, s := range chainRuns(len(d), link) {
		pos := s.positions()
		last := d[s.end-1]
		if last.Value == 13 && s.end < len(d) && d[s.end].Rank == "A" && d[s.end].Suit == last.Suit {
			pos = append(pos, s.end)
		}
		if len(pos) < 5 {
			continue
		}

		values := make(map[int]bool, len(pos))
		for _, p := range pos {
			values[d[p].Value] = true
		}
		royal := len(pos) == 5 &&
			values[1] && values[10] && values[11] && values[12] && values[13]

		find := pattern.Find{Positions: pos}
		if royal {
			find.ID = pattern.IDRoyalFlush
		} else {
			find.ID = pattern.IDStraightFlush
		}
		finds = append(finds, find)
	}
	return finds
}
