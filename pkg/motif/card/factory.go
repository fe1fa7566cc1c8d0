package card

// factoryOrder is the as-manufactured ordering of a standard deck:
// spades ace to king, hearts ace to king, then clubs and diamonds king
// back down to ace. The factory-run detector and the factory-position
// statistic both compare against this exact sequence.
var factoryOrder = []string{
	"A♠", "2♠", "3♠", "4♠", "5♠", "6♠", "7♠", "8♠", "9♠", "10♠", "J♠", "Q♠", "K♠",
	"A♥", "2♥", "3♥", "4♥", "5♥", "6♥", "7♥", "8♥", "9♥", "10♥", "J♥", "Q♥", "K♥",
	"K♣", "Q♣", "J♣", "10♣", "9♣", "8♣", "7♣", "6♣", "5♣", "4♣", "3♣", "2♣", "A♣",
	"K♦", "Q♦", "J♦", "10♦", "9♦", "8♦", "7♦", "6♦", "5♦", "4♦", "3♦", "2♦", "A♦",
}

// FactoryOrder returns a copy of the as-manufactured deck ordering.
func FactoryOrder() []string {
	out := make([]string, Size)
	copy(out, factoryOrder)
	return out
}

// FactoryToken returns the token the factory ordering places at pos.
func FactoryToken(pos int) string {
	return factoryOrder[pos]
}

// ReferenceSuit is the factory ordering's first suit. Ace High and the
// perfect blackjack check both key on this suit.
const ReferenceSuit = Spades
