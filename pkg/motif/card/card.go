package card

import (
	"fmt"

	"github.com/deckhound/motif/pkg/motif/internalerr"
)

// Suit identifies one of the four French suits.
type Suit int

const (
	Spades Suit = iota + 1
	Hearts
	Diamonds
	Clubs
)

// String returns the suit symbol.
func (s Suit) String() string {
	suits := []string{"", "♠", "♥", "♦", "♣"}
	return suits[s]
}

// Color is the suit color: hearts and diamonds are red, spades and
// clubs black.
type Color int

const (
	Black Color = iota + 1
	Red
)

// Color returns the color of the suit.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Card is one parsed card. It is immutable once parsed: rank, suit and
// value are mutually consistent and Token is the original input form.
type Card struct {
	Rank  string // "A", "2".."10", "J", "Q", "K"
	Suit  Suit
	Value int    // A=1, 2..10 literal, J=11, Q=12, K=13
	Token string // rank + suit symbol, e.g. "Q♥"
}

// Color returns the card's color, derived from its suit.
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Deck is an ordered sequence of cards. The 0-based index into a Deck
// is the engine's only notion of position.
type Deck []Card

// Size is the number of cards in a full deck.
const Size = 52

var rankValues = map[string]int{
	"A": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
	"8": 8, "9": 9, "10": 10, "J": 11, "Q": 12, "K": 13,
}

var suitRunes = map[rune]Suit{
	'♠': Spades,
	'♥': Hearts,
	'♦': Diamonds,
	'♣': Clubs,
}

// Parse turns one token like "Q♥" or "10♣" into a Card. The last rune
// is the suit symbol; everything before it is the rank.
func Parse(token string) (Card, error) {
	runes := []rune(token)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", internalerr.ErrUnknownToken, token)
	}

	suit, ok := suitRunes[runes[len(runes)-1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", internalerr.ErrUnknownToken, token)
	}

	rank := string(runes[:len(runes)-1])
	value, ok := rankValues[rank]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", internalerr.ErrUnknownToken, token)
	}

	return Card{Rank: rank, Suit: suit, Value: value, Token: token}, nil
}

// ParseAll parses a full token sequence, preserving order and length.
func ParseAll(tokens []string) (Deck, error) {
	deck := make(Deck, 0, len(tokens))
	for i, tok := range tokens {
		c, err := Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		deck = append(deck, c)
	}
	return deck, nil
}

// Validate checks a raw shuffle before any detector runs: exactly 52
// tokens, every token recognized, no card twice. A deck that passes is
// a permutation of the standard deck.
func Validate(tokens []string) error {
	if len(tokens) != Size {
		return fmt.Errorf("%w: got %d tokens, want %d", internalerr.ErrWrongSize, len(tokens), Size)
	}

	seen := make(map[string]int, Size)
	for i, tok := range tokens {
		if _, err := Parse(tok); err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
		if first, ok := seen[tok]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", internalerr.ErrDuplicateCard, tok, first, i)
		}
		seen[tok] = i
	}
	return nil
}
