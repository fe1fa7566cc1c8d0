package internalerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases. The deck-shape errors all wrap
// ErrInvalidDeck so callers can match the whole class at once.
var (
	ErrInvalidDeck   = errors.New("invalid deck")
	ErrWrongSize     = fmt.Errorf("%w: wrong card count", ErrInvalidDeck)
	ErrUnknownToken  = fmt.Errorf("%w: unrecognized card token", ErrInvalidDeck)
	ErrDuplicateCard = fmt.Errorf("%w: duplicate card", ErrInvalidDeck)
	ErrInvalidConfig = errors.New("invalid configuration")
)
