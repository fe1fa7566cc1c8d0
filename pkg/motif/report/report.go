// Package report wraps one detection run in a shareable envelope. The
// engine itself is pure and stamps nothing; identity lives out here.
package report

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"

	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/pattern"
)

// Report summarizes one detection run.
type Report struct {
	ID               string         // ULID, unique per run
	Deck             []string       // the shuffle that was scanned
	Finds            []pattern.Find // engine output, rarest first
	Rarest           string         // display name of the rarest find, "" if none
	FactoryPositions []int          // scattered positions still in factory order
}

// Builder constructs reports.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Build assembles a report from the scanned deck and the engine's
// sorted finds.
func (b *Builder) Build(tokens []string, finds []pattern.Find) Report {
	r := Report{
		ID:               ulid.MustNew(ulid.Now(), b.entropy).String(),
		Deck:             append([]string(nil), tokens...),
		Finds:            finds,
		FactoryPositions: FactoryPositions(tokens),
	}
	if len(finds) > 0 {
		r.Rarest = finds[0].Name
	}
	return r
}

// FactoryPositions returns every index whose card sits exactly where
// the factory ordering put it. This is the scattered-position cousin
// of the factory-run detector; both read the same reference ordering.
func FactoryPositions(tokens []string) []int {
	var pos []int
	for i, tok := range tokens {
		if i < card.Size && tok == card.FactoryToken(i) {
			pos = append(pos, i)
		}
	}
	return pos
}
