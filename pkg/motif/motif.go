// Package motif classifies a shuffled 52-card deck against a fixed
// catalogue of named patterns and returns the patterns present,
// deduplicated and ranked rarest first.
package motif

import (
	"sort"

	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/detect"
	"github.com/deckhound/motif/pkg/motif/pattern"
	"github.com/deckhound/motif/pkg/motif/reconcile"
)

// Novelty reports whether a pattern is new to the current viewer. It
// is an external collaborator; the engine itself carries no notion of
// identity or history.
type Novelty interface {
	IsNew(patternID string) bool
}

// Engine runs the detection pipeline. It holds only read-only
// reference data, so one Engine may serve concurrent Detect calls
// without coordination.
type Engine struct {
	catalogue *pattern.Catalogue
	novelty   Novelty
}

// Options configures an Engine.
type Options struct {
	Catalogue *pattern.Catalogue // nil means the embedded default
	Novelty   Novelty            // nil marks every find as new
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	cat := opts.Catalogue
	if cat == nil {
		cat = pattern.Default()
	}
	nov := opts.Novelty
	if nov == nil {
		nov = alwaysNew{}
	}
	return &Engine{catalogue: cat, novelty: nov}
}

// Detect classifies one shuffle. The input must be a permutation of
// the standard deck: exactly 52 recognized tokens with no duplicates;
// anything else fails validation before a single detector runs. The
// result is sorted ascending by rarity tier, and the sort is stable:
// equal-tier finds keep the fixed detector concatenation order.
func (e *Engine) Detect(tokens []string) ([]pattern.Find, error) {
	if err := card.Validate(tokens); err != nil {
		return nil, err
	}
	deck, err := card.ParseAll(tokens)
	if err != nil {
		return nil, err
	}

	finds := detect.Run(deck, tokens)
	finds = reconcile.Reconcile(finds)

	for i := range finds {
		e.resolve(&finds[i])
	}

	sort.SliceStable(finds, func(i, j int) bool {
		return finds[i].Tier < finds[j].Tier
	})
	return finds, nil
}

// resolve fills a find's display metadata from the catalogue. A name
// set by the detector (carrying rank, length or count) wins over the
// catalogue's base name.
func (e *Engine) resolve(f *pattern.Find) {
	entry, ok := e.catalogue.Get(f.ID)
	if ok {
		if f.Name == "" {
			f.Name = entry.Name
		}
		f.Icon = entry.Icon
		f.Tier = entry.Tier
	} else {
		if f.Name == "" {
			f.Name = f.ID
		}
		f.Tier = pattern.Common
	}
	f.IsNew = e.novelty.IsNew(f.ID)
}

// alwaysNew is the default novelty collaborator: no history, so every
// pattern is new.
type alwaysNew struct{}

func (alwaysNew) IsNew(string) bool { return true }
