package pattern

import (
	"fmt"

	"github.com/deckhound/motif/pkg/motif/internalerr"
)

// Tier ranks pattern rarity. Lower values are rarer; the zero-adjacent
// ordering below is the engine's final sort key, rarest first.
type Tier int

const (
	Legendary Tier = iota
	Extraordinary
	VeryRare
	Rare
	Uncommon
	Common
)

var tierLabels = map[Tier]string{
	Legendary:     "legendary",
	Extraordinary: "extraordinary",
	VeryRare:      "very-rare",
	Rare:          "rare",
	Uncommon:      "uncommon",
	Common:        "common",
}

var tiersByLabel = map[string]Tier{
	"legendary":     Legendary,
	"extraordinary": Extraordinary,
	"very-rare":     VeryRare,
	"rare":          Rare,
	"uncommon":      Uncommon,
	"common":        Common,
}

// String returns the catalogue label for the tier.
func (t Tier) String() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// ParseTier maps a catalogue label back to a Tier.
func ParseTier(label string) (Tier, error) {
	t, ok := tiersByLabel[label]
	if !ok {
		return 0, fmt.Errorf("%w: unknown rarity tier %q", internalerr.ErrInvalidConfig, label)
	}
	return t, nil
}
