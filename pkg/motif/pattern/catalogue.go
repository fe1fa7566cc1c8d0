package pattern

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/deckhound/motif/pkg/motif/internalerr"
)

// Entry is the display metadata for one pattern id.
type Entry struct {
	ID   string
	Name string
	Icon string
	Tier Tier
}

// Catalogue maps pattern ids to their display metadata. It is
// read-only after Load and safe for concurrent use.
type Catalogue struct {
	entries map[string]Entry
}

type catalogueFile struct {
	Patterns []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
		Icon string `yaml:"icon"`
		Tier string `yaml:"tier"`
	} `yaml:"patterns"`
}

//go:embed catalogue.yaml
var defaultCatalogue []byte

// Load parses a YAML catalogue document.
func Load(data []byte) (*Catalogue, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("%w: catalogue has no patterns", internalerr.ErrInvalidConfig)
	}

	entries := make(map[string]Entry, len(file.Patterns))
	for _, p := range file.Patterns {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: catalogue entry without id", internalerr.ErrInvalidConfig)
		}
		if _, ok := entries[p.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate catalogue id %q", internalerr.ErrInvalidConfig, p.ID)
		}
		tier, err := ParseTier(p.Tier)
		if err != nil {
			return nil, fmt.Errorf("catalogue id %q: %w", p.ID, err)
		}
		entries[p.ID] = Entry{ID: p.ID, Name: p.Name, Icon: p.Icon, Tier: tier}
	}
	return &Catalogue{entries: entries}, nil
}

// Default returns the embedded catalogue shipped with the library.
func Default() *Catalogue {
	c, err := Load(defaultCatalogue)
	if err != nil {
		// The document ships inside the binary; a parse failure here
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("pattern: embedded catalogue: %v", err))
	}
	return c
}

// Get looks up the entry for a pattern id.
func (c *Catalogue) Get(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Len reports how many patterns the catalogue describes.
func (c *Catalogue) Len() int {
	return len(c.entries)
}
