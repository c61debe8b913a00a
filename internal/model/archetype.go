package model

import (
	"encoding/json"
	"fmt"

	"cinequiz_backend/internal/scoring"
)

// Archetype is a catalog entry describing one taste profile. Catalog order
// (OrderIndex ascending) matters: the matcher falls back to the first entry
// and breaks ties in favor of earlier ones.
// swagger:model Archetype
type Archetype struct {
	UUIDBase
	Name            string          `gorm:"size:100;not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	DimensionRanges json.RawMessage `gorm:"type:json" json:"dimensionRanges"`         // JSON: map[dimension]{min,max}
	RandomThoughts  json.RawMessage `gorm:"type:json" json:"randomThoughts,omitempty"` // JSON: []string
	Traits          json.RawMessage `gorm:"type:json" json:"traits,omitempty"`         // JSON: []string
	OrderIndex      int             `gorm:"default:0;index" json:"orderIndex"`
	Enabled         bool            `gorm:"default:true" json:"enabled"`
}

func (Archetype) TableName() string {
	return "archetypes"
}

// DecodeRanges unpacks the range table, validating dimension keys and
// interval orientation.
func (a *Archetype) DecodeRanges() (map[scoring.Dimension]scoring.Range, error) {
	ranges := make(map[scoring.Dimension]scoring.Range)
	if len(a.DimensionRanges) == 0 {
		return ranges, nil
	}

	var raw map[string]scoring.Range
	if err := json.Unmarshal(a.DimensionRanges, &raw); err != nil {
		return nil, err
	}

	for key, rng := range raw {
		dim, err := scoring.ParseDimension(key)
		if err != nil {
			return nil, err
		}
		if rng.Min > rng.Max {
			return nil, fmt.Errorf("archetype %q: inverted range for %s: [%d,%d]", a.Name, dim, rng.Min, rng.Max)
		}
		ranges[dim] = rng
	}
	return ranges, nil
}

func (a *Archetype) DecodeThoughts() ([]string, error) {
	return decodeStringList(a.RandomThoughts)
}

func (a *Archetype) DecodeTraits() ([]string, error) {
	return decodeStringList(a.Traits)
}

// ToScoring projects the row into the engine's archetype shape.
func (a *Archetype) ToScoring() (scoring.Archetype, error) {
	ranges, err := a.DecodeRanges()
	if err != nil {
		return scoring.Archetype{}, err
	}
	thoughts, err := a.DecodeThoughts()
	if err != nil {
		return scoring.Archetype{}, err
	}
	traits, err := a.DecodeTraits()
	if err != nil {
		return scoring.Archetype{}, err
	}
	return scoring.Archetype{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Ranges:      ranges,
		Thoughts:    thoughts,
		Traits:      traits,
	}, nil
}

func decodeStringList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}
