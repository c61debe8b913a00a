package scoring

import "errors"

// Range is an inclusive [Min,Max] interval on the normalized scale.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Archetype is a named taste profile defined by a range per dimension plus
// flavor text.
type Archetype struct {
	ID          string
	Name        string
	Description string
	Ranges      map[Dimension]Range
	Thoughts    []string
	Traits      []string
}

var ErrNoArchetypes = errors.New("no archetypes available")

// Match selects the best-fitting archetype for a scores vector. Each
// dimension whose score falls inside an archetype's range contributes the
// score itself, so higher-scoring dimensions weigh more than a flat hit
// count. The first archetype is the fallback when nothing overlaps, and on
// ties the earliest catalog entry wins (replacement requires strict
// improvement). The winning match score is returned so callers can tell a
// genuine match from the zero-overlap fallback.
func Match(scores Scores, archetypes []Archetype) (Archetype, int, error) {
	if len(archetypes) == 0 {
		return Archetype{}, 0, ErrNoArchetypes
	}

	best := archetypes[0]
	bestScore := 0
	for _, a := range archetypes {
		matchScore := 0
		for dim, rng := range a.Ranges {
			if s := scores[dim]; rng.Contains(s) {
				matchScore += s
			}
		}
		if matchScore > bestScore {
			best = a
			bestScore = matchScore
		}
	}
	return best, bestScore, nil
}
