package scoring

import (
	"math/rand"
	"sort"
)

// Stat is one top-ranked dimension surfaced for display.
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Max   int    `json:"max"`
}

// Badge is a derived achievement label.
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type badgeRule struct {
	dim       Dimension
	threshold int
	badge     Badge
}

// Rule order is the award order; once three badges match, the rest are
// ignored.
var badgeRules = []badgeRule{
	{Rewatch, 8, Badge{Name: "Comfort Curator", Description: "You know exactly which films feel like home."}},
	{Social, 8, Badge{Name: "Social Butterfly", Description: "Movie night is your love language."}},
	{Variety, 8, Badge{Name: "Genre Nomad", Description: "No genre can hold you for long."}},
	{Excitement, 8, Badge{Name: "Adrenaline Junkie", Description: "If your pulse isn't racing, why watch?"}},
	{Curiosity, 8, Badge{Name: "Deep Diver", Description: "The credits roll and your research begins."}},
	{Emotion, 8, Badge{Name: "Heart on Sleeve", Description: "You feel every frame, and that's a gift."}},
}

const (
	topStatCount = 7
	maxBadges    = 3
)

// TopStats ranks the dimensions by score descending and returns the top
// seven as display stats. Ties keep dimension declaration order.
func TopStats(scores Scores) []Stat {
	dims := AllDimensions()
	sort.SliceStable(dims, func(i, j int) bool {
		return scores[dims[i]] > scores[dims[j]]
	})

	n := topStatCount
	if len(dims) < n {
		n = len(dims)
	}

	stats := make([]Stat, 0, n)
	for _, d := range dims[:n] {
		stats = append(stats, Stat{Label: d.Label(), Value: scores[d], Max: MaxScore})
	}
	return stats
}

// EvaluateBadges collects matching badges in rule-declaration order, capped
// at three. Rules only test lower bounds, so raising a score never costs an
// earned badge.
func EvaluateBadges(scores Scores) []Badge {
	badges := make([]Badge, 0, maxBadges)
	for _, r := range badgeRules {
		if scores[r.dim] >= r.threshold {
			badges = append(badges, r.badge)
			if len(badges) == maxBadges {
				break
			}
		}
	}
	return badges
}

// DefaultThought is used when an archetype ships no flavor text.
const DefaultThought = "Cinema is magic"

// PickThought selects one of the archetype's flavor-text lines uniformly at
// random. The random source is injected so tests can pin the outcome.
func PickThought(rng *rand.Rand, a Archetype) string {
	if len(a.Thoughts) == 0 {
		return DefaultThought
	}
	return a.Thoughts[rng.Intn(len(a.Thoughts))]
}
