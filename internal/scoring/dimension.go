package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// Dimension is one axis of a viewer's taste profile. The set is closed:
// weight tables and archetype ranges may only reference these twelve keys.
type Dimension string

const (
	Escapism   Dimension = "escapism"
	Fantasy    Dimension = "fantasy"
	Emotion    Dimension = "emotion"
	Education  Dimension = "education"
	Complexity Dimension = "complexity"
	Excitement Dimension = "excitement"
	Pacing     Dimension = "pacing"
	Social     Dimension = "social"
	Rewatch    Dimension = "rewatch"
	Comfort    Dimension = "comfort"
	Variety    Dimension = "variety"
	Curiosity  Dimension = "curiosity"
)

var allDimensions = []Dimension{
	Escapism, Fantasy, Emotion, Education, Complexity, Excitement,
	Pacing, Social, Rewatch, Comfort, Variety, Curiosity,
}

var ErrUnknownDimension = errors.New("unknown dimension")

// AllDimensions returns the twelve axes in declaration order.
func AllDimensions() []Dimension {
	dims := make([]Dimension, len(allDimensions))
	copy(dims, allDimensions)
	return dims
}

func (d Dimension) Valid() bool {
	for _, known := range allDimensions {
		if d == known {
			return true
		}
	}
	return false
}

// Label returns the display form of the dimension, e.g. "Escapism".
func (d Dimension) Label() string {
	s := string(d)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDimension validates a raw catalog key against the closed set.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}
	return d, nil
}
