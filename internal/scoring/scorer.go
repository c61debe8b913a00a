package scoring

import "math"

// Question carries the scoring-relevant slice of a quiz question: its id and
// the per-option weight table. Weights are keyed by option label, so
// relabeling an option invalidates its weights.
type Question struct {
	ID      uint
	Weights map[string]map[Dimension]int
}

// Answer is one recorded response.
type Answer struct {
	QuestionID     uint
	SelectedOption string
	ResponseTimeMS int
}

// Scores holds the normalized value for every dimension.
type Scores map[Dimension]int

const (
	// calibrationDivisor assumes roughly five answers contribute to each
	// dimension across the full question set.
	calibrationDivisor = 5
	// MaxScore is the upper bound of the normalized scale.
	MaxScore = 10
)

// ComputeScores reduces the full answer set into normalized per-dimension
// scores. Answers referencing an unknown question, or selecting an option
// with no weight entry, contribute nothing; neither case is an error.
// Summation is commutative, so answer order does not affect the result.
func ComputeScores(questions []Question, answers []Answer) Scores {
	byID := make(map[uint]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	raw := make(map[Dimension]int, len(allDimensions))
	for _, d := range allDimensions {
		raw[d] = 0
	}

	for _, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}
		weights, ok := q.Weights[ans.SelectedOption]
		if !ok {
			continue
		}
		for dim, w := range weights {
			raw[dim] += w
		}
	}

	scores := make(Scores, len(raw))
	for dim, r := range raw {
		scores[dim] = normalize(r)
	}
	return scores
}

// normalize maps a raw accumulator onto the 0-10 display scale using
// round-half-up. Only the upper bound is clamped: negative weights can drive
// a dimension below zero, and flooring there would promote such scores into
// archetype range.
func normalize(raw int) int {
	v := int(math.Floor(float64(raw)/calibrationDivisor*MaxScore + 0.5))
	if v > MaxScore {
		v = MaxScore
	}
	return v
}
