package model

import (
	"encoding/json"

	"cinequiz_backend/internal/scoring"
)

type QuestionType string

const (
	SingleChoice QuestionType = "single_choice"
	MultiChoice  QuestionType = "multi_choice"
	VisualCards  QuestionType = "visual_cards"
)

// QuestionOption is one selectable choice of a quiz question.
type QuestionOption struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
}

// QuizQuestion is one entry of the quiz catalog. DimensionWeights maps an
// option label to a dimension->weight table, so renaming an option label
// invalidates its weights.
// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	Text             string          `gorm:"type:text;not null" json:"text"`
	QuestionType     QuestionType    `gorm:"size:20;not null;default:'single_choice'" json:"questionType"`
	Options          json.RawMessage `gorm:"type:json" json:"options"`                    // JSON: []QuestionOption
	DimensionWeights json.RawMessage `gorm:"type:json" json:"dimensionWeights,omitempty"` // JSON: map[label]map[dimension]weight
	OrderIndex       int             `gorm:"default:0;index" json:"orderIndex"`
	IsActive         bool            `gorm:"default:true" json:"isActive"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// DecodeOptions unpacks the JSON options column.
func (q *QuizQuestion) DecodeOptions() ([]QuestionOption, error) {
	if len(q.Options) == 0 {
		return nil, nil
	}
	var opts []QuestionOption
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// DecodeWeights unpacks the weight table and validates every dimension key
// against the closed set. A typo in a catalog row surfaces here as
// scoring.ErrUnknownDimension instead of a silent scoring gap.
func (q *QuizQuestion) DecodeWeights() (map[string]map[scoring.Dimension]int, error) {
	weights := make(map[string]map[scoring.Dimension]int)
	if len(q.DimensionWeights) == 0 {
		return weights, nil
	}

	var raw map[string]map[string]int
	if err := json.Unmarshal(q.DimensionWeights, &raw); err != nil {
		return nil, err
	}

	for option, table := range raw {
		decoded := make(map[scoring.Dimension]int, len(table))
		for key, w := range table {
			dim, err := scoring.ParseDimension(key)
			if err != nil {
				return nil, err
			}
			decoded[dim] = w
		}
		weights[option] = decoded
	}
	return weights, nil
}

// ToScoring projects the row into the engine's question shape.
func (q *QuizQuestion) ToScoring() (scoring.Question, error) {
	weights, err := q.DecodeWeights()
	if err != nil {
		return scoring.Question{}, err
	}
	return scoring.Question{ID: q.ID, Weights: weights}, nil
}
