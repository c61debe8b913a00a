package model

import (
	"encoding/json"

	"cinequiz_backend/internal/scoring"
)

// AssessmentResult is one completed quiz outcome. Rows are written exactly
// once and never updated; a retake creates a new row.
// swagger:model AssessmentResult
type AssessmentResult struct {
	UUIDBase
	UserID        uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	User          *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ArchetypeID   string          `gorm:"index;type:varchar(36)" json:"archetypeId"`
	Archetype     *Archetype      `gorm:"foreignKey:ArchetypeID" json:"archetype,omitempty"`
	Scores        json.RawMessage `gorm:"type:json" json:"scores"` // JSON: map[dimension]int
	Stats         json.RawMessage `gorm:"type:json" json:"stats"`  // JSON: []scoring.Stat
	Badges        json.RawMessage `gorm:"type:json" json:"badges"` // JSON: []scoring.Badge
	RandomThought string          `gorm:"type:text" json:"randomThought"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}

func (r *AssessmentResult) DecodeScores() (scoring.Scores, error) {
	var scores scoring.Scores
	if len(r.Scores) == 0 {
		return scoring.Scores{}, nil
	}
	if err := json.Unmarshal(r.Scores, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// AssessmentAnswer is one raw answer persisted alongside its result.
// swagger:model AssessmentAnswer
type AssessmentAnswer struct {
	BaseModel
	ResultID       string `gorm:"index;type:varchar(36)" json:"resultId"`
	QuestionID     uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	SelectedOption string `gorm:"type:text" json:"selectedOption"`
	ResponseTimeMS int    `gorm:"default:0" json:"responseTimeMs"`
}

func (AssessmentAnswer) TableName() string {
	return "assessment_answers"
}
