package evaluation

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is a skill assessment for a trainee in a given period.
// Level runs from 1 (beginner) to 5 (independent).
type Evaluation struct {
	ID             uuid.UUID `json:"id"`
	TraineeID      uuid.UUID `json:"trainee_id"`
	EvaluatorID    uuid.UUID `json:"evaluator_id"`
	SkillID        uuid.UUID `json:"skill_id"`
	Level          int       `json:"level"`
	Comment        *string   `json:"comment,omitempty"`
	EvaluationDate time.Time `json:"evaluation_date"`
	Period         string    `json:"period"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Populated from JOINs
	SkillName     string `json:"skill_name,omitempty"`
	SkillCategory string `json:"skill_category,omitempty"`
	EvaluatorName string `json:"evaluator_name,omitempty"`
}
