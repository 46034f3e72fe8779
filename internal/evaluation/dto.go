package evaluation

import (
	"time"

	"github.com/google/uuid"
)

// CreateEvaluationRequest represents the request to record an evaluation.
// The evaluator is always the authenticated caller.
type CreateEvaluationRequest struct {
	TraineeID      uuid.UUID `json:"trainee_id" validate:"required"`
	SkillID        uuid.UUID `json:"skill_id" validate:"required"`
	Level          int       `json:"level" validate:"required,min=1,max=5"`
	Comment        *string   `json:"comment,omitempty"`
	EvaluationDate time.Time `json:"evaluation_date" validate:"required"`
	Period         string    `json:"period" validate:"required,max=50"`
}

// UpdateEvaluationRequest represents the request to update an evaluation
type UpdateEvaluationRequest struct {
	Level          *int       `json:"level,omitempty" validate:"omitempty,min=1,max=5"`
	Comment        *string    `json:"comment,omitempty"`
	EvaluationDate *time.Time `json:"evaluation_date,omitempty"`
	Period         *string    `json:"period,omitempty" validate:"omitempty,max=50"`
}
