package skill

import (
	"time"

	"github.com/google/uuid"
)

// SkillMaster is a catalogued skill against which trainees are evaluated
type SkillMaster struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
