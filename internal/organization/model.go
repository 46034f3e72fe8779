package organization

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a tenant boundary. Users and trainees belong
// to one or more organizations.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
