package user

import "github.com/google/uuid"

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Email          string    `json:"email" validate:"required,email"`
	Password       string    `json:"password" validate:"required,min=8"`
	Name           string    `json:"name,omitempty"`
	Role           Role      `json:"role" validate:"required"`
	Department     *string   `json:"department,omitempty"`
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	Role       *Role   `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

// LinkTraineeRequest links (or with a null ID, unlinks) a trainee record to a user
type LinkTraineeRequest struct {
	TraineeID *uuid.UUID `json:"trainee_id"`
}

// UserResponse represents the response for a single user
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       Role       `json:"role"`
	Department *string    `json:"department,omitempty"`
	TraineeID  *uuid.UUID `json:"trainee_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  string     `json:"created_at"`
}

// ToResponse converts a User model to a UserResponse DTO
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
		TraineeID:  u.TraineeID,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
