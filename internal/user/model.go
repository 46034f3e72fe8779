package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is a user's role within an organization
type Role string

const (
	RoleAdmin      Role = "ADMIN"      // 管理部署（人事・総務）
	RoleDepartment Role = "DEPARTMENT" // 勤務部署（現場）
	RoleTrainee    Role = "TRAINEE"    // 実習生本人
	RoleHR         Role = "HR"         // 人事部
	RoleAccounting Role = "ACCOUNTING" // 経理部
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDepartment, RoleTrainee, RoleHR, RoleAccounting:
		return true
	}
	return false
}

// User represents a user account
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Department   *string    `json:"department,omitempty"`
	TraineeID    *uuid.UUID `json:"trainee_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Membership associates a user with an organization under a role
type Membership struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
