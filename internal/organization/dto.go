package organization

import "github.com/google/uuid"

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=100"`
	Code *string `json:"code,omitempty" validate:"omitempty,max=50"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Code *string `json:"code,omitempty" validate:"omitempty,max=50"`
}

// OrganizationResponse represents the response for an organization
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
}

// ToResponse converts an Organization model to an OrganizationResponse DTO
func (o *Organization) ToResponse() *OrganizationResponse {
	return &OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Code:      o.Code,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
