package organization

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrCodeAlreadyInUse     = errors.New("organization code already in use")
)

// Service handles organization business logic
type Service struct {
	repo *Repository
}

// NewService creates a new organization service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new organization
func (s *Service) Create(ctx context.Context, req *CreateOrganizationRequest) (*Organization, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves an organization by its ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Organization, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrganizationNotFound
	}
	return o, nil
}

// List retrieves all active organizations
func (s *Service) List(ctx context.Context) ([]*Organization, error) {
	return s.repo.List(ctx)
}

// ListByUserID retrieves the organizations a user belongs to
func (s *Service) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*Organization, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Update modifies an existing organization
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateOrganizationRequest) (*Organization, error) {
	o, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrganizationNotFound
	}
	return o, nil
}

// Deactivate soft-deletes an organization
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}
