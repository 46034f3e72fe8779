package skill

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSkillNotFound is returned when a skill master record does not exist
var ErrSkillNotFound = errors.New("skill not found")

// Service handles skill catalogue business logic
type Service struct {
	repo *Repository
}

// NewService creates a new skill service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a skill to the catalogue
func (s *Service) Create(ctx context.Context, req *CreateSkillRequest) (*SkillMaster, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a skill by its ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*SkillMaster, error) {
	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sk == nil {
		return nil, ErrSkillNotFound
	}
	return sk, nil
}

// List retrieves the full skill catalogue
func (s *Service) List(ctx context.Context) ([]*SkillMaster, error) {
	return s.repo.List(ctx)
}

// Update modifies an existing skill
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateSkillRequest) (*SkillMaster, error) {
	sk, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if sk == nil {
		return nil, ErrSkillNotFound
	}
	return sk, nil
}

// Delete removes a skill from the catalogue
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
