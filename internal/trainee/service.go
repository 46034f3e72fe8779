package trainee

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTraineeNotFound  = errors.New("trainee not found")
	ErrCodeAlreadyInUse = errors.New("trainee id already in use")
)

// Service handles trainee business logic
type Service struct {
	repo *Repository
}

// NewService creates a new trainee service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new trainee
func (s *Service) Create(ctx context.Context, req *CreateTraineeRequest) (*Trainee, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a trainee by their ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Trainee, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTraineeNotFound
	}
	return t, nil
}

// ListSummaries retrieves compact rows for all active trainees
func (s *Service) ListSummaries(ctx context.Context) ([]*TraineeSummary, error) {
	return s.repo.ListSummaries(ctx)
}

// ListActive retrieves all active trainees with full attributes
func (s *Service) ListActive(ctx context.Context) ([]*Trainee, error) {
	return s.repo.ListActive(ctx)
}

// Update modifies an existing trainee
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateTraineeRequest) (*Trainee, error) {
	t, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTraineeNotFound
	}
	return t, nil
}

// Deactivate soft-deletes a trainee
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}
