package evaluation

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrInvalidLevel       = errors.New("level must be between 1 and 5")
)

// Service handles evaluation business logic
type Service struct {
	repo *Repository
}

// NewService creates a new evaluation service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create records an evaluation by the given evaluator
func (s *Service) Create(ctx context.Context, evaluatorID uuid.UUID, req *CreateEvaluationRequest) (*Evaluation, error) {
	if req.Level < 1 || req.Level > 5 {
		return nil, ErrInvalidLevel
	}
	return s.repo.Create(ctx, evaluatorID, req)
}

// GetByID retrieves an evaluation by its ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEvaluationNotFound
	}
	return e, nil
}

// ListByTraineeID retrieves all evaluations for a trainee
func (s *Service) ListByTraineeID(ctx context.Context, traineeID uuid.UUID) ([]*Evaluation, error) {
	return s.repo.ListByTraineeID(ctx, traineeID)
}

// Update modifies an existing evaluation
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateEvaluationRequest) (*Evaluation, error) {
	if req.Level != nil && (*req.Level < 1 || *req.Level > 5) {
		return nil, ErrInvalidLevel
	}

	e, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEvaluationNotFound
	}
	return e, nil
}

// Delete removes an evaluation
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
