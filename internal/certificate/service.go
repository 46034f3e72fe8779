package certificate

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrInvalidDocumentType = errors.New("invalid document type")
)

// Service handles certificate business logic
type Service struct {
	repo *Repository
}

// NewService creates a new certificate service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create attaches a certificate to a trainee
func (s *Service) Create(ctx context.Context, req *CreateCertificateRequest) (*Certificate, error) {
	if req.DocumentType != nil && !req.DocumentType.Valid() {
		return nil, ErrInvalidDocumentType
	}
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a certificate by its ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Certificate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCertificateNotFound
	}
	return c, nil
}

// ListByTraineeID retrieves all active certificates for a trainee
func (s *Service) ListByTraineeID(ctx context.Context, traineeID uuid.UUID) ([]*Certificate, error) {
	return s.repo.ListByTraineeID(ctx, traineeID)
}

// Update modifies an existing certificate
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateCertificateRequest) (*Certificate, error) {
	if req.DocumentType != nil && !req.DocumentType.Valid() {
		return nil, ErrInvalidDocumentType
	}

	c, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCertificateNotFound
	}
	return c, nil
}

// Deactivate soft-deletes a certificate
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}
