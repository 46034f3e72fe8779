package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mfurukawa/traineehub/pkg/middleware"
)

// Common errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrInvalidRole       = errors.New("invalid role")
	ErrSelfDelete        = errors.New("cannot delete own account")
	ErrTraineeNotFound   = errors.New("trainee not found")
)

// traineeChecker verifies that a trainee record exists before linking.
// Implemented by the trainee repository.
type traineeChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service handles user business logic
type Service struct {
	repo     *Repository
	trainees traineeChecker
}

// NewService creates a new user service
func NewService(repo *Repository, trainees traineeChecker) *Service {
	return &Service{repo: repo, trainees: trainees}
}

// Create registers a new user account with its organization membership
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		req.Name = req.Email
	}

	return s.repo.Create(ctx, req, string(hash))
}

// GetByID retrieves a user by their ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List retrieves users with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*User, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update modifies an existing user
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error) {
	if req.Role != nil && !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	u, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Deactivate soft-deletes a user. Users cannot delete themselves.
func (s *Service) Deactivate(ctx context.Context, id, callerID uuid.UUID) error {
	if id == callerID {
		return ErrSelfDelete
	}
	return s.repo.Deactivate(ctx, id)
}

// LinkTrainee points a user account at a trainee record, or unlinks it
// when traineeID is nil.
func (s *Service) LinkTrainee(ctx context.Context, id uuid.UUID, traineeID *uuid.UUID) error {
	if traineeID != nil {
		exists, err := s.trainees.Exists(ctx, *traineeID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTraineeNotFound
		}
	}
	return s.repo.SetTraineeLink(ctx, id, traineeID)
}

// ResolveIdentity loads the role and organization memberships for an
// authenticated user. Inactive or unknown users resolve to nil.
func (s *Service) ResolveIdentity(ctx context.Context, userID uuid.UUID) (*middleware.Identity, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, nil
	}

	memberships, err := s.repo.MembershipsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	orgIDs := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		orgIDs = append(orgIDs, m.OrganizationID)
	}

	return &middleware.Identity{
		UserID:          u.ID,
		Role:            string(u.Role),
		OrganizationIDs: orgIDs,
	}, nil
}
