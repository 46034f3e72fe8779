package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mfurukawa/traineehub/internal/user"
	"github.com/mfurukawa/traineehub/pkg/token"
)

// Common errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const sessionTTL = 24 * time.Hour

type accountSource interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Service handles authentication
type Service struct {
	accounts  accountSource
	jwtSecret string
}

// NewService creates a new auth service
func NewService(accounts accountSource, jwtSecret string) *Service {
	return &Service{accounts: accounts, jwtSecret: jwtSecret}
}

// Login verifies the credentials and issues a session token. Deactivated
// accounts are rejected the same way as unknown ones.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	u, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tok, err := token.Generate(u.ID, s.jwtSecret, sessionTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: tok, User: u.ToResponse()}, nil
}
