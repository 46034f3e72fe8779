package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mfurukawa/traineehub/internal/user"
	"github.com/mfurukawa/traineehub/pkg/token"
)

type stubAccounts struct {
	user *user.User
	err  error
}

func (s *stubAccounts) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return s.user, s.err
}

func activeUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &user.User{
		ID:           uuid.New(),
		Email:        "tanaka@example.co.jp",
		PasswordHash: string(hash),
		Name:         "田中 花子",
		Role:         user.RoleHR,
		IsActive:     true,
	}
}

func TestLoginSuccess(t *testing.T) {
	u := activeUser(t, "correct-horse")
	s := NewService(&stubAccounts{user: u}, "secret")

	res, err := s.Login(context.Background(), &LoginRequest{Email: u.Email, Password: "correct-horse"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, u.ID, res.User.ID)

	parsed, err := token.Parse(res.Token, "secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, parsed)
}

func TestLoginWrongPassword(t *testing.T) {
	u := activeUser(t, "correct-horse")
	s := NewService(&stubAccounts{user: u}, "secret")

	_, err := s.Login(context.Background(), &LoginRequest{Email: u.Email, Password: "battery-staple"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	s := NewService(&stubAccounts{user: nil}, "secret")

	_, err := s.Login(context.Background(), &LoginRequest{Email: "nobody@example.co.jp", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	u := activeUser(t, "correct-horse")
	u.IsActive = false
	s := NewService(&stubAccounts{user: u}, "secret")

	_, err := s.Login(context.Background(), &LoginRequest{Email: u.Email, Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "deactivated accounts look like unknown ones")
}

func TestLoginLookupFailure(t *testing.T) {
	s := NewService(&stubAccounts{err: errors.New("db down")}, "secret")

	_, err := s.Login(context.Background(), &LoginRequest{Email: "x@example.co.jp", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
