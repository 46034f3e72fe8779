package auth

import "github.com/mfurukawa/traineehub/internal/user"

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token together with the account it
// belongs to.
type LoginResponse struct {
	Token string             `json:"token"`
	User  *user.UserResponse `json:"user"`
}
