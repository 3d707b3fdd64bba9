package ports

import (
	"context"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// SignupInput carries the user-supplied fields of a signup. Role is never
// part of the input: every signup becomes a regular user.
type SignupInput struct {
	Name     string
	Email    string
	Address  string
	Password string
}

// AuthResult is returned by the session-creating operations.
type AuthResult struct {
	Token   string         `json:"token"`
	Session domain.Session `json:"session"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Logout(ctx context.Context) error
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) error
	Session(ctx context.Context) domain.Session
}
