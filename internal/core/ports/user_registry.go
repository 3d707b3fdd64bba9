package ports

import (
	"context"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// UserRegistry is the in-memory collection of identity+credential records.
// It is constructed with seed rows at process start and never persisted:
// signups live only as long as the process.
type UserRegistry interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, newPassword string) error
	All(ctx context.Context) ([]domain.User, error)
}
