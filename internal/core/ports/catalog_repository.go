package ports

import (
	"context"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// CatalogRepository exposes the generated store catalog and the state/city
// reference list. The catalog is immutable; All returns entries in
// generation order.
type CatalogRepository interface {
	All(ctx context.Context) ([]domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	States(ctx context.Context) ([]domain.State, error)
}
