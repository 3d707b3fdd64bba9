package ports

import (
	"context"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// RatingResult describes a simulated rating submission. NewAverage is the
// average the store would have if the rating were recorded; the catalog
// itself is never mutated.
type RatingResult struct {
	StoreID    string  `json:"store_id"`
	Rating     int     `json:"rating"`
	NewAverage float64 `json:"new_average"`
	Recorded   bool    `json:"recorded"`
}

type CatalogService interface {
	Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Store, error)
	States(ctx context.Context) ([]domain.State, error)
	Categories(ctx context.Context) ([]string, error)
	RateStore(ctx context.Context, storeID string, rating int) (*RatingResult, error)
}
