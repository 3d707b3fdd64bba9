package service

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storehub/dashboard-system/internal/core/domain"
	"github.com/storehub/dashboard-system/internal/core/ports"
)

// maxResults caps every filter response; entries beyond it are cut in
// generation order, not ranked.
const maxResults = 50

// CatalogService narrows the immutable store catalog. All reads are pure:
// the same criteria always yield the same ordered slice.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// Filter applies, in fixed order: location (state+city pair, or state
// alone), free-text search across name/address/category, category, then the
// result cap. Empty criteria are no-ops; an empty result is valid output.
func (s *CatalogService) Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Store, error) {
	stores, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case criteria.State != "" && criteria.City != "":
		stores = keep(stores, func(st domain.Store) bool {
			return st.State == criteria.State && st.City == criteria.City
		})
	case criteria.State != "":
		stores = keep(stores, func(st domain.Store) bool {
			return st.State == criteria.State
		})
	}

	if criteria.Search != "" {
		q := strings.ToLower(criteria.Search)
		stores = keep(stores, func(st domain.Store) bool {
			return strings.Contains(strings.ToLower(st.Name), q) ||
				strings.Contains(strings.ToLower(st.Address), q) ||
				strings.Contains(strings.ToLower(st.Category), q)
		})
	}

	if criteria.Category != "" {
		stores = keep(stores, func(st domain.Store) bool {
			return st.Category == criteria.Category
		})
	}

	if len(stores) > maxResults {
		stores = stores[:maxResults]
	}

	s.logger.Debug().
		Str("state", criteria.State).
		Str("city", criteria.City).
		Str("category", criteria.Category).
		Int("results", len(stores)).
		Msg("catalog filtered")

	return stores, nil
}

func (s *CatalogService) States(ctx context.Context) ([]domain.State, error) {
	return s.repo.States(ctx)
}

// Categories returns the distinct categories present in the catalog, in
// first-appearance order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	stores, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, st := range stores {
		if _, ok := seen[st.Category]; ok {
			continue
		}
		seen[st.Category] = struct{}{}
		categories = append(categories, st.Category)
	}
	return categories, nil
}

// RateStore simulates a rating submission. The catalog is never mutated;
// the result carries the average the store would have after the rating.
func (s *CatalogService) RateStore(ctx context.Context, storeID string, rating int) (*ports.RatingResult, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	store, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	total := store.TotalRatings + 1
	avg := (store.OverallRating*float64(store.TotalRatings) + float64(rating)) / float64(total)

	s.logger.Info().Str("store_id", storeID).Int("rating", rating).Msg("rating submitted (simulated)")

	return &ports.RatingResult{
		StoreID:    storeID,
		Rating:     rating,
		NewAverage: math.Round(avg*10) / 10,
		Recorded:   false,
	}, nil
}

// keep returns the entries matching pred, preserving order.
func keep(stores []domain.Store, pred func(domain.Store) bool) []domain.Store {
	out := stores[:0:0]
	for _, st := range stores {
		if pred(st) {
			out = append(out, st)
		}
	}
	return out
}
