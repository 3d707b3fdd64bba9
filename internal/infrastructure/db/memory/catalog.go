package memory

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// storesPerState is the fixed catalog target for every state.
const storesPerState = 18

// Catalog is the generated, immutable store collection. The shape of the
// catalog (counts, ids, names, categories, descriptions) is deterministic
// index arithmetic over the reference lists; numeric content (house
// numbers, ratings) comes from the injected PRNG, so a fixed seed yields a
// fully reproducible catalog for tests.
type Catalog struct {
	stores []domain.Store
	byID   map[string]int
}

// NewCatalog generates the catalog once from the given seed.
func NewCatalog(seed int64) *Catalog {
	rng := rand.New(rand.NewSource(seed))

	var stores []domain.Store
	for _, state := range indianStates {
		stores = append(stores, generateStoresForState(state, rng)...)
	}

	byID := make(map[string]int, len(stores))
	for i, st := range stores {
		byID[st.ID] = i
	}
	return &Catalog{stores: stores, byID: byID}
}

func generateStoresForState(state domain.State, rng *rand.Rand) []domain.Store {
	stores := make([]domain.Store, 0, storesPerState)
	perCity := (storesPerState + len(state.Cities) - 1) / len(state.Cities)

	for cityIndex, city := range state.Cities {
		for i := 0; i < perCity && len(stores) < storesPerState; i++ {
			nameIndex := (cityIndex*perCity + i) % len(storeNames)
			categoryIndex := (cityIndex*3 + i) % len(storeCategories)
			descIndex := (cityIndex + i) % len(storeDescriptions)
			category := storeCategories[categoryIndex]

			stores = append(stores, domain.Store{
				ID:            fmt.Sprintf("%s-%s-%d", state.ID, cityKey(city), i+1),
				Name:          storeNames[nameIndex] + " " + category,
				Category:      category,
				Address:       fmt.Sprintf("%d, %s, %s, %s", rng.Intn(999)+1, storeAreas[rng.Intn(len(storeAreas))], city, state.Name),
				City:          city,
				State:         state.Name,
				OverallRating: math.Round((rng.Float64()*2+3)*10) / 10,
				UserRating:    randomUserRating(rng),
				TotalRatings:  rng.Intn(500) + 20,
				Description:   storeDescriptions[descIndex],
			})
		}
	}
	return stores
}

// randomUserRating leaves roughly 30% of stores unrated (0), else 1..5.
func randomUserRating(rng *rand.Rand) int {
	if rng.Float64() > 0.3 {
		return rng.Intn(5) + 1
	}
	return 0
}

func cityKey(city string) string {
	return strings.ToLower(strings.ReplaceAll(city, " ", ""))
}

func (c *Catalog) All(_ context.Context) ([]domain.Store, error) {
	out := make([]domain.Store, len(c.stores))
	copy(out, c.stores)
	return out, nil
}

func (c *Catalog) FindByID(_ context.Context, id string) (*domain.Store, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	clone := c.stores[i]
	return &clone, nil
}

func (c *Catalog) States(_ context.Context) ([]domain.State, error) {
	out := make([]domain.State, len(indianStates))
	copy(out, indianStates)
	return out, nil
}
