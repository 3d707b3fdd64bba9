package domain

import "errors"

var ErrStoreNotFound = errors.New("store not found")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Store is a catalog entry. The catalog is generated once at startup and
// never mutated; rating submission is simulated and does not write back.
type Store struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	OverallRating float64 `json:"overall_rating"`
	UserRating    int     `json:"user_rating"`
	TotalRatings  int     `json:"total_ratings"`
	Description   string  `json:"description"`
}

// State is a reference-list entry used to populate location filters.
type State struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

// FilterCriteria narrows the catalog. Empty fields apply no restriction at
// their stage; City is only honoured together with State.
type FilterCriteria struct {
	State    string
	City     string
	Search   string
	Category string
}
