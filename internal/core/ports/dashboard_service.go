package ports

import (
	"context"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// AdminOverview summarises the whole platform.
type AdminOverview struct {
	TotalUsers   int            `json:"total_users"`
	TotalStores  int            `json:"total_stores"`
	TotalRatings int            `json:"total_ratings"`
	UsersByRole  map[string]int `json:"users_by_role"`
}

// UserOverview seeds the browsing view.
type UserOverview struct {
	TotalStores int      `json:"total_stores"`
	Categories  []string `json:"categories"`
	States      int      `json:"states"`
}

// StoreOwnerOverview describes the owner's store and its rating spread.
type StoreOwnerOverview struct {
	Store         domain.Store `json:"store"`
	AverageRating float64      `json:"average_rating"`
	TotalRatings  int          `json:"total_ratings"`
	Distribution  map[int]int  `json:"distribution"`
}

// Overview is the role-dispatched dashboard payload: exactly one of the
// three sections is populated, matching Role.
type Overview struct {
	Role       domain.Role         `json:"role"`
	Admin      *AdminOverview      `json:"admin,omitempty"`
	User       *UserOverview       `json:"user,omitempty"`
	StoreOwner *StoreOwnerOverview `json:"store_owner,omitempty"`
}

type DashboardService interface {
	Overview(ctx context.Context, user domain.User) (*Overview, error)
}
