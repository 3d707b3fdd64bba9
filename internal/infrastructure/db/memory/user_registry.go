package memory

import (
	"context"
	"sync"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// UserRegistry is the mock in-memory identity store. It is constructed with
// seed rows at process start and deliberately never persisted: signups live
// only as long as the process. Reads hand out copies so callers cannot
// mutate registry rows.
type UserRegistry struct {
	mu    sync.RWMutex
	users []domain.User
}

// SeedUsers returns the three demo accounts every fresh process starts with.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:       "1",
			Name:     "System Administrator",
			Email:    "admin@example.com",
			Address:  "123 Admin Street, Admin City",
			Role:     domain.RoleAdmin,
			Password: "Admin123!",
		},
		{
			ID:       "2",
			Name:     "John Doe Normal User Account",
			Email:    "user@example.com",
			Address:  "456 User Avenue, User Town, User State 12345",
			Role:     domain.RoleUser,
			Password: "User123!",
		},
		{
			ID:       "3",
			Name:     "Store Owner Sample Account",
			Email:    "store@example.com",
			Address:  "789 Store Boulevard, Store City, Store State 67890",
			Role:     domain.RoleStoreOwner,
			StoreID:  "1",
			Password: "Store123!",
		},
	}
}

// NewUserRegistry builds a registry holding the given rows. Pass SeedUsers()
// for the production wiring; tests construct fresh instances per case.
func NewUserRegistry(seed []domain.User) *UserRegistry {
	users := make([]domain.User, len(seed))
	copy(users, seed)
	return &UserRegistry{users: users}
}

func (r *UserRegistry) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRegistry) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends a new row. Email uniqueness is case-sensitive, matching
// the exact-string semantics of login.
func (r *UserRegistry) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	r.users = append(r.users, *user)
	clone := *user
	return &clone, nil
}

func (r *UserRegistry) UpdatePassword(_ context.Context, id, newPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Password = newPassword
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRegistry) All(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Len reports the number of rows. Used by tests to assert that failed
// signups leave the registry untouched.
func (r *UserRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
