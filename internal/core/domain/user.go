package domain

import "errors"

// Role is the closed set of actor kinds in the system.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleStoreOwner Role = "store_owner"
)

// Roles lists every valid role, in declaration order.
var Roles = []Role{RoleAdmin, RoleUser, RoleStoreOwner}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrNotAuthenticated = errors.New("not authenticated")

// User models an account in the registry. Password is the registry-side
// credential; it is never serialized and is stripped before the user is
// bound to a session.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Role     Role   `json:"role"`
	StoreID  string `json:"store_id,omitempty"`
	Password string `json:"-"`
}

// WithoutCredential returns a copy of the user with the password cleared.
func (u User) WithoutCredential() User {
	u.Password = ""
	return u
}
