package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// ctxUser reconstructs the authenticated caller from the claims the Auth
// middleware injected, with a fast-fail check before any service call:
//   - user_id and role must be non-empty (presence proves the middleware ran)
//   - role must be one of the three known roles
func ctxUser(c echo.Context) (domain.User, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if !domain.Role(role).Valid() {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown role")
	}

	email, _ := c.Get("email").(string)
	storeID, _ := c.Get("store_id").(string)

	return domain.User{
		ID:      id,
		Email:   email,
		Role:    domain.Role(role),
		StoreID: storeID,
	}, nil
}
