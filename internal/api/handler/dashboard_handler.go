package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storehub/dashboard-system/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Overview returns the caller's role-specific dashboard payload.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.Overview
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	overview, err := h.dashboard.Overview(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
