package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storehub/dashboard-system/internal/api/metrics"
	"github.com/storehub/dashboard-system/internal/core/domain"
	"github.com/storehub/dashboard-system/internal/core/ports"
)

type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type storesResponse struct {
	Stores []domain.Store `json:"stores"`
	Count  int            `json:"count"`
}

type locationsResponse struct {
	States []domain.State `json:"states"`
}

type rateRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// Stores lists catalog entries narrowed by the query parameters, capped at
// 50 results. A city is only honoured together with its state.
//
// @Summary      Browse stores
// @Tags         catalog
// @Produce      json
// @Param        state     query  string  false  "State name (exact)"
// @Param        city      query  string  false  "City name (exact, requires state)"
// @Param        search    query  string  false  "Free-text match on name/address/category"
// @Param        category  query  string  false  "Category (exact)"
// @Success      200  {object}  storesResponse
// @Router       /stores [get]
func (h *CatalogHandler) Stores(c echo.Context) error {
	criteria := domain.FilterCriteria{
		State:    c.QueryParam("state"),
		City:     c.QueryParam("city"),
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}

	stores, err := h.catalog.Filter(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	filtered := "no"
	if criteria != (domain.FilterCriteria{}) {
		filtered = "yes"
	}
	metrics.CatalogQueriesTotal.WithLabelValues(filtered).Inc()
	metrics.CatalogResultSize.Observe(float64(len(stores)))

	if stores == nil {
		stores = []domain.Store{}
	}
	return c.JSON(http.StatusOK, storesResponse{Stores: stores, Count: len(stores)})
}

// Locations returns the state/city reference list for filter population.
//
// @Summary      Location reference list
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  locationsResponse
// @Router       /locations [get]
func (h *CatalogHandler) Locations(c echo.Context) error {
	states, err := h.catalog.States(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, locationsResponse{States: states})
}

// Categories returns the distinct store categories in the catalog.
//
// @Summary      Category list
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /stores/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]string{"categories": categories})
}

// Rate submits a simulated rating for a store. The catalog itself is never
// mutated; the response carries the would-be new average.
//
// @Summary      Rate a store (simulated)
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path   string       true  "Store id"
// @Param        body  body   rateRequest  true  "Star rating 1-5"
// @Success      202   {object}  ports.RatingResult
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /stores/{id}/rating [post]
func (h *CatalogHandler) Rate(c echo.Context) error {
	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.catalog.RateStore(c.Request().Context(), c.Param("id"), req.Rating)
	if err != nil {
		return err
	}

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(req.Rating)).Inc()
	return c.JSON(http.StatusAccepted, result)
}
