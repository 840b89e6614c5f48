package incident

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nursemed/homecare/internal/platform/auth"
	"github.com/nursemed/homecare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/incident-reports", h.Create)
	api.GET("/incident-reports", h.List)
}

func (h *Handler) Create(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var payload Report
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.svc.Create(c.Request().Context(), actor, payload)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Incident report created successfully",
		"id":      id,
	})
}

func (h *Handler) List(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	reports, err := h.svc.List(c.Request().Context(), actor, pagination.FromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reports)
}
