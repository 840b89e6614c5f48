package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nursemed/homecare/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients", h.Create)
	api.GET("/patients", h.List)
	api.GET("/patients/:id", h.Get)
	api.PUT("/patients/:id", h.Update)
	api.DELETE("/patients/:id", h.Delete)
	api.POST("/admin/patients/:id/assign", h.AssignNurses)
}

func (h *Handler) Create(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.svc.Create(c.Request().Context(), actor, req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) List(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	views, err := h.svc.List(c.Request().Context(), actor)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) Get(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	view, err := h.svc.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) Update(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.svc.Update(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) Delete(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient deleted successfully"})
}

func (h *Handler) AssignNurses(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var nurseIDs []string
	if err := c.Bind(&nurseIDs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.AssignNurses(c.Request().Context(), actor, c.Param("id"), nurseIDs); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Nurses assigned successfully"})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "you are not assigned to this patient")
	case errors.Is(err, ErrAdminOnly):
		return echo.NewHTTPError(http.StatusForbidden, "admin access required")
	case errors.Is(err, ErrOrganizationRequired):
		return echo.NewHTTPError(http.StatusBadRequest, "organization is required")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
