package admin

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
	api.GET("/admin/organizations", h.ListOrganizations)
	api.POST("/admin/organizations", h.CreateOrganization)
	api.PUT("/admin/organizations/:id", h.UpdateOrganization)
	api.DELETE("/admin/organizations/:id", h.DeleteOrganization)

	api.GET("/admin/day-programs", h.ListDayPrograms)
	api.POST("/admin/day-programs", h.CreateDayProgram)
	api.PUT("/admin/day-programs/:id", h.UpdateDayProgram)
	api.DELETE("/admin/day-programs/:id", h.DeleteDayProgram)
}

func (h *Handler) ListOrganizations(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	orgs, err := h.svc.ListOrganizations(c.Request().Context(), actor)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, orgs)
}

func (h *Handler) CreateOrganization(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req OrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	o, err := h.svc.CreateOrganization(c.Request().Context(), actor, req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateOrganization(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req OrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	o, err := h.svc.UpdateOrganization(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) DeleteOrganization(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.DeleteOrganization(c.Request().Context(), actor, c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Organization deleted successfully"})
}

func (h *Handler) ListDayPrograms(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	programs, err := h.svc.ListDayPrograms(c.Request().Context(), actor)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, programs)
}

func (h *Handler) CreateDayProgram(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req DayProgramRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.CreateDayProgram(c.Request().Context(), actor, req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateDayProgram(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req DayProgramRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.UpdateDayProgram(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteDayProgram(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.DeleteDayProgram(c.Request().Context(), actor, c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Day program deleted successfully"})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "admin access required")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
