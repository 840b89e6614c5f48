package intervention

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
	api.POST("/interventions", h.Create)
	api.GET("/patients/:patient_id/interventions", h.ListByPatient)
	api.GET("/interventions/:id", h.Get)
	api.PUT("/interventions/:id", h.Update)
	api.DELETE("/interventions/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	i, err := h.svc.Create(c.Request().Context(), actor, req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, i)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	interventions, err := h.svc.ListByPatient(c.Request().Context(), actor, c.Param("patient_id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, interventions)
}

func (h *Handler) Get(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	i, err := h.svc.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, i)
}

func (h *Handler) Update(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	i, err := h.svc.Update(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, i)
}

func (h *Handler) Delete(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Intervention deleted successfully"})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "intervention not found")
	case errors.Is(err, ErrPatientNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "not authorized for this patient")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
