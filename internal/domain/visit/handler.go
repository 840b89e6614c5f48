package visit

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
	api.POST("/patients/:patient_id/visits", h.Create)
	api.GET("/patients/:patient_id/visits", h.ListByPatient)
	api.GET("/patients/:patient_id/visits/last", h.Last)
	api.GET("/visits/:id", h.Get)
	api.PUT("/visits/:id", h.Update)
	api.DELETE("/visits/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.svc.Create(c.Request().Context(), actor, c.Param("patient_id"), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	visits, err := h.svc.ListByPatient(c.Request().Context(), actor, c.Param("patient_id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, visits)
}

func (h *Handler) Get(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	v, err := h.svc.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) Update(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.svc.Update(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) Delete(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Visit deleted successfully"})
}

func (h *Handler) Last(c echo.Context) error {
	v, err := h.svc.Last(c.Request().Context(), c.Param("patient_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "No previous visits found")
		}
		return mapError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "visit not found")
	case errors.Is(err, ErrPatientNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "not authorized for this patient")
	case errors.Is(err, ErrNotAuthor):
		return echo.NewHTTPError(http.StatusForbidden, "visit belongs to another nurse")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
