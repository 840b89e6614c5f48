package contact

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
	api.POST("/unable-to-contact", h.Create)
	api.GET("/patients/:patient_id/unable-to-contact", h.ListByPatient)
	api.GET("/unable-to-contact/:id", h.Get)
	api.DELETE("/unable-to-contact/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.svc.Create(c.Request().Context(), actor, req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	records, err := h.svc.ListByPatient(c.Request().Context(), actor, c.Param("patient_id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) Get(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	rec, err := h.svc.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Delete(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Record deleted successfully"})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	case errors.Is(err, ErrPatientNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "not authorized to view this record")
	case errors.Is(err, ErrNotAuthor):
		return echo.NewHTTPError(http.StatusForbidden, "record belongs to another nurse")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
