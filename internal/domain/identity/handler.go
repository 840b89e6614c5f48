package identity

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

// RegisterPublicRoutes mounts the unauthenticated auth endpoints.
func (h *Handler) RegisterPublicRoutes(api *echo.Group) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
}

// RegisterRoutes mounts the authenticated endpoints.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/auth/me", h.Me)
	api.GET("/admin/nurses", h.ListNurses)
	api.POST("/admin/nurses/:id/promote", h.Promote)
	api.POST("/admin/nurses/:id/demote", h.Demote)
	api.PUT("/admin/nurses/:id", h.UpdateNurse)
	api.POST("/admin/nurses/:id/assignments", h.SetAssignments)
}

func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, nurse, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		case errors.Is(err, ErrEmptyUpdate):
			return echo.NewHTTPError(http.StatusBadRequest, "email, password and full_name are required")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
		}
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token, Nurse: nurse})
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, nurse, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token, Nurse: nurse})
}

func (h *Handler) Me(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	nurse, err := h.svc.Get(c.Request().Context(), actor.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "nurse not found")
	}
	return c.JSON(http.StatusOK, nurse)
}

func (h *Handler) ListNurses(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	nurses, err := h.svc.ListNurses(c.Request().Context(), actor)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, nurses)
}

func (h *Handler) Promote(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.Promote(c.Request().Context(), actor, c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Nurse promoted to admin"})
}

func (h *Handler) Demote(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.Demote(c.Request().Context(), actor, c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Admin privileges removed"})
}

func (h *Handler) UpdateNurse(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var update ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.svc.UpdateProfile(c.Request().Context(), actor, c.Param("id"), update); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Nurse updated successfully"})
}

func (h *Handler) SetAssignments(c echo.Context) error {
	actor := auth.IdentityFromContext(c.Request().Context())
	var update AssignmentUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.SetAssignments(c.Request().Context(), actor, c.Param("id"), update); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Assignments updated successfully"})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "nurse not found")
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "admin access required")
	case errors.Is(err, ErrSelfDemotion):
		return echo.NewHTTPError(http.StatusBadRequest, "cannot demote yourself")
	case errors.Is(err, ErrEmptyUpdate):
		return echo.NewHTTPError(http.StatusBadRequest, "no data to update")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
