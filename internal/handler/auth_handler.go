package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/service"
	"parttimejobs/pkg/logger"
	"parttimejobs/prometheus"
)

type AuthHandler struct {
	auth    *service.AuthService
	users   *service.UserService
	metrics *prometheus.HTTPMetrics
}

func NewAuthHandler(auth *service.AuthService, users *service.UserService, metrics *prometheus.HTTPMetrics) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, metrics: metrics}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	req := new(dto.RegisterRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("insert")(time.Now())
	resp, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		h.metrics.RecordAuthError("register_failed")
		return respondError(c, err)
	}

	logger.FromEcho(c).Info("user registered",
		zap.Uint("user_id", resp.UserID),
		zap.String("role", resp.Role),
	)
	h.metrics.RecordEntityOperation("user", "register")
	return c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	req := new(dto.LoginRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("query")(time.Now())
	resp, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		h.metrics.RecordAuthError("login_failed")
		return respondError(c, err)
	}

	h.metrics.RecordEntityOperation("user", "login")
	return c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /api/auth/user/:id
func (h *AuthHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ChangePassword handles POST /api/auth/change-password/:userId
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.ChangePasswordRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	if err := h.auth.ChangePassword(c.Request().Context(), userID, req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password changed successfully"})
}
