package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/service"
	"parttimejobs/prometheus"
)

type UserHandler struct {
	users   *service.UserService
	metrics *prometheus.HTTPMetrics
}

func NewUserHandler(users *service.UserService, metrics *prometheus.HTTPMetrics) *UserHandler {
	return &UserHandler{users: users, metrics: metrics}
}

// List handles GET /api/users
func (h *UserHandler) List(c echo.Context) error {
	defer h.metrics.TrackDBOperation("query")(time.Now())
	resp, err := h.users.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c echo.Context) error {
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

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdateUserRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.users.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("user", "update")
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("user", "delete")
	return c.NoContent(http.StatusNoContent)
}
