package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/query"
	"parttimejobs/internal/service"
	"parttimejobs/prometheus"
)

// roleMaxTop is the tighter page cap on the small roles collection.
const roleMaxTop = 50

type RoleHandler struct {
	roles   *service.RoleService
	metrics *prometheus.HTTPMetrics
}

func NewRoleHandler(roles *service.RoleService, metrics *prometheus.HTTPMetrics) *RoleHandler {
	return &RoleHandler{roles: roles, metrics: metrics}
}

// List handles GET /api/roles
func (h *RoleHandler) List(c echo.Context) error {
	opts, err := query.Parse(c.QueryParams(), roleMaxTop)
	if err != nil {
		return respondError(c, err)
	}

	roles, err := h.roles.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	roles, err = query.Apply(roles, opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

// Get handles GET /api/roles/:id
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.roles.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByName handles GET /api/roles/name/:name
func (h *RoleHandler) GetByName(c echo.Context) error {
	resp, err := h.roles.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/roles
func (h *RoleHandler) Create(c echo.Context) error {
	req := new(dto.CreateRoleRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.roles.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("role", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/roles/%d", resp.RoleID))
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/roles/:id
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdateRoleRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.roles.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("role", "update")
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/roles/:id
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.roles.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("role", "delete")
	return c.NoContent(http.StatusNoContent)
}
