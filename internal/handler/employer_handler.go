package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/service"
	"parttimejobs/prometheus"
)

type EmployerHandler struct {
	employers *service.EmployerService
	metrics   *prometheus.HTTPMetrics
}

func NewEmployerHandler(employers *service.EmployerService, metrics *prometheus.HTTPMetrics) *EmployerHandler {
	return &EmployerHandler{employers: employers, metrics: metrics}
}

// List handles GET /api/employers
func (h *EmployerHandler) List(c echo.Context) error {
	resp, err := h.employers.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListVerified handles GET /api/employers/verified
func (h *EmployerHandler) ListVerified(c echo.Context) error {
	resp, err := h.employers.ListVerified(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/employers/:id and GET /api/employers/user/:userId.
func (h *EmployerHandler) Get(c echo.Context) error {
	name := "id"
	if c.Param("userId") != "" {
		name = "userId"
	}
	id, err := parseID(c, name)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.employers.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/employers
func (h *EmployerHandler) Create(c echo.Context) error {
	req := new(dto.CreateEmployerRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.employers.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("employer", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/employers/%d", resp.EmployerID))
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/employers/:id
func (h *EmployerHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdateEmployerRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.employers.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("employer", "update")
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/employers/:id
func (h *EmployerHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.employers.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("employer", "delete")
	return c.NoContent(http.StatusNoContent)
}
