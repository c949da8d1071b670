package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/query"
	"parttimejobs/internal/service"
	"parttimejobs/prometheus"
)

type ApplicationHandler struct {
	applications *service.ApplicationService
	metrics      *prometheus.HTTPMetrics
}

func NewApplicationHandler(applications *service.ApplicationService, metrics *prometheus.HTTPMetrics) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, metrics: metrics}
}

// List handles GET /api/applications with query options.
func (h *ApplicationHandler) List(c echo.Context) error {
	opts, err := query.Parse(c.QueryParams(), query.DefaultMaxTop)
	if err != nil {
		return respondError(c, err)
	}

	applications, err := h.applications.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	applications, err = query.Apply(applications, opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, applications)
}

// Get handles GET /api/applications/:id
func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.applications.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByStudent handles GET /api/applications/student/:studentId
func (h *ApplicationHandler) ListByStudent(c echo.Context) error {
	studentID, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.applications.ListByStudent(c.Request().Context(), studentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByJob handles GET /api/applications/job/:jobId
func (h *ApplicationHandler) ListByJob(c echo.Context) error {
	jobID, err := parseID(c, "jobId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.applications.ListByJob(c.Request().Context(), jobID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/applications
func (h *ApplicationHandler) Create(c echo.Context) error {
	req := new(dto.CreateApplicationRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("insert")(time.Now())
	resp, err := h.applications.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("application", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/applications/%d", resp.ApplicationID))
	return c.JSON(http.StatusCreated, resp)
}

// UpdateStatus handles PATCH /api/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdateApplicationStatusRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.applications.UpdateStatus(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("application", "update_status")
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/applications/:id
func (h *ApplicationHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.applications.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("application", "delete")
	return c.NoContent(http.StatusNoContent)
}
