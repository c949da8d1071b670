package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/query"
	"parttimejobs/internal/service"
	"parttimejobs/pkg/logger"
	"parttimejobs/prometheus"
)

type JobHandler struct {
	jobs    *service.JobService
	metrics *prometheus.HTTPMetrics
}

func NewJobHandler(jobs *service.JobService, metrics *prometheus.HTTPMetrics) *JobHandler {
	return &JobHandler{jobs: jobs, metrics: metrics}
}

// List handles GET /api/jobs with query options.
func (h *JobHandler) List(c echo.Context) error {
	opts, err := query.Parse(c.QueryParams(), query.DefaultMaxTop)
	if err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("query")(time.Now())
	jobs, err := h.jobs.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	jobs, err = query.Apply(jobs, opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// ListActive handles GET /api/jobs/active
func (h *JobHandler) ListActive(c echo.Context) error {
	resp, err := h.jobs.ListActive(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/jobs/:id
func (h *JobHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.jobs.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByEmployer handles GET /api/jobs/employer/:employerId
func (h *JobHandler) ListByEmployer(c echo.Context) error {
	employerID, err := parseID(c, "employerId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.jobs.ListByEmployer(c.Request().Context(), employerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByCategory handles GET /api/jobs/category/:categoryId
func (h *JobHandler) ListByCategory(c echo.Context) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.jobs.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(c echo.Context) error {
	req := new(dto.CreateJobRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("insert")(time.Now())
	resp, err := h.jobs.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	logger.FromEcho(c).Info("job posted",
		zap.Uint("job_id", resp.JobID),
		zap.Uint("employer_id", resp.EmployerID),
	)
	h.metrics.RecordEntityOperation("job", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/jobs/%d", resp.JobID))
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/jobs/:id
func (h *JobHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdateJobRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("update")(time.Now())
	resp, err := h.jobs.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("job", "update")
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/jobs/:id. Blocked while applications exist.
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("delete")(time.Now())
	if err := h.jobs.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("job", "delete")
	return c.NoContent(http.StatusNoContent)
}
