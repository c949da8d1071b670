package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/service"
	"parttimejobs/prometheus"
)

type JobCategoryHandler struct {
	categories *service.JobCategoryService
	metrics    *prometheus.HTTPMetrics
}

func NewJobCategoryHandler(categories *service.JobCategoryService, metrics *prometheus.HTTPMetrics) *JobCategoryHandler {
	return &JobCategoryHandler{categories: categories, metrics: metrics}
}

// List handles GET /api/jobcategories
func (h *JobCategoryHandler) List(c echo.Context) error {
	resp, err := h.categories.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/jobcategories/:id
func (h *JobCategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.categories.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/jobcategories
func (h *JobCategoryHandler) Create(c echo.Context) error {
	req := new(dto.CreateJobCategoryRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.categories.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("jobcategory", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/jobcategories/%d", resp.CategoryID))
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/jobcategories/:id
func (h *JobCategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdateJobCategoryRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.categories.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("jobcategory", "update")
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/jobcategories/:id
func (h *JobCategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("jobcategory", "delete")
	return c.NoContent(http.StatusNoContent)
}
