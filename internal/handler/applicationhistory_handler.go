package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/service"
	"parttimejobs/prometheus"
)

type ApplicationHistoryHandler struct {
	histories *service.ApplicationHistoryService
	metrics   *prometheus.HTTPMetrics
}

func NewApplicationHistoryHandler(histories *service.ApplicationHistoryService, metrics *prometheus.HTTPMetrics) *ApplicationHistoryHandler {
	return &ApplicationHistoryHandler{histories: histories, metrics: metrics}
}

// Get handles GET /api/applicationhistories/:id
func (h *ApplicationHistoryHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.histories.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByApplication handles GET /api/applicationhistories/application/:applicationId
func (h *ApplicationHistoryHandler) ListByApplication(c echo.Context) error {
	applicationID, err := parseID(c, "applicationId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.histories.ListByApplication(c.Request().Context(), applicationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/applicationhistories
func (h *ApplicationHistoryHandler) Create(c echo.Context) error {
	req := new(dto.CreateApplicationHistoryRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.histories.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("applicationhistory", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/applicationhistories/%d", resp.HistoryID))
	return c.JSON(http.StatusCreated, resp)
}
