package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/service"
	"parttimejobs/prometheus"
)

type ContractHandler struct {
	contracts *service.ContractService
	metrics   *prometheus.HTTPMetrics
}

func NewContractHandler(contracts *service.ContractService, metrics *prometheus.HTTPMetrics) *ContractHandler {
	return &ContractHandler{contracts: contracts, metrics: metrics}
}

// List handles GET /api/contracts
func (h *ContractHandler) List(c echo.Context) error {
	resp, err := h.contracts.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListActive handles GET /api/contracts/active
func (h *ContractHandler) ListActive(c echo.Context) error {
	resp, err := h.contracts.ListActive(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/contracts/:id
func (h *ContractHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.contracts.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByApplication handles GET /api/contracts/application/:applicationId
func (h *ContractHandler) GetByApplication(c echo.Context) error {
	applicationID, err := parseID(c, "applicationId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.contracts.GetByApplication(c.Request().Context(), applicationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByStudent handles GET /api/contracts/student/:studentId
func (h *ContractHandler) ListByStudent(c echo.Context) error {
	studentID, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.contracts.ListByStudent(c.Request().Context(), studentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByEmployer handles GET /api/contracts/employer/:employerId
func (h *ContractHandler) ListByEmployer(c echo.Context) error {
	employerID, err := parseID(c, "employerId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.contracts.ListByEmployer(c.Request().Context(), employerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/contracts
func (h *ContractHandler) Create(c echo.Context) error {
	req := new(dto.CreateContractRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("insert")(time.Now())
	resp, err := h.contracts.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("contract", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/contracts/%d", resp.ContractID))
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/contracts/:id
func (h *ContractHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdateContractRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.contracts.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("contract", "update")
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/contracts/:id
func (h *ContractHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.contracts.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("contract", "delete")
	return c.NoContent(http.StatusNoContent)
}
