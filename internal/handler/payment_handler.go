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

type PaymentHandler struct {
	payments *service.PaymentService
	metrics  *prometheus.HTTPMetrics
}

func NewPaymentHandler(payments *service.PaymentService, metrics *prometheus.HTTPMetrics) *PaymentHandler {
	return &PaymentHandler{payments: payments, metrics: metrics}
}

// List handles GET /api/payments with query options.
func (h *PaymentHandler) List(c echo.Context) error {
	opts, err := query.Parse(c.QueryParams(), query.DefaultMaxTop)
	if err != nil {
		return respondError(c, err)
	}

	payments, err := h.payments.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	payments, err = query.Apply(payments, opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// Get handles GET /api/payments/:id
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.payments.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByContract handles GET /api/payments/contract/:contractId
func (h *PaymentHandler) ListByContract(c echo.Context) error {
	contractID, err := parseID(c, "contractId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.payments.ListByContract(c.Request().Context(), contractID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByStudent handles GET /api/payments/student/:studentId
func (h *PaymentHandler) ListByStudent(c echo.Context) error {
	studentID, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.payments.ListByStudent(c.Request().Context(), studentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByStatus handles GET /api/payments/status/:status
func (h *PaymentHandler) ListByStatus(c echo.Context) error {
	resp, err := h.payments.ListByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/payments
func (h *PaymentHandler) Create(c echo.Context) error {
	req := new(dto.CreatePaymentRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	defer h.metrics.TrackDBOperation("insert")(time.Now())
	resp, err := h.payments.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("payment", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/payments/%d", resp.PaymentID))
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/payments/:id
func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdatePaymentRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.payments.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("payment", "update")
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.payments.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("payment", "delete")
	return c.NoContent(http.StatusNoContent)
}
