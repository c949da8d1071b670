package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/service"
	"parttimejobs/internal/upload"
	"parttimejobs/pkg/logger"
	"parttimejobs/prometheus"
)

type StudentHandler struct {
	students *service.StudentService
	cvs      *upload.CVStore
	metrics  *prometheus.HTTPMetrics
}

func NewStudentHandler(students *service.StudentService, cvs *upload.CVStore, metrics *prometheus.HTTPMetrics) *StudentHandler {
	return &StudentHandler{students: students, cvs: cvs, metrics: metrics}
}

// List handles GET /api/students
func (h *StudentHandler) List(c echo.Context) error {
	resp, err := h.students.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/students/:id and GET /api/students/user/:userId;
// the profile shares the user's id so both resolve the same row.
func (h *StudentHandler) Get(c echo.Context) error {
	name := "id"
	if c.Param("userId") != "" {
		name = "userId"
	}
	id, err := parseID(c, name)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.students.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByMajor handles GET /api/students/major/:major
func (h *StudentHandler) ListByMajor(c echo.Context) error {
	resp, err := h.students.ListByMajor(c.Request().Context(), c.Param("major"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/students
func (h *StudentHandler) Create(c echo.Context) error {
	req := new(dto.CreateStudentRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.students.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("student", "create")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/students/%d", resp.StudentID))
	return c.JSON(http.StatusCreated, resp)
}

// CreateProfile handles POST /api/students/profile
func (h *StudentHandler) CreateProfile(c echo.Context) error {
	req := new(dto.CreateStudentProfileRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.students.CreateProfile(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("student", "create_profile")
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/students/%d", resp.StudentID))
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	req := new(dto.UpdateStudentRequest)
	if err := bindAndValidate(c, req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.students.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("student", "update")
	return c.JSON(http.StatusOK, resp)
}

// UploadCV handles POST /api/students/:id/upload-cv. The multipart field is
// named "file"; a successful upload replaces and removes the previous CV.
func (h *StudentHandler) UploadCV(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperr.Validation("No file uploaded"))
	}

	path, err := h.cvs.Save(id, fh)
	if err != nil {
		return respondError(c, err)
	}

	previous, err := h.students.SetCVFile(c.Request().Context(), id, path)
	if err != nil {
		// The student row was missing or the update failed; do not leave
		// the orphaned file behind.
		if rmErr := h.cvs.Remove(path); rmErr != nil {
			logger.FromEcho(c).Warn("removing orphaned cv file", zap.Error(rmErr))
		}
		return respondError(c, err)
	}

	if previous != nil {
		if err := h.cvs.Remove(*previous); err != nil {
			logger.FromEcho(c).Warn("removing superseded cv file",
				zap.String("path", *previous), zap.Error(err))
		}
	}

	h.metrics.RecordEntityOperation("student", "upload_cv")
	return c.JSON(http.StatusOK, echo.Map{"message": "CV uploaded successfully", "cvFile": path})
}

// Delete handles DELETE /api/students/:id
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.students.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordEntityOperation("student", "delete")
	return c.NoContent(http.StatusNoContent)
}
