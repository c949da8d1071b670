// Package handler exposes the REST surface over echo. Handlers bind and
// validate request DTOs, delegate to the services and translate typed
// errors into status codes.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parttimejobs/internal/apperr"
	"parttimejobs/pkg/logger"
)

// respondError maps an apperr code to a status and writes the standard
// {"message": ...} body. Unexpected errors are logged before the 500.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case apperr.Is(err, apperr.CodeNotFound):
		status = http.StatusNotFound
	case apperr.Is(err, apperr.CodeConflict), apperr.Is(err, apperr.CodeValidation):
		status = http.StatusBadRequest
	case apperr.Is(err, apperr.CodeUnauthorized):
		status = http.StatusUnauthorized
	case apperr.Is(err, apperr.CodeForbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		logger.FromEcho(c).Error("request failed",
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
		return c.JSON(status, echo.Map{"message": "internal server error"})
	}
	return c.JSON(status, echo.Map{"message": apperr.MessageOf(err)})
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// bindAndValidate decodes the JSON body into req and runs the validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return apperr.Validation(err.Error())
	}
	return nil
}
