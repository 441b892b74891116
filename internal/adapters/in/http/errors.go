package http

import (
	"errors"
	"net/http"

	"concierge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the wire form of every error the API returns.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// responseError maps categorical application errors onto HTTP statuses.
// Cross-organization misses arrive here as not-found, so the mapping never
// leaks whether a foreign resource exists.
func responseError(c echo.Context, err error) error {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal error"
		c.Logger().Error(err)
	}

	return c.JSON(status, errorResponse{
		Code:    status,
		Message: message,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDependencyFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
