package http

import (
	"errors"
	"net/http"

	"tanker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error body returned by every route.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates domain error kinds into HTTP statuses. Validation
// failures map to 400, missing objects to 404, lost races and precondition
// conflicts to 409, lapsed deadlines to 408, everything else to 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrDeadlineExpired):
		status = http.StatusRequestTimeout
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest reports a malformed request body or path parameter.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
