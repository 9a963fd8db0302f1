package http

import (
	"errors"
	"net/http"

	"decidr/internal/task"
	pkgErrors "decidr/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyName),
		errors.Is(err, task.ErrInvalidRemainingTime),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidDeadline),
		errors.Is(err, task.ErrInvalidAvailableMinutes),
		errors.Is(err, task.ErrInvalidMode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
