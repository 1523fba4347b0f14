package http

import (
	"quick-capture/internal/task"
	pkgErrors "quick-capture/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors surface as 500 without leaking internals.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyInput:
		return pkgErrors.NewHTTPError(400, "input text is empty")
	case task.ErrUnknownLanguage:
		return pkgErrors.NewHTTPError(400, "unknown language")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
