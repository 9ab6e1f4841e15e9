package http

import (
	"errors"
	"net/http"

	"ujenzi-notify/internal/alert"
	pkgErrors "ujenzi-notify/pkg/errors"
	pkgPostgre "ujenzi-notify/pkg/postgre"
)

var errInvalidInput = pkgErrors.NewHTTPError(400, "Invalid request", http.StatusBadRequest)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, alert.ErrUnauthorized):
		return pkgErrors.NewForbiddenHTTPError()
	case errors.Is(err, alert.ErrInvalidInput):
		return errInvalidInput
	case errors.Is(err, alert.ErrMessageTooLong):
		return pkgErrors.NewHTTPError(400, "Message exceeds a single SMS segment", http.StatusBadRequest)
	case errors.Is(err, alert.ErrProjectNotFound):
		return pkgErrors.NewHTTPError(404, "Project not found", http.StatusNotFound)
	case errors.Is(err, alert.ErrAlertNotFound):
		return pkgErrors.NewHTTPError(404, "Alert not found", http.StatusNotFound)
	case errors.Is(err, pkgPostgre.ErrInvalidUUID):
		return pkgErrors.NewHTTPError(400, "Invalid identifier", http.StatusBadRequest)
	default:
		panic(err)
	}
}
