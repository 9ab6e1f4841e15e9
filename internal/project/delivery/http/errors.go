package http

import (
	"errors"
	"net/http"

	"ujenzi-notify/internal/project"
	pkgErrors "ujenzi-notify/pkg/errors"
	pkgPostgre "ujenzi-notify/pkg/postgre"
)

var errBadRequest = pkgErrors.NewHTTPError(400, "Invalid request", http.StatusBadRequest)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return pkgErrors.NewHTTPError(404, "Project not found", http.StatusNotFound)
	case errors.Is(err, pkgPostgre.ErrInvalidUUID):
		return pkgErrors.NewHTTPError(400, "Invalid project identifier", http.StatusBadRequest)
	default:
		panic(err)
	}
}
