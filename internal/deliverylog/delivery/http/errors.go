package http

import (
	"net/http"

	"ujenzi-notify/internal/deliverylog"
	"ujenzi-notify/pkg/errors"
)

var errInvalidInput = errors.NewHTTPError(400, "Invalid request", http.StatusBadRequest)

func (h *handler) mapError(err error) error {
	switch err {
	case deliverylog.ErrProjectRequired:
		return errors.NewHTTPError(403, "Filter by project is required", http.StatusForbidden)
	default:
		panic(err)
	}
}
