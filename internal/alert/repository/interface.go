package repository

import (
	"context"
	"errors"

	"ujenzi-notify/internal/model"
	"ujenzi-notify/pkg/paginator"
)

// ErrNotFound is returned when the requested alert does not exist.
var ErrNotFound = errors.New("alert not found")

// Repository persists alert records. Alerts are append-only apart from
// the read flag; there is no delete.
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Alert, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Alert, paginator.Paginator, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
}
