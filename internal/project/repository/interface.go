package repository

import (
	"context"
	"errors"

	"ujenzi-notify/internal/model"
	"ujenzi-notify/pkg/paginator"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Repository provides read access to project and stakeholder records.
// Both collections are owned by the surrounding platform; this service
// never writes them.
type Repository interface {
	Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Project, paginator.Paginator, error)
	ListStakeholders(ctx context.Context, sc model.Scope, ids []string) ([]model.Stakeholder, error)
}
