package project

import (
	"context"

	"ujenzi-notify/internal/model"
)

// UseCase exposes read-only project views for the dashboard.
type UseCase interface {
	Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
}
