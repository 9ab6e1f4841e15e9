package repository

import (
	"context"

	"ujenzi-notify/internal/model"
)

// Repository persists delivery attempts. The log is append-only; rows
// are never updated or deleted.
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.DeliveryAttempt, error)
	Recent(ctx context.Context, opts RecentOptions) ([]model.DeliveryAttempt, error)
}
