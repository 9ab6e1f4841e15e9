package deliverylog

import (
	"context"

	"ujenzi-notify/internal/model"
)

// UseCase exposes the append-only delivery log. Writes happen inside the
// dispatch pipeline and the inbound relay; this interface only reads.
type UseCase interface {
	Recent(ctx context.Context, sc model.Scope, ip RecentInput) (RecentOutput, error)
}
