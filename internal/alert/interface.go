package alert

import (
	"context"

	"ujenzi-notify/internal/model"
)

// UseCase is the alert dispatching interface. CreateAlert and
// DispatchUpdate run the full notification pipeline: authorization,
// validation, recipient resolution, formatting, gateway send, and
// delivery logging.
type UseCase interface {
	CreateAlert(ctx context.Context, sc model.Scope, ip CreateAlertInput) (CreateAlertOutput, error)
	DispatchUpdate(ctx context.Context, sc model.Scope, ip DispatchUpdateInput) (DispatchUpdateOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
}
