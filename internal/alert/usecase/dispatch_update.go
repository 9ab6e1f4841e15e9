package usecase

import (
	"context"

	"ujenzi-notify/internal/alert"
	"ujenzi-notify/internal/model"
)

// DispatchUpdate sends an ad-hoc status message for a project. Same
// pipeline as CreateAlert but no alert row is written; the delivery
// attempt carries no alert reference.
func (uc *implUseCase) DispatchUpdate(ctx context.Context, sc model.Scope, ip alert.DispatchUpdateInput) (alert.DispatchUpdateOutput, error) {
	if !sc.CanDispatchAlerts() {
		return alert.DispatchUpdateOutput{}, alert.ErrUnauthorized
	}

	if ip.ProjectID == "" || ip.Body == "" {
		return alert.DispatchUpdateOutput{}, alert.ErrInvalidInput
	}

	p, err := uc.lookupProject(ctx, sc, ip.ProjectID)
	if err != nil {
		return alert.DispatchUpdateOutput{}, err
	}

	msg, err := alert.FormatUpdate(p.Name, ip.Body)
	if err != nil {
		return alert.DispatchUpdateOutput{}, err
	}

	recipients, _, err := uc.resolveRecipients(ctx, sc, p)
	if err != nil {
		return alert.DispatchUpdateOutput{}, err
	}

	res := uc.dispatch(ctx, nil, msg, recipients)

	return alert.DispatchUpdateOutput{Delivery: res}, nil
}
