package usecase

import (
	"context"

	"ujenzi-notify/internal/alert"
	"ujenzi-notify/internal/alert/repository"
	"ujenzi-notify/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	a, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Detail.repo.Detail: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, ip alert.GetInput) (alert.GetOutput, error) {
	alerts, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			ProjectID: ip.Filter.ProjectID,
			Category:  ip.Filter.Category,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Get.repo.Get: %v", err)
		return alert.GetOutput{}, err
	}

	return alert.GetOutput{
		Alerts:    alerts,
		Paginator: pag,
	}, nil
}

func (uc *implUseCase) MarkRead(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	a, err := uc.repo.MarkRead(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.MarkRead.repo.MarkRead: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}
