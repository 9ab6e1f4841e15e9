package usecase

import (
	"context"

	"ujenzi-notify/internal/deliverylog"
	"ujenzi-notify/internal/deliverylog/repository"
	"ujenzi-notify/internal/model"
)

func (uc *implUseCase) Recent(ctx context.Context, sc model.Scope, ip deliverylog.RecentInput) (deliverylog.RecentOutput, error) {
	if !sc.IsAdmin() && ip.ProjectID == "" {
		return deliverylog.RecentOutput{}, deliverylog.ErrProjectRequired
	}

	limit := ip.Limit
	if limit <= 0 {
		limit = deliverylog.DefaultRecentLimit
	}
	if limit > deliverylog.MaxRecentLimit {
		limit = deliverylog.MaxRecentLimit
	}

	attempts, err := uc.repo.Recent(ctx, repository.RecentOptions{
		ProjectID: ip.ProjectID,
		Limit:     limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.deliverylog.usecase.Recent.repo.Recent: %v", err)
		return deliverylog.RecentOutput{}, err
	}

	return deliverylog.RecentOutput{Attempts: attempts}, nil
}
