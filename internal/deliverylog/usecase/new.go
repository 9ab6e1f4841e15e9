package usecase

import (
	"ujenzi-notify/internal/deliverylog"
	"ujenzi-notify/internal/deliverylog/repository"
	pkgLog "ujenzi-notify/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) deliverylog.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
