package usecase

import (
	"ujenzi-notify/internal/project"
	"ujenzi-notify/internal/project/repository"
	pkgLog "ujenzi-notify/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) project.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
