package usecase

import (
	"ujenzi-notify/internal/alert"
	"ujenzi-notify/internal/alert/repository"
	deliveryRepo "ujenzi-notify/internal/deliverylog/repository"
	projectRepo "ujenzi-notify/internal/project/repository"
	"ujenzi-notify/pkg/discord"
	pkgLog "ujenzi-notify/pkg/log"
	"ujenzi-notify/pkg/minio"
	"ujenzi-notify/pkg/sms"
)

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	projectRepo  projectRepo.Repository
	deliveryRepo deliveryRepo.Repository
	smsClient    sms.ISMS
	discord      discord.IDiscord
	archive      minio.IMinIO // nil when payload archiving is disabled
}

func New(
	l pkgLog.Logger,
	repo repository.Repository,
	projRepo projectRepo.Repository,
	delRepo deliveryRepo.Repository,
	smsClient sms.ISMS,
	d discord.IDiscord,
	archive minio.IMinIO,
) alert.UseCase {
	return &implUseCase{
		l:            l,
		repo:         repo,
		projectRepo:  projRepo,
		deliveryRepo: delRepo,
		smsClient:    smsClient,
		discord:      d,
		archive:      archive,
	}
}
