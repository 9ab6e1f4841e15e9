package usecase

import (
	deliveryRepo "ujenzi-notify/internal/deliverylog/repository"
	"ujenzi-notify/internal/relay"
	pkgLog "ujenzi-notify/pkg/log"
	"ujenzi-notify/pkg/sms"
)

type implUseCase struct {
	l            pkgLog.Logger
	deliveryRepo deliveryRepo.Repository
	smsClient    sms.ISMS
}

func New(l pkgLog.Logger, delRepo deliveryRepo.Repository, smsClient sms.ISMS) relay.UseCase {
	return &implUseCase{
		l:            l,
		deliveryRepo: delRepo,
		smsClient:    smsClient,
	}
}
