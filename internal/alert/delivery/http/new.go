package http

import (
	"ujenzi-notify/internal/alert"
	pkgLog "ujenzi-notify/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc alert.UseCase
}

func New(l pkgLog.Logger, uc alert.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
