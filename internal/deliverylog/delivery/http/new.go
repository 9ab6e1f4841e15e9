package http

import (
	"ujenzi-notify/internal/deliverylog"
	pkgLog "ujenzi-notify/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc deliverylog.UseCase
}

func New(l pkgLog.Logger, uc deliverylog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
