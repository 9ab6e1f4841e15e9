package http

import (
	"ujenzi-notify/internal/relay"
	pkgLog "ujenzi-notify/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc relay.UseCase
}

func New(l pkgLog.Logger, uc relay.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
