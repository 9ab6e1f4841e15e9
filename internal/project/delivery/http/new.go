package http

import (
	"ujenzi-notify/internal/project"
	pkgLog "ujenzi-notify/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc project.UseCase
}

func New(l pkgLog.Logger, uc project.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
