package middleware

import (
	pkgLog "ujenzi-notify/pkg/log"
	"ujenzi-notify/pkg/scope"
)

type Middleware struct {
	l           pkgLog.Logger
	jwtManager  scope.Manager
	internalKey string
}

func New(l pkgLog.Logger, jwtManager scope.Manager, internalKey string) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		internalKey: internalKey,
	}
}
