package middleware

import (
	"smartstudy/pkg/jwt"
	"smartstudy/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager *jwt.Manager
}

func New(l log.Logger, jwtManager *jwt.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
