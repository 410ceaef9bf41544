package usecase

import (
	"smartstudy/internal/auth/repository"
	"smartstudy/pkg/jwt"
	"smartstudy/pkg/log"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
	l          log.Logger
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, jwtManager *jwt.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
	}
}
