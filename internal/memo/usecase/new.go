package usecase

import (
	"listenote/internal/memo"
	pkgLog "listenote/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo memo.Repository
}

// New creates a new memo UseCase instance.
func New(l pkgLog.Logger, repo memo.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
