package usecase

import (
	"listenote/internal/notebook"
	pkgLog "listenote/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo notebook.Repository
	meta notebook.MetadataResolver
}

// New creates a new notebook UseCase instance.
func New(l pkgLog.Logger, repo notebook.Repository, meta notebook.MetadataResolver) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		meta: meta,
	}
}
