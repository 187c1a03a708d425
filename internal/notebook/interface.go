package notebook

import (
	"context"

	"listenote/internal/model"
	"listenote/pkg/mediameta"
)

// UseCase defines the business logic interface for the notebook domain.
type UseCase interface {
	// Import resolves an audio locator and creates a notebook for it,
	// reusing the audio source if the locator was imported before.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)

	// List returns all notebooks, newest first.
	List(ctx context.Context) ([]model.Notebook, error)

	// Detail returns one notebook with its audio source and memo list.
	Detail(ctx context.Context, id int64) (DetailOutput, error)

	// Delete removes a notebook and, via cascade, all its memos.
	Delete(ctx context.Context, id int64) error

	// Sources returns every imported audio source, newest first.
	Sources(ctx context.Context) ([]model.AudioSource, error)
}

// Repository is the persistence surface the notebook domain needs.
type Repository interface {
	CreateAudioSource(ctx context.Context, src *model.AudioSource) (int64, error)
	AudioSourceByID(ctx context.Context, id int64) (*model.AudioSource, error)
	AudioSourceByURI(ctx context.Context, uri string) (*model.AudioSource, error)
	AudioSources(ctx context.Context) ([]model.AudioSource, error)
	CreateNotebook(ctx context.Context, nb *model.Notebook) (int64, error)
	NotebookByID(ctx context.Context, id int64) (*model.Notebook, error)
	Notebooks(ctx context.Context) ([]model.Notebook, error)
	NotebooksByAudioSource(ctx context.Context, audioSourceID int64) ([]model.Notebook, error)
	DeleteNotebook(ctx context.Context, id int64) error
	MemosByNotebook(ctx context.Context, notebookID int64) ([]model.Memo, error)
}

// MetadataResolver resolves a display title and duration for a locator.
// Resolution never fails; unknown values come back as defaults.
type MetadataResolver interface {
	Resolve(ctx context.Context, locator string) mediameta.Metadata
}
