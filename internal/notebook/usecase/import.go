package usecase

import (
	"context"
	"fmt"
	"strings"

	"listenote/internal/model"
	"listenote/internal/notebook"
	"listenote/internal/store"
)

// Import resolves metadata for a locator, reuses or creates the audio
// source, and creates a notebook with a title that is unique under that
// source ("Song", "Song_2", "Song_3", ...).
func (uc *implUseCase) Import(ctx context.Context, input notebook.ImportInput) (notebook.ImportOutput, error) {
	locator := strings.TrimSpace(input.Locator)
	if locator == "" {
		return notebook.ImportOutput{}, notebook.ErrEmptyLocator
	}

	meta := uc.meta.Resolve(ctx, locator)

	src, err := uc.repo.AudioSourceByURI(ctx, locator)
	reused := true
	if err == store.ErrNotFound {
		reused = false
		src = &model.AudioSource{
			URI:        locator,
			Title:      meta.Title,
			DurationMs: meta.DurationMs,
		}
		if _, err := uc.repo.CreateAudioSource(ctx, src); err != nil {
			return notebook.ImportOutput{}, fmt.Errorf("create audio source: %w", err)
		}
	} else if err != nil {
		return notebook.ImportOutput{}, fmt.Errorf("look up audio source: %w", err)
	}

	title, err := uc.uniqueTitle(ctx, src.ID, meta.Title)
	if err != nil {
		return notebook.ImportOutput{}, fmt.Errorf("derive notebook title: %w", err)
	}

	nb := &model.Notebook{
		AudioSourceID: src.ID,
		Title:         title,
	}
	if _, err := uc.repo.CreateNotebook(ctx, nb); err != nil {
		return notebook.ImportOutput{}, fmt.Errorf("create notebook: %w", err)
	}

	uc.l.Infof(ctx, "Import: notebook %q (id=%d) for source %d (reused=%v)", nb.Title, nb.ID, src.ID, reused)

	return notebook.ImportOutput{
		Notebook:    *nb,
		AudioSource: *src,
		ReusedAudio: reused,
	}, nil
}

// uniqueTitle appends _2, _3, ... to the base title until no sibling
// notebook under the same audio source carries it.
func (uc *implUseCase) uniqueTitle(ctx context.Context, audioSourceID int64, baseTitle string) (string, error) {
	siblings, err := uc.repo.NotebooksByAudioSource(ctx, audioSourceID)
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool, len(siblings))
	for _, nb := range siblings {
		taken[nb.Title] = true
	}

	title := baseTitle
	for count := 2; taken[title]; count++ {
		title = fmt.Sprintf("%s_%d", baseTitle, count)
	}
	return title, nil
}
