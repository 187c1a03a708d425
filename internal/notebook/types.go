package notebook

import "listenote/internal/model"

// ImportInput is the input for notebook creation from an audio locator.
type ImportInput struct {
	Locator string
}

// ImportOutput is the result of an import.
type ImportOutput struct {
	Notebook    model.Notebook
	AudioSource model.AudioSource
	ReusedAudio bool // true when the locator was imported before
}

// DetailOutput bundles a notebook with its audio source and memo list.
type DetailOutput struct {
	Notebook    model.Notebook
	AudioSource model.AudioSource
	Memos       []model.Memo
}
