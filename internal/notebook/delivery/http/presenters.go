package http

import (
	"listenote/internal/model"
	"listenote/internal/notebook"
	"listenote/pkg/response"
	"listenote/pkg/timefmt"
)

// --- Request DTOs ---

type importReq struct {
	Locator string `json:"locator" binding:"required"`
}

func (r importReq) toInput() notebook.ImportInput {
	return notebook.ImportInput{Locator: r.Locator}
}

// --- Response DTOs ---

type audioSourceResp struct {
	ID         int64             `json:"id"`
	URI        string            `json:"uri"`
	Title      string            `json:"title"`
	DurationMs int64             `json:"duration_ms"`
	Duration   string            `json:"duration"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newAudioSourceResp(src model.AudioSource) audioSourceResp {
	return audioSourceResp{
		ID:         src.ID,
		URI:        src.URI,
		Title:      src.Title,
		DurationMs: src.DurationMs,
		Duration:   timefmt.MMSS(src.DurationMs),
		CreatedAt:  response.DateTime(src.CreatedAt),
	}
}

type notebookResp struct {
	ID            int64             `json:"id"`
	AudioSourceID int64             `json:"audio_source_id"`
	Title         string            `json:"title"`
	CreatedAt     response.DateTime `json:"created_at"`
}

func newNotebookResp(nb model.Notebook) notebookResp {
	return notebookResp{
		ID:            nb.ID,
		AudioSourceID: nb.AudioSourceID,
		Title:         nb.Title,
		CreatedAt:     response.DateTime(nb.CreatedAt),
	}
}

type memoResp struct {
	ID          int64             `json:"id"`
	NotebookID  int64             `json:"notebook_id"`
	TimestampMs int64             `json:"timestamp_ms"`
	Timestamp   string            `json:"timestamp"`
	Impression  string            `json:"impression"`
	ToDo        string            `json:"to_do"`
	IsCompleted bool              `json:"is_completed"`
	Rank        int               `json:"rank"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newMemoResp(m model.Memo) memoResp {
	return memoResp{
		ID:          m.ID,
		NotebookID:  m.NotebookID,
		TimestampMs: m.TimestampMs,
		Timestamp:   timefmt.MMSS(m.TimestampMs),
		Impression:  m.Impression,
		ToDo:        m.ToDo,
		IsCompleted: m.IsCompleted,
		Rank:        m.ToDoPosition,
		CreatedAt:   response.DateTime(m.CreatedAt),
	}
}

type importResp struct {
	Notebook    notebookResp    `json:"notebook"`
	AudioSource audioSourceResp `json:"audio_source"`
	ReusedAudio bool            `json:"reused_audio"`
}

func (h *handler) newImportResp(out notebook.ImportOutput) importResp {
	return importResp{
		Notebook:    newNotebookResp(out.Notebook),
		AudioSource: newAudioSourceResp(out.AudioSource),
		ReusedAudio: out.ReusedAudio,
	}
}

type listResp struct {
	Notebooks []notebookResp `json:"notebooks"`
}

func (h *handler) newListResp(notebooks []model.Notebook) listResp {
	out := make([]notebookResp, len(notebooks))
	for i, nb := range notebooks {
		out[i] = newNotebookResp(nb)
	}
	return listResp{Notebooks: out}
}

type detailResp struct {
	Notebook    notebookResp    `json:"notebook"`
	AudioSource audioSourceResp `json:"audio_source"`
	Memos       []memoResp      `json:"memos"`
}

func (h *handler) newDetailResp(out notebook.DetailOutput) detailResp {
	memos := make([]memoResp, len(out.Memos))
	for i, m := range out.Memos {
		memos[i] = newMemoResp(m)
	}
	return detailResp{
		Notebook:    newNotebookResp(out.Notebook),
		AudioSource: newAudioSourceResp(out.AudioSource),
		Memos:       memos,
	}
}

type sourcesResp struct {
	AudioSources []audioSourceResp `json:"audio_sources"`
}

func (h *handler) newSourcesResp(sources []model.AudioSource) sourcesResp {
	out := make([]audioSourceResp, len(sources))
	for i, src := range sources {
		out[i] = newAudioSourceResp(src)
	}
	return sourcesResp{AudioSources: out}
}
