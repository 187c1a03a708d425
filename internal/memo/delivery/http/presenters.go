package http

import (
	"listenote/internal/memo"
	"listenote/internal/model"
	"listenote/pkg/response"
	"listenote/pkg/timefmt"
)

// --- Request DTOs ---

type createReq struct {
	NotebookID  int64  `json:"notebook_id" binding:"required"`
	TimestampMs int64  `json:"timestamp_ms"`
	Impression  string `json:"impression"`
	ToDo        string `json:"to_do"`
}

func (r createReq) toInput() memo.CreateInput {
	return memo.CreateInput{
		NotebookID:  r.NotebookID,
		TimestampMs: r.TimestampMs,
		Impression:  r.Impression,
		ToDo:        r.ToDo,
	}
}

type updateReq struct {
	ID          int64  `json:"-"` // populated from URI param
	TimestampMs int64  `json:"timestamp_ms"`
	Impression  string `json:"impression"`
	ToDo        string `json:"to_do"`
}

func (r updateReq) toInput() memo.UpdateInput {
	return memo.UpdateInput{
		ID:          r.ID,
		TimestampMs: r.TimestampMs,
		Impression:  r.Impression,
		ToDo:        r.ToDo,
	}
}

// --- Response DTOs ---

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

type createResp struct {
	Memo memoResp `json:"memo"`
}

func (h *handler) newCreateResp(m model.Memo) createResp {
	return createResp{Memo: newMemoResp(m)}
}

type detailResp struct {
	Memo memoResp `json:"memo"`
}

func (h *handler) newDetailResp(m model.Memo) detailResp {
	return detailResp{Memo: newMemoResp(m)}
}
