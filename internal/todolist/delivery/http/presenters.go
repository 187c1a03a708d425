package http

import (
	"listenote/internal/model"
	"listenote/pkg/response"
	"listenote/pkg/timefmt"
)

// --- Request DTOs ---

type moveReq struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

type completionReq struct {
	Completed *bool `json:"completed" binding:"required"`
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64             `json:"id"`
	TimestampMs int64             `json:"timestamp_ms"`
	Timestamp   string            `json:"timestamp"`
	Impression  string            `json:"impression"`
	ToDo        string            `json:"to_do"`
	IsCompleted bool              `json:"is_completed"`
	Rank        int               `json:"rank"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newItemResp(m model.Memo) itemResp {
	return itemResp{
		ID:          m.ID,
		TimestampMs: m.TimestampMs,
		Timestamp:   timefmt.MMSS(m.TimestampMs),
		Impression:  m.Impression,
		ToDo:        m.ToDo,
		IsCompleted: m.IsCompleted,
		Rank:        m.ToDoPosition,
		CreatedAt:   response.DateTime(m.CreatedAt),
	}
}

type itemsResp struct {
	Items []itemResp `json:"items"`
}

func (h *handler) newItemsResp(memos []model.Memo) itemsResp {
	items := make([]itemResp, len(memos))
	for i, m := range memos {
		items[i] = newItemResp(m)
	}
	return itemsResp{Items: items}
}

type writesResp struct {
	Writes int `json:"writes"`
}
