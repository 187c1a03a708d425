package http

import (
	"listenote/internal/focus"
	"listenote/internal/model"
	"listenote/pkg/timefmt"
)

type taskResp struct {
	ID          int64  `json:"id"`
	TimestampMs int64  `json:"timestamp_ms"`
	Timestamp   string `json:"timestamp"`
	Impression  string `json:"impression"`
	ToDo        string `json:"to_do"`
}

func newTaskResp(m model.Memo) taskResp {
	return taskResp{
		ID:          m.ID,
		TimestampMs: m.TimestampMs,
		Timestamp:   timefmt.MMSS(m.TimestampMs),
		Impression:  m.Impression,
		ToDo:        m.ToDo,
	}
}

type sessionResp struct {
	Phase              string     `json:"phase"`
	CurrentTask        *taskResp  `json:"current_task,omitempty"`
	RemainingTasks     []taskResp `json:"remaining_tasks"`
	InitialTaskCount   int        `json:"initial_task_count"`
	CompletedTaskCount int        `json:"completed_task_count"`
}

func (h *handler) newSessionResp(snap focus.Snapshot) sessionResp {
	tasks := make([]taskResp, len(snap.Tasks))
	for i, m := range snap.Tasks {
		tasks[i] = newTaskResp(m)
	}
	resp := sessionResp{
		Phase:              snap.Phase.String(),
		RemainingTasks:     tasks,
		InitialTaskCount:   snap.InitialTaskCount,
		CompletedTaskCount: snap.CompletedTaskCount,
	}
	if len(tasks) > 0 && snap.Phase == focus.PhaseReviewing {
		resp.CurrentTask = &tasks[0]
	}
	return resp
}
