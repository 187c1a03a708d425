package http

import (
	"listenote/internal/player"
	"listenote/pkg/timefmt"
)

// --- Request DTOs ---

type loadReq struct {
	Locator string `json:"locator" binding:"required"`
}

type scrubReq struct {
	Fraction *float64 `json:"fraction" binding:"required"`
}

// --- Response DTOs ---

type stateResp struct {
	Locator     string `json:"locator"`
	IsPlaying   bool   `json:"is_playing"`
	PositionMs  int64  `json:"position_ms"`
	Position    string `json:"position"`
	DurationMs  int64  `json:"duration_ms"`
	Duration    string `json:"duration"`
	IsBuffering bool   `json:"is_buffering"`
	LastError   string `json:"last_error,omitempty"`
}

func (h *handler) newStateResp(st player.State) stateResp {
	return stateResp{
		Locator:     st.Locator,
		IsPlaying:   st.IsPlaying,
		PositionMs:  st.PositionMs,
		Position:    timefmt.MMSS(st.PositionMs),
		DurationMs:  st.DurationMs,
		Duration:    timefmt.MMSS(st.DurationMs),
		IsBuffering: st.IsBuffering,
		LastError:   st.LastError,
	}
}
