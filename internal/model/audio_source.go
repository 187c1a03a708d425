package model

import "time"

// AudioSource is one distinct imported audio file. Sources are deduplicated
// by URI: re-importing the same locator reuses the existing row.
type AudioSource struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	URI        string    `json:"uri" gorm:"uniqueIndex;not null"`
	Title      string    `json:"title" gorm:"not null"`
	DurationMs int64     `json:"duration_ms" gorm:"not null;default:0"` // 0 when unknown at import time
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for the AudioSource model.
func (AudioSource) TableName() string {
	return "audio_sources"
}
