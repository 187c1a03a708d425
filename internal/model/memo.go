package model

import "time"

// Memo is a single annotation taken at a playback position within a
// notebook. TimestampMs is the audio position the memo was taken at and is
// never normalized or rounded. ToDoPosition is the explicit ordering key for
// the to-do view and is independent of TimestampMs.
type Memo struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	NotebookID   int64     `json:"notebook_id" gorm:"index;not null"`
	TimestampMs  int64     `json:"timestamp_ms" gorm:"not null"`
	Impression   string    `json:"impression"`
	ToDo         string    `json:"to_do"`
	IsCompleted  bool      `json:"is_completed" gorm:"not null;default:false"`
	ToDoPosition int       `json:"to_do_position" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`

	Notebook Notebook `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the Memo model.
func (Memo) TableName() string {
	return "memos"
}
