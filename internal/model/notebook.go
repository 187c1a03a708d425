package model

import "time"

// Notebook is one listening/annotation session bound to exactly one
// AudioSource. Titles are unique per audio source ("Song", "Song_2", ...).
// Deleting a notebook cascades to its memos; deleting an audio source
// cascades to its notebooks.
type Notebook struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AudioSourceID int64     `json:"audio_source_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`

	AudioSource AudioSource `json:"audio_source,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the Notebook model.
func (Notebook) TableName() string {
	return "notebooks"
}
