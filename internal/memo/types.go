package memo

// CreateInput is the input for saving a new annotation.
type CreateInput struct {
	NotebookID  int64
	TimestampMs int64 // playback position the memo was taken at
	Impression  string
	ToDo        string
}

// UpdateInput is the input for editing an existing annotation. Completion
// flag and rank are not editable here; they belong to the to-do flows.
type UpdateInput struct {
	ID          int64
	TimestampMs int64
	Impression  string
	ToDo        string
}
