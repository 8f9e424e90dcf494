package model

type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
}

// TaskPatch holds the fields of an update. A nil field is left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}

type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
