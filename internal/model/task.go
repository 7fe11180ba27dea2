package model

import "time"

// Task is the single persisted entity. ID is the external string form of the
// store-assigned identifier; repositories translate it to their native id
// type internally, so everything above them only ever sees this string.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
