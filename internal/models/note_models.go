package models

import "time"

// Note is a free-form staff note. Notes are archived rather than
// deleted; deletion only applies to the archived set.
type Note struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	Archived  bool      `json:"archived" db:"archived"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
