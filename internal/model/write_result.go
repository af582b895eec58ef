package model

import "time"

// WriteResult is what the document store reports back for a created document.
type WriteResult struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
}
