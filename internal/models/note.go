// ABOUTME: Note model representing a persisted rich-text document.
// ABOUTME: Canonical content is HTML produced by the editor engine.

package models

import (
	"time"
)

// Note is a persisted document. ID is assigned by the store on first
// insert and is zero until then.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote builds an unpersisted note. The default title for a freshly
// created note is the creation timestamp.
func NewNote(title, content string, now time.Time) *Note {
	return &Note{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (n *Note) Touch(now time.Time) {
	n.UpdatedAt = now
}

// Persisted reports whether the note has been stored at least once.
func (n *Note) Persisted() bool {
	return n.ID != 0
}
