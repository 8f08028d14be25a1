// ABOUTME: Tests for Note model constructor and methods.
// ABOUTME: Validates timestamp handling and persistence reporting.

package models

import (
	"testing"
	"time"
)

func TestNewNote(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	note := NewNote("Test Note", "<p>hello</p>", now)

	if note.Persisted() {
		t.Error("fresh note must not report persisted")
	}
	if note.Title != "Test Note" {
		t.Errorf("expected title %q, got %q", "Test Note", note.Title)
	}
	if note.Content != "<p>hello</p>" {
		t.Errorf("expected content %q, got %q", "<p>hello</p>", note.Content)
	}
	if !note.CreatedAt.Equal(now) || !note.UpdatedAt.Equal(now) {
		t.Error("expected created_at and updated_at to equal creation time")
	}
}

func TestNoteTouch(t *testing.T) {
	now := time.Now()
	note := NewNote("Test", "Content", now)

	note.Touch(now.Add(time.Second))

	if !note.UpdatedAt.After(note.CreatedAt) {
		t.Error("expected UpdatedAt to advance past CreatedAt")
	}
}
