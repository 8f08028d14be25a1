// ABOUTME: Tests for note store operations.
// ABOUTME: Covers create, read, update, delete, ordering, and errors.

package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/harper/tapnote/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	s := openTestStore(t)
	now := time.Now()

	id1, err := s.Add(models.NewNote("First", "", now))
	if err != nil {
		t.Fatalf("failed to add note: %v", err)
	}
	id2, err := s.Add(models.NewNote("Second", "", now.Add(time.Second)))
	if err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	if id1 == 0 || id2 <= id1 {
		t.Errorf("expected monotonic ids, got %d then %d", id1, id2)
	}
}

func TestAddAndGet(t *testing.T) {
	s := openTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	note := models.NewNote("Test Title", "<p>Test content</p>", now)
	id, err := s.Add(note)
	if err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	got, err := s.GetByID(id)
	if err != nil {
		t.Fatalf("failed to get note: %v", err)
	}

	if got.Title != note.Title {
		t.Errorf("expected title %q, got %q", note.Title, got.Title)
	}
	if got.Content != note.Content {
		t.Errorf("expected content %q, got %q", note.Content, got.Content)
	}
	if got.CreatedAt.After(got.UpdatedAt) {
		t.Error("created_at must not be after updated_at")
	}
}

func TestUpdate(t *testing.T) {
	s := openTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	id, err := s.Add(models.NewNote("Original", "<p>old</p>", now))
	if err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	later := now.Add(time.Minute)
	if err := s.Update(id, "Updated", "<p>new</p>", later); err != nil {
		t.Fatalf("failed to update note: %v", err)
	}

	got, _ := s.GetByID(id)
	if got.Title != "Updated" || got.Content != "<p>new</p>" {
		t.Errorf("unexpected note after update: %q %q", got.Title, got.Content)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("expected updated_at to advance")
	}
}

func TestUpdateMissingNote(t *testing.T) {
	s := openTestStore(t)

	err := s.Update(99, "T", "C", time.Now())
	if !errors.Is(err, ErrWrite) {
		t.Errorf("expected ErrWrite, got %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Add(models.NewNote("ToDelete", "", time.Now()))
	if err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	if err := s.Delete(id); err != nil {
		t.Fatalf("failed to delete note: %v", err)
	}

	if _, err := s.GetByID(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.Delete(id); !errors.Is(err, ErrWrite) {
		t.Errorf("expected ErrWrite deleting twice, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	base := time.Now().UTC().Truncate(time.Second)

	if _, err := s.Add(models.NewNote("Old", "", base)); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}
	if _, err := s.Add(models.NewNote("New", "", base.Add(time.Hour))); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	notes, err := s.List()
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Title != "New" || notes[1].Title != "Old" {
		t.Errorf("expected newest first, got %q then %q", notes[0].Title, notes[1].Title)
	}
}
