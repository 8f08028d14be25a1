// ABOUTME: Tests for save-status derivation.
// ABOUTME: Covers the unknown, saved, and unsaved branches.

package models

import "testing"

func TestDeriveStatus(t *testing.T) {
	stored := []Note{
		{ID: 7, Title: "A", Content: "<p>x</p>"},
		{ID: 9, Title: "B", Content: "<p>y</p>"},
	}

	tests := []struct {
		name  string
		draft Draft
		want  SaveStatus
	}{
		{"no draft open", EmptyDraft(), StatusUnknown},
		{"never persisted", NewUnsaved("t", "c"), StatusUnknown},
		{"matches store", FromNote(Note{ID: 7, Title: "A", Content: "<p>x</p>"}), StatusSaved},
		{"title diverged", FromNote(Note{ID: 7, Title: "B", Content: "<p>x</p>"}), StatusUnsaved},
		{"content diverged", FromNote(Note{ID: 7, Title: "A", Content: "<p>z</p>"}), StatusUnsaved},
		{"missing from store", FromNote(Note{ID: 42, Title: "A", Content: "<p>x</p>"}), StatusUnsaved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.draft, stored); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSaveStatusString(t *testing.T) {
	if StatusSaved.String() != "saved" || StatusUnsaved.String() != "unsaved" || StatusUnknown.String() != "unknown" {
		t.Error("unexpected status strings")
	}
}
