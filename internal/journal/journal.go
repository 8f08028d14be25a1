// ABOUTME: Crash-recovery journal for the in-flight draft.
// ABOUTME: Badger-backed; records every edit, cleared on save or close.

package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/harper/tapnote/internal/models"
)

const draftKey = "draft:current"

// Journal persists the open draft between edits so an interrupted
// session can pick up where it left off.
type Journal struct {
	db *badger.DB
}

type draftRecord struct {
	ID         int64     `json:"id,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	RecordedAt time.Time `json:"recorded_at"`
}

func Open(dir string) (*Journal, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Record overwrites the journaled draft.
func (j *Journal) Record(d models.Draft, now time.Time) error {
	rec := draftRecord{
		Title:      d.Title(),
		Content:    d.Content(),
		RecordedAt: now,
	}
	if id, ok := d.ID(); ok {
		rec.ID = id
	}
	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(draftKey), encoded)
	})
}

// Load returns the journaled draft, reporting false when none exists.
func (j *Journal) Load() (models.Draft, bool, error) {
	var rec draftRecord
	err := j.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(draftKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.EmptyDraft(), false, nil
	}
	if err != nil {
		return models.EmptyDraft(), false, err
	}

	if rec.ID != 0 {
		return models.FromNote(models.Note{ID: rec.ID, Title: rec.Title, Content: rec.Content}), true, nil
	}
	return models.NewUnsaved(rec.Title, rec.Content), true, nil
}

// Clear drops the journaled draft.
func (j *Journal) Clear() error {
	return j.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(draftKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}
