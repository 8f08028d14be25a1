// ABOUTME: Note table operations: add, update, delete, lookup, list.
// ABOUTME: Write failures carry the ErrWrite sentinel.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harper/tapnote/internal/models"
)

// Add inserts a note and returns the store-assigned id. AUTOINCREMENT
// keeps ids monotonic and never reused.
func (s *Store) Add(n *models.Note) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO notes (title, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		n.Title, n.Content, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	s.signal()
	return id, nil
}

// Update overwrites title, content, and updated_at of the note with the
// given id.
func (s *Store) Update(id int64, title, content string, updatedAt time.Time) error {
	res, err := s.db.Exec(
		`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %w", ErrWrite, ErrNotFound)
	}
	s.signal()
	return nil
}

func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %w", ErrWrite, ErrNotFound)
	}
	s.signal()
	return nil
}

func (s *Store) GetByID(id int64) (*models.Note, error) {
	n := &models.Note{}
	err := s.db.QueryRow(
		`SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?`,
		id,
	).Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// List returns all notes, newest first.
func (s *Store) List() ([]models.Note, error) {
	rows, err := s.db.Query(
		`SELECT id, title, content, created_at, updated_at FROM notes
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}
