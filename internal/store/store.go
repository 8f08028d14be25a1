// ABOUTME: SQLite-backed note store with change notification.
// ABOUTME: Handles XDG paths, schema setup, and the snapshot broadcast loop.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	_ "modernc.org/sqlite"

	"github.com/harper/tapnote/internal/models"
)

var ErrNotFound = errors.New("note not found")
var ErrWrite = errors.New("store write failed")

const schema = `
CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);
`

// Store is the persistent note table. Every successful mutation, and
// any write to the database file from another process, re-emits the
// full snapshot to subscribers.
type Store struct {
	db      *sql.DB
	path    string
	watcher *fsnotify.Watcher

	mu     sync.Mutex
	subs   map[int]func([]models.Note)
	nextID int

	kick chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{
		db:   db,
		path: path,
		subs: make(map[int]func([]models.Note)),
		kick: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	// External change detection is best effort; without a watcher the
	// store still broadcasts its own mutations.
	if w, err := fsnotify.NewWatcher(); err == nil {
		if err := w.Add(dir); err == nil {
			s.watcher = w
		} else {
			_ = w.Close()
		}
	}

	s.wg.Add(1)
	go s.loop()

	return s, nil
}

func (s *Store) Close() error {
	close(s.done)
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	s.wg.Wait()
	return s.db.Close()
}

// Subscribe registers a listener that receives the latest snapshot
// after every detected mutation. The returned func cancels it.
func (s *Store) Subscribe(fn func([]models.Note)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// signal coalesces broadcast requests; the loop drains at most one.
func (s *Store) signal() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

func (s *Store) loop() {
	defer s.wg.Done()

	var events chan fsnotify.Event
	var errs chan error
	if s.watcher != nil {
		events = s.watcher.Events
		errs = s.watcher.Errors
	}

	for {
		select {
		case <-s.done:
			return
		case <-s.kick:
			s.broadcast()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if strings.HasPrefix(ev.Name, s.path) && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) != 0 {
				s.broadcast()
			}
		case _, ok := <-errs:
			if !ok {
				errs = nil
			}
		}
	}
}

func (s *Store) broadcast() {
	snapshot, err := s.List()
	if err != nil {
		return
	}
	s.mu.Lock()
	fns := make([]func([]models.Note), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}
