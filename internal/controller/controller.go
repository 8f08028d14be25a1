// ABOUTME: Note lifecycle controller: draft ownership and reconciliation.
// ABOUTME: Drives create, select, edit, save, delete, import, export.

package controller

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/harper/tapnote/internal/editor"
	"github.com/harper/tapnote/internal/exporter"
	"github.com/harper/tapnote/internal/importer"
	"github.com/harper/tapnote/internal/journal"
	"github.com/harper/tapnote/internal/models"
	"github.com/harper/tapnote/internal/store"
)

var ErrNoOpenNote = errors.New("no persisted note is open")

// Controller owns the draft of the currently open note and reconciles
// it against the store's latest snapshot. All lifecycle operations are
// serialized by a mutex, so a second operation cannot interleave with
// a running one.
type Controller struct {
	store    *store.Store
	engine   editor.Engine
	journal  *journal.Journal
	notifier Notifier
	now      func() time.Time

	mu       sync.Mutex
	draft    models.Draft
	notes    []models.Note
	status   models.SaveStatus
	onStatus []func(models.SaveStatus)
	cancel   func()
}

type Option func(*Controller)

func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithJournal enables draft crash recovery.
func WithJournal(j *journal.Journal) Option {
	return func(c *Controller) { c.journal = j }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New wires the controller to the store's snapshot subscription and
// the engine's edit notifications.
func New(st *store.Store, eng editor.Engine, opts ...Option) *Controller {
	c := &Controller{
		store:    st,
		engine:   eng,
		notifier: NopNotifier{},
		now:      time.Now,
		status:   models.StatusUnknown,
	}
	for _, opt := range opts {
		opt(c)
	}

	if notes, err := st.List(); err == nil {
		c.notes = notes
	}
	eng.OnUpdate(c.contentEdited)
	c.cancel = st.Subscribe(c.onSnapshot)
	return c
}

// Close detaches the controller from the store subscription.
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// SetNotifier swaps the notification sink, e.g. when the interactive
// editor takes over the terminal. A nil notifier silences output.
func (c *Controller) SetNotifier(n Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n == nil {
		n = NopNotifier{}
	}
	c.notifier = n
}

func (c *Controller) notify() Notifier {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notifier
}

// Create persists a fresh note titled with the creation timestamp and
// opens it. On store failure the draft keeps the unsynced note fields;
// the next snapshot re-derives the status.
func (c *Controller) Create() (created *models.Note, err error) {
	c.update(func() {
		now := c.now()
		n := models.NewNote(now.Format(time.RFC3339), "", now)
		id, aerr := c.store.Add(n)
		if aerr != nil {
			err = aerr
			c.draft = models.NewUnsaved(n.Title, n.Content)
			return
		}
		n.ID = id
		c.draft = models.FromNote(*n)
		c.engine.ClearContent()
		c.clearJournal()
		c.refreshLocked()
		created = n
	})
	if err != nil {
		c.notify().Error(fmt.Sprintf("could not create note: %v", err))
	}
	return created, err
}

// Select opens the note with the given id from the latest snapshot.
// A missing id resets the draft to empty ("no note selected").
func (c *Controller) Select(id int64) (found bool) {
	c.update(func() {
		c.refreshLocked()
		for _, n := range c.notes {
			if n.ID == id {
				c.draft = models.FromNote(n)
				c.engine.SetContent(n.Content)
				c.clearJournal()
				found = true
				return
			}
		}
		c.draft = models.EmptyDraft()
		c.engine.ClearContent()
		c.clearJournal()
	})
	return found
}

// SetTitle mutates the draft title in memory only.
func (c *Controller) SetTitle(title string) {
	c.update(func() {
		if c.draft.Empty() {
			return
		}
		c.draft = c.draft.WithTitle(title)
		c.recordJournal()
	})
}

// SetContent mutates the draft content in memory only.
func (c *Controller) SetContent(content string) {
	c.update(func() {
		if c.draft.Empty() {
			return
		}
		c.draft = c.draft.WithContent(content)
		c.recordJournal()
	})
}

// Save overwrites the persisted note with the draft's title and
// content. Requires an open persisted note; there is no retry, a
// failed save is retried by the user.
func (c *Controller) Save() error {
	var err error
	c.update(func() {
		id, ok := c.draft.ID()
		if !ok {
			err = ErrNoOpenNote
			return
		}
		if uerr := c.store.Update(id, c.draft.Title(), c.draft.Content(), c.now()); uerr != nil {
			err = uerr
			return
		}
		c.clearJournal()
		c.refreshLocked()
	})
	switch {
	case err == nil:
		c.notify().Success("changes saved")
	case !errors.Is(err, ErrNoOpenNote):
		c.notify().Error(fmt.Sprintf("could not save note: %v", err))
	}
	return err
}

// Delete removes the open note from the store and empties the draft.
// On failure the draft is left untouched.
func (c *Controller) Delete() error {
	var err error
	c.update(func() {
		id, ok := c.draft.ID()
		if !ok {
			err = ErrNoOpenNote
			return
		}
		if derr := c.store.Delete(id); derr != nil {
			err = derr
			return
		}
		c.draft = models.EmptyDraft()
		c.engine.ClearContent()
		c.clearJournal()
		c.refreshLocked()
	})
	switch {
	case err == nil:
		c.notify().Success("note deleted")
	case !errors.Is(err, ErrNoOpenNote):
		c.notify().Error(fmt.Sprintf("could not delete note: %v", err))
	}
	return err
}

// CloseNote discards the draft without touching the store.
func (c *Controller) CloseNote() {
	c.update(func() {
		c.draft = models.EmptyDraft()
		c.engine.ClearContent()
		c.clearJournal()
	})
}

// Import converts file bytes of the declared media type into a new
// persisted note and opens it. Unsupported types and conversion
// failures create nothing and have no side effects.
func (c *Controller) Import(data []byte, mediaType, filename string) (*models.Note, error) {
	format, err := importer.Detect(mediaType)
	if err != nil {
		c.notify().Error("unsupported file type")
		return nil, err
	}

	conv, err := importer.Convert(data, format, filename, c.now())
	if err != nil {
		c.notify().Error(fmt.Sprintf("could not import file: %v", err))
		return nil, err
	}

	var created *models.Note
	c.update(func() {
		now := c.now()
		n := models.NewNote(conv.Title, conv.Content, now)
		id, aerr := c.store.Add(n)
		if aerr != nil {
			err = aerr
			return
		}
		n.ID = id
		c.draft = models.FromNote(*n)
		if conv.Format == importer.FormatMarkdown {
			if merr := c.engine.SetMarkdown(conv.Content); merr != nil {
				c.engine.SetContent(conv.Content)
			}
		} else {
			c.engine.SetContent(conv.Content)
		}
		c.clearJournal()
		c.refreshLocked()
		created = n
	})
	if err != nil {
		c.notify().Error(fmt.Sprintf("could not import file: %v", err))
		return nil, err
	}
	c.notify().Success("imported successfully")
	return created, nil
}

// Export renders the open draft in the requested format.
func (c *Controller) Export(format exporter.Format) (*exporter.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.draft.Empty() {
		return nil, ErrNoOpenNote
	}

	var meta *models.Note
	if id, ok := c.draft.ID(); ok {
		for i := range c.notes {
			if c.notes[i].ID == id {
				n := c.notes[i]
				meta = &n
				break
			}
		}
	}
	return exporter.Export(format, c.draft, meta, c.engine)
}

// Recover reopens the journaled draft from an interrupted session.
func (c *Controller) Recover() (recovered bool) {
	if c.journal == nil {
		return false
	}
	d, ok, err := c.journal.Load()
	if err != nil || !ok || d.Empty() {
		return false
	}
	c.update(func() {
		c.draft = d
		c.engine.SetContent(d.Content())
		recovered = true
	})
	return recovered
}

// Draft returns the current working copy.
func (c *Controller) Draft() models.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Status returns the current save status.
func (c *Controller) Status() models.SaveStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Notes returns the latest snapshot, newest first.
func (c *Controller) Notes() []models.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// OnStatusChange registers a listener invoked whenever the derived
// save status changes.
func (c *Controller) OnStatusChange(fn func(models.SaveStatus)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStatus = append(c.onStatus, fn)
}

// update runs a mutation under the lock and re-derives the status,
// notifying listeners after the lock is released.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	status := models.DeriveStatus(c.draft, c.notes)
	changed := status != c.status
	c.status = status
	listeners := c.onStatus
	c.mu.Unlock()

	if changed {
		for _, l := range listeners {
			l(status)
		}
	}
}

// onSnapshot folds store snapshots back into the derivation, covering
// mutations that originate outside this controller.
func (c *Controller) onSnapshot(notes []models.Note) {
	c.update(func() {
		c.notes = notes
	})
}

// contentEdited receives user edits from the engine, mirroring the
// editor's update notification into the draft.
func (c *Controller) contentEdited(html string) {
	c.SetContent(html)
}

func (c *Controller) refreshLocked() {
	if notes, err := c.store.List(); err == nil {
		c.notes = notes
	}
}

func (c *Controller) recordJournal() {
	if c.journal != nil {
		_ = c.journal.Record(c.draft, c.now())
	}
}

func (c *Controller) clearJournal() {
	if c.journal != nil {
		_ = c.journal.Clear()
	}
}
