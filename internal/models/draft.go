// ABOUTME: Draft is the in-memory working copy of the open note.
// ABOUTME: Models the empty / new-unsaved / persisted states explicitly.

package models

// Draft is the working copy of at most one note. The zero value is the
// empty draft ("no note selected"). A draft either mirrors a persisted
// note (id set) or holds content that never reached the store.
type Draft struct {
	id      int64
	title   string
	content string
}

// EmptyDraft returns the "no note open" draft.
func EmptyDraft() Draft {
	return Draft{}
}

// NewUnsaved returns a draft that has content but no persisted
// counterpart, e.g. after a failed create.
func NewUnsaved(title, content string) Draft {
	return Draft{title: title, content: content}
}

// FromNote returns a draft mirroring a persisted note.
func FromNote(n Note) Draft {
	return Draft{id: n.ID, title: n.Title, content: n.Content}
}

// Empty reports whether no note is open.
func (d Draft) Empty() bool {
	return d.id == 0 && d.title == "" && d.content == ""
}

// ID returns the persisted id, or false when the draft never reached
// the store.
func (d Draft) ID() (int64, bool) {
	return d.id, d.id != 0
}

func (d Draft) Title() string   { return d.title }
func (d Draft) Content() string { return d.content }

// WithTitle returns a copy of the draft with the title replaced.
func (d Draft) WithTitle(title string) Draft {
	d.title = title
	return d
}

// WithContent returns a copy of the draft with the content replaced.
func (d Draft) WithContent(content string) Draft {
	d.content = content
	return d
}
