// ABOUTME: SaveStatus is the derived draft-vs-store divergence state.
// ABOUTME: Recomputed whenever the draft or the store snapshot changes.

package models

// SaveStatus describes how the open draft relates to its persisted
// counterpart. It is derived, never stored.
type SaveStatus int

const (
	// StatusUnknown means no persisted note is open.
	StatusUnknown SaveStatus = iota
	// StatusSaved means the draft equals the store's copy.
	StatusSaved
	// StatusUnsaved means the draft diverges from the store, or the
	// store no longer holds the note.
	StatusUnsaved
)

func (s SaveStatus) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusUnsaved:
		return "unsaved"
	default:
		return "unknown"
	}
}

// DeriveStatus computes the status of a draft against the latest store
// snapshot. A draft without an id is unknown; a draft whose id is
// missing from the snapshot is unsaved; otherwise saved exactly when
// title and content both match.
func DeriveStatus(d Draft, notes []Note) SaveStatus {
	id, ok := d.ID()
	if !ok {
		return StatusUnknown
	}
	for _, n := range notes {
		if n.ID != id {
			continue
		}
		if n.Title == d.Title() && n.Content == d.Content() {
			return StatusSaved
		}
		return StatusUnsaved
	}
	return StatusUnsaved
}
