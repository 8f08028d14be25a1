// ABOUTME: Tests for the interactive editor model.
// ABOUTME: Drives Update with key messages and checks controller state.

package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/tapnote/internal/controller"
	"github.com/harper/tapnote/internal/editor"
	"github.com/harper/tapnote/internal/models"
	"github.com/harper/tapnote/internal/store"
)

func newTestModel(t *testing.T) (Model, *controller.Controller) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	eng := editor.NewBuffer()
	ctrl := controller.New(st, eng)
	t.Cleanup(ctrl.Close)

	_, err = ctrl.Create()
	require.NoError(t, err)

	return New(ctrl, eng), ctrl
}

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestTypingMarksDraftUnsaved(t *testing.T) {
	m, ctrl := newTestModel(t)
	require.Equal(t, models.StatusSaved, ctrl.Status())

	m = typeRunes(t, m, "hello")

	assert.Equal(t, models.StatusUnsaved, ctrl.Status())
	assert.Contains(t, ctrl.Draft().Content(), "hello")
	_ = m
}

func TestCtrlSSavesNote(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = typeRunes(t, m, "hello")
	require.Equal(t, models.StatusUnsaved, ctrl.Status())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, models.StatusSaved, ctrl.Status())
}

func TestEscClosesNoteAndQuits(t *testing.T) {
	m, ctrl := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, ctrl.Draft().Empty())
}

func TestTabSwitchesFocusToTitle(t *testing.T) {
	m, ctrl := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.Equal(t, focusTitle, m.focus)

	m = typeRunes(t, m, "shopping list")

	assert.Contains(t, ctrl.Draft().Title(), "shopping list")
}

func TestToastMessageRendersInStatusLine(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(ToastMsg{Message: "changes saved"})
	m = next.(Model)

	assert.Contains(t, m.View(), "changes saved")
}
