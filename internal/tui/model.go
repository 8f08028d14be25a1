// ABOUTME: Bubble Tea model for the full-screen note editor.
// ABOUTME: Title input and markdown body feed the controller; ctrl+s saves.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/tapnote/internal/controller"
	"github.com/harper/tapnote/internal/editor"
	"github.com/harper/tapnote/internal/ui"
)

const toastDuration = 3 * time.Second

// Message types for tea.Cmd
type (
	// TickMsg drives the clock that expires toasts.
	TickMsg time.Time

	// ToastMsg displays a temporary status message.
	ToastMsg struct {
		Message string
		IsError bool
	}
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	toastOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	toastErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const (
	focusTitle = iota
	focusBody
)

// Model is the root Bubble Tea model for the interactive editor.
type Model struct {
	ctrl   *controller.Controller
	engine editor.Engine
	keys   KeyMap

	title textinput.Model
	body  textarea.Model
	focus int

	width, height int

	notices chan ToastMsg

	statusMsg    string
	statusErr    bool
	statusExpiry time.Time
}

// channelNotifier forwards controller notifications into the Bubble Tea
// message loop so they render as toasts instead of writing to stdout.
type channelNotifier struct {
	ch chan<- ToastMsg
}

func (n channelNotifier) Success(msg string) {
	select {
	case n.ch <- ToastMsg{Message: msg}:
	default:
	}
}

func (n channelNotifier) Error(msg string) {
	select {
	case n.ch <- ToastMsg{Message: msg, IsError: true}:
	default:
	}
}

// New builds an editor model around an open controller. The current
// draft seeds the title and body widgets.
func New(ctrl *controller.Controller, eng editor.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "Untitled"
	ti.Prompt = ""
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.ShowLineNumbers = false

	m := Model{
		ctrl:    ctrl,
		engine:  eng,
		keys:    DefaultKeyMap(),
		title:   ti,
		body:    ta,
		focus:   focusBody,
		notices: make(chan ToastMsg, 8),
	}
	m.loadDraft()
	m.body.Focus()

	ctrl.SetNotifier(channelNotifier{ch: m.notices})
	return m
}

// loadDraft copies the controller draft into the widgets.
func (m *Model) loadDraft() {
	d := m.ctrl.Draft()
	m.title.SetValue(d.Title())
	if md, err := m.engine.Markdown(); err == nil {
		m.body.SetValue(md)
	} else {
		m.body.SetValue(d.Content())
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tickCmd(), m.waitForToast())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForToast blocks on the notifier channel and resumes the message
// loop when the controller reports an outcome.
func (m Model) waitForToast() tea.Cmd {
	return func() tea.Msg {
		return <-m.notices
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.SetWidth(msg.Width - 2)
		m.body.SetHeight(msg.Height - 4)
		m.title.Width = msg.Width - 4
		return m, nil

	case TickMsg:
		if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
			m.statusMsg = ""
		}
		return m, tickCmd()

	case ToastMsg:
		m.statusMsg = msg.Message
		m.statusErr = msg.IsError
		m.statusExpiry = time.Now().Add(toastDuration)
		return m, m.waitForToast()
	}

	return m.updateWidgets(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		// Errors surface through the notifier as toasts.
		_ = m.ctrl.Save()
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.ctrl.CloseNote()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusTitle {
			m.focus = focusBody
			m.title.Blur()
			return m, m.body.Focus()
		}
		m.focus = focusTitle
		m.body.Blur()
		return m, m.title.Focus()
	}

	return m.updateWidgets(msg)
}

// updateWidgets routes input to the focused widget and pushes any
// resulting change into the controller.
func (m Model) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.focus {
	case focusTitle:
		before := m.title.Value()
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		cmds = append(cmds, cmd)
		if m.title.Value() != before {
			m.ctrl.SetTitle(m.title.Value())
		}
	case focusBody:
		before := m.body.Value()
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		cmds = append(cmds, cmd)
		if m.body.Value() != before {
			// Edit notifies the controller with the rendered HTML.
			_ = m.engine.Edit(m.body.Value())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := headerStyle.Render(m.titleLine())
	status := statusStyle.Render(m.statusLine())
	return header + "\n" + m.title.View() + "\n" + m.body.View() + "\n" + status
}

func (m Model) titleLine() string {
	d := m.ctrl.Draft()
	if id, ok := d.ID(); ok {
		return lipgloss.NewStyle().Faint(true).Render("editing note ") + headerStyle.Render(fmt.Sprintf("#%d", id))
	}
	return "new note"
}

func (m Model) statusLine() string {
	parts := make([]string, 0, 3)
	if s := ui.FormatStatus(m.ctrl.Status()); s != "" {
		parts = append(parts, s)
	}
	if m.statusMsg != "" {
		style := toastOKStyle
		if m.statusErr {
			style = toastErrStyle
		}
		parts = append(parts, style.Render(m.statusMsg))
	}
	parts = append(parts, lipgloss.NewStyle().Faint(true).Render("ctrl+s save · esc close · ctrl+c quit"))
	return strings.Join(parts, "  ")
}
