package logview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the scrollable output panel content.
type Model struct {
	viewport viewport.Model
	ready    bool
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
		return
	}
	m.viewport.Width = w
	m.viewport.Height = h
}

// SetContent replaces the panel text and jumps back to the top.
func (m *Model) SetContent(text string) {
	if !m.ready {
		m.viewport = viewport.New(0, 0)
		m.ready = true
	}
	m.viewport.SetContent(text)
	m.viewport.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}
