package replaypicker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pr0methevs/lazy-dispatchrr/store"
	"github.com/pr0methevs/lazy-dispatchrr/tui/shared"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionRun
	ActionDelete
)

type KeyResult struct {
	Action ActionKind
	Index  int // selected replay for run/delete
}

// Model is the saved-replays popup for one repository.
type Model struct {
	repo         string
	replays      []store.Replay
	cursor       int
	scrollOffset int
}

func New() Model {
	return Model{}
}

// SetReplays loads the replay list for a repository and resets the cursor.
func (m *Model) SetReplays(repo string, replays []store.Replay) {
	m.repo = repo
	m.replays = replays
	m.cursor = 0
	m.scrollOffset = 0
}

func (m Model) Replays() []store.Replay { return m.replays }

// SelectedReplay returns the replay under the cursor.
func (m Model) SelectedReplay() (store.Replay, bool) {
	if m.cursor < 0 || m.cursor >= len(m.replays) {
		return store.Replay{}, false
	}
	return m.replays[m.cursor], true
}

// RemoveAt drops a replay from the visible list after deletion,
// keeping the cursor on a valid entry.
func (m *Model) RemoveAt(index int) {
	if index < 0 || index >= len(m.replays) {
		return
	}
	m.replays = append(m.replays[:index], m.replays[index+1:]...)
	if m.cursor >= len(m.replays) {
		m.cursor = len(m.replays) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) HandleKey(msg tea.KeyMsg) KeyResult {
	switch msg.String() {
	case "esc", "q":
		return KeyResult{Action: ActionClose}
	case "j", "down":
		if len(m.replays) > 0 {
			m.cursor = (m.cursor + 1) % len(m.replays)
			m.ensureCursorVisible()
		}
	case "k", "up":
		if len(m.replays) > 0 {
			m.cursor = (m.cursor + len(m.replays) - 1) % len(m.replays)
			m.ensureCursorVisible()
		}
	case "enter":
		if m.cursor < len(m.replays) {
			return KeyResult{Action: ActionRun, Index: m.cursor}
		}
	case "d":
		if m.cursor < len(m.replays) {
			return KeyResult{Action: ActionDelete, Index: m.cursor}
		}
	}
	return KeyResult{Action: ActionNone}
}

func (m Model) listHeight() int {
	h := 10
	if len(m.replays) < h {
		h = len(m.replays)
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) ensureCursorVisible() {
	h := m.listHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+h {
		m.scrollOffset = m.cursor - h + 1
	}
}

func (m Model) ViewOverlay(w, h int) string {
	var b strings.Builder

	b.WriteString(shared.TitleStyle.Render("Replays"))
	b.WriteString(" ")
	b.WriteString(shared.MutedStyle.Render(m.repo))
	b.WriteString("\n\n")

	visibleH := m.listHeight()
	end := m.scrollOffset + visibleH
	if end > len(m.replays) {
		end = len(m.replays)
	}

	for i := m.scrollOffset; i < end; i++ {
		r := m.replays[i]
		line := r.Workflow + "  " + shared.MutedStyle.Render(r.Description)
		if i == m.cursor {
			line = shared.CursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(shared.HelpDescStyle.Render("j/k: navigate  enter: run  d: delete  esc: close"))

	overlay := shared.OverlayStyle.Render(b.String())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, overlay)
}
