package addrepo

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pr0methevs/lazy-dispatchrr/tui/shared"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionSubmit
	ActionInvalid // submission attempted with an empty field
)

type KeyResult struct {
	Action ActionKind
	Owner  string
	Name   string
}

// Model is the add-repository popup: two text fields, tab to switch.
type Model struct {
	ownerInput textinput.Model
	nameInput  textinput.Model
	ownerFocus bool
}

func New() Model {
	oi := textinput.New()
	oi.Placeholder = "owner"
	oi.CharLimit = 100

	ni := textinput.New()
	ni.Placeholder = "repo"
	ni.CharLimit = 100

	return Model{ownerInput: oi, nameInput: ni, ownerFocus: true}
}

// Reset clears both fields and focuses the owner input.
func (m *Model) Reset() {
	m.ownerInput.SetValue("")
	m.nameInput.SetValue("")
	m.ownerFocus = true
	m.ownerInput.Focus()
	m.nameInput.Blur()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.ownerFocus {
		m.ownerInput, cmd = m.ownerInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) HandleKey(msg tea.KeyMsg) KeyResult {
	switch msg.String() {
	case "esc":
		return KeyResult{Action: ActionClose}
	case "tab", "shift+tab":
		m.ownerFocus = !m.ownerFocus
		if m.ownerFocus {
			m.ownerInput.Focus()
			m.nameInput.Blur()
		} else {
			m.nameInput.Focus()
			m.ownerInput.Blur()
		}
		return KeyResult{Action: ActionNone}
	case "enter":
		owner := strings.TrimSpace(m.ownerInput.Value())
		name := strings.TrimSpace(m.nameInput.Value())
		if owner == "" || name == "" {
			return KeyResult{Action: ActionInvalid}
		}
		return KeyResult{Action: ActionSubmit, Owner: owner, Name: name}
	}
	return KeyResult{Action: ActionNone}
}

func (m Model) ViewOverlay(w, h int) string {
	var b strings.Builder

	b.WriteString(shared.TitleStyle.Render("Add Repository"))
	b.WriteString("\n\n")
	b.WriteString("Owner: " + m.ownerInput.View())
	b.WriteString("\n")
	b.WriteString("Repo:  " + m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(shared.HelpDescStyle.Render("tab: switch field  enter: add  esc: cancel"))

	overlay := shared.OverlayStyle.Render(b.String())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, overlay)
}
