// Package inputsform is the workflow-inputs popup: a list of typed
// fields with a browsing/editing sub-state per field.
package inputsform

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pr0methevs/lazy-dispatchrr/gh"
	"github.com/pr0methevs/lazy-dispatchrr/store"
	"github.com/pr0methevs/lazy-dispatchrr/tui/shared"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionDispatch   // user asked to dispatch with the current values
	ActionSaveReplay // user asked to save the current values as a replay
)

type KeyResult struct {
	Action ActionKind
}

type Model struct {
	fields   []gh.InputField
	selected int
	editing  bool
}

func New() Model {
	return Model{}
}

// SetFields loads a fresh field set and resets the editor state.
func (m *Model) SetFields(fields []gh.InputField) {
	m.fields = fields
	m.selected = 0
	m.editing = false
}

// Fields returns the fields with their current values.
func (m Model) Fields() []gh.InputField { return m.fields }

// Editing reports whether a field value is being typed into.
func (m Model) Editing() bool { return m.editing }

func (m *Model) HandleKey(msg tea.KeyMsg) KeyResult {
	// Choice cycling works in both browsing and editing state.
	switch msg.String() {
	case "tab":
		m.cycleChoice(1)
		return KeyResult{Action: ActionNone}
	case "shift+tab":
		m.cycleChoice(-1)
		return KeyResult{Action: ActionNone}
	}

	if m.editing {
		return m.handleEditingKey(msg)
	}
	return m.handleBrowsingKey(msg)
}

func (m *Model) handleBrowsingKey(msg tea.KeyMsg) KeyResult {
	switch msg.String() {
	case "esc":
		return KeyResult{Action: ActionClose}
	case "j", "down":
		if len(m.fields) > 0 {
			m.selected = (m.selected + 1) % len(m.fields)
		}
	case "k", "up":
		if len(m.fields) > 0 {
			m.selected = (m.selected + len(m.fields) - 1) % len(m.fields)
		}
	case "enter":
		if f := m.current(); f != nil && f.Type != gh.TypeChoice {
			m.editing = true
		}
	case "D":
		return KeyResult{Action: ActionDispatch}
	case "S":
		return KeyResult{Action: ActionSaveReplay}
	}
	return KeyResult{Action: ActionNone}
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) KeyResult {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.editing = false
	case tea.KeyBackspace:
		if f := m.current(); f != nil && f.Type != gh.TypeChoice && f.Type != gh.TypeBoolean {
			if f.Value != "" {
				runes := []rune(f.Value)
				f.Value = string(runes[:len(runes)-1])
			}
		}
	case tea.KeyRunes, tea.KeySpace:
		f := m.current()
		if f == nil {
			break
		}
		switch f.Type {
		case gh.TypeBoolean:
			// Any keystroke flips the literal; booleans are never typed.
			if f.Value == "true" {
				f.Value = "false"
			} else {
				f.Value = "true"
			}
		case gh.TypeChoice:
			// Choice values only change by cycling.
		default:
			if msg.Type == tea.KeySpace {
				f.Value += " "
			} else {
				f.Value += string(msg.Runes)
			}
		}
	}
	return KeyResult{Action: ActionNone}
}

// cycleChoice moves the selected choice field's value through its
// options circularly; direction is +1 or -1. Non-choice fields ignore it.
func (m *Model) cycleChoice(direction int) {
	f := m.current()
	if f == nil || f.Type != gh.TypeChoice || len(f.Options) == 0 {
		return
	}
	pos := -1
	for i, o := range f.Options {
		if o == f.Value {
			pos = i
			break
		}
	}
	switch {
	case pos < 0 && direction > 0:
		pos = 0
	case pos < 0:
		pos = len(f.Options) - 1
	default:
		pos = (pos + direction + len(f.Options)) % len(f.Options)
	}
	f.Value = f.Options[pos]
}

func (m *Model) current() *gh.InputField {
	if m.selected < 0 || m.selected >= len(m.fields) {
		return nil
	}
	return &m.fields[m.selected]
}

// Capture collects the non-empty field values as a replay, along with
// its generated description. Saving with no values set is an error.
func (m Model) Capture() ([]store.ReplayInput, string, error) {
	var inputs []store.ReplayInput
	var parts []string
	for _, f := range m.fields {
		if f.Value == "" {
			continue
		}
		inputs = append(inputs, store.ReplayInput{Name: f.Name, Value: f.Value})
		parts = append(parts, f.Name+"="+f.Value)
	}
	if len(inputs) == 0 {
		return nil, "", errors.New("no inputs to save: set at least one value first")
	}
	return inputs, strings.Join(parts, ", "), nil
}

func (m Model) ViewOverlay(w, h int, workflow string) string {
	var b strings.Builder

	b.WriteString(shared.TitleStyle.Render("Workflow Inputs"))
	b.WriteString(" ")
	b.WriteString(shared.MutedStyle.Render(workflow))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		label := f.Name
		if f.Required {
			label += "*"
		}
		value := f.Value
		if value == "" {
			value = shared.MutedStyle.Render("(empty)")
		}
		line := label + " = " + value
		if len(f.Options) > 0 {
			line += " " + shared.MutedStyle.Render("["+strings.Join(f.Options, "|")+"]")
		}
		if i == m.selected {
			marker := "> "
			if m.editing {
				marker = "* "
			}
			line = shared.CursorStyle.Render(marker + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.fields) == 0 {
		b.WriteString(shared.MutedStyle.Render("  no dispatch inputs"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editing {
		b.WriteString(shared.HelpDescStyle.Render("type to edit  enter/esc: done  tab: cycle choice"))
	} else {
		b.WriteString(shared.HelpDescStyle.Render("j/k: field  enter: edit  tab: cycle choice  D: dispatch  S: save replay  esc: close"))
	}

	overlay := shared.OverlayStyle.Render(b.String())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, overlay)
}
