package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pr0methevs/lazy-dispatchrr/tui/filterlist"
	"github.com/pr0methevs/lazy-dispatchrr/tui/shared"
)

var panelTitles = map[Panel]string{
	ReposPanel:     "Repositories",
	BranchesPanel:  "Branches",
	WorkflowsPanel: "Workflows",
	InputsPanel:    "Inputs",
	OutputPanel:    "Output",
}

func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	switch a.modal {
	case ModalHelp:
		return a.helpView.View()
	case ModalAddRepo:
		return a.addRepo.ViewOverlay(a.width, a.height)
	case ModalInputs:
		workflow, _ := a.workflowList.SelectedLabel()
		return a.inputs.ViewOverlay(a.width, a.height, workflow)
	case ModalReplays:
		return a.replays.ViewOverlay(a.width, a.height)
	case ModalConfirm:
		return a.renderConfirm()
	}

	return a.renderBase()
}

func (a App) renderBase() string {
	leftW, rightW, panelH, outputH := a.panelDims()

	left := lipgloss.JoinVertical(lipgloss.Left,
		a.renderListPanel(ReposPanel, &a.repoList, leftW, panelH),
		a.renderListPanel(BranchesPanel, &a.branchList, leftW, panelH),
		a.renderListPanel(WorkflowsPanel, &a.workflowList, leftW, panelH),
		a.renderListPanel(InputsPanel, &a.inputList, leftW, panelH),
	)

	right := a.renderOutputPanel(rightW, outputH)

	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return view + a.renderStatusBar()
}

// panelDims returns inner widths/heights for the four stacked left
// panels and the output panel; borders add 2 to each dimension.
func (a App) panelDims() (leftW, rightW, panelH, outputH int) {
	contentH := a.height - 1 // status bar
	if contentH < 8 {
		contentH = 8
	}
	leftW = a.width * 2 / 5
	if leftW < 24 {
		leftW = 24
	}
	rightW = a.width - leftW - 4 // both panels' vertical borders
	if rightW < 20 {
		rightW = 20
	}
	panelH = contentH/4 - 2
	if panelH < 3 {
		panelH = 3
	}
	outputH = (panelH+2)*4 - 2
	return leftW, rightW, panelH, outputH
}

func (a App) renderListPanel(panel Panel, l *filterlist.List, w, h int) string {
	var b strings.Builder

	title := panelTitles[panel]
	if q := l.Query(); q != "" || (a.searchActive && a.focus == panel) {
		title += "  /" + q
	}
	b.WriteString(shared.TitleStyle.Render(title))
	b.WriteString("\n")

	rows := h - 1
	cursor := l.Cursor()
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	for pos := start; pos < l.Len() && pos < start+rows; pos++ {
		label, _ := l.LabelAt(pos)
		line := truncate(label, w)
		if pos == cursor && a.focus == panel {
			line = shared.CursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if l.Len() == 0 {
		b.WriteString(shared.MutedStyle.Render("(empty)"))
	}

	return a.panelStyle(panel).Width(w).Height(h).Render(strings.TrimRight(b.String(), "\n"))
}

func (a App) renderOutputPanel(w, h int) string {
	var b strings.Builder
	title := panelTitles[OutputPanel]
	if a.loading {
		title += "  " + a.spinner.View() + " " + a.loadingMsg
	}
	b.WriteString(shared.TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(a.output.View())

	return a.panelStyle(OutputPanel).Width(w).Height(h).Render(b.String())
}

func (a App) panelStyle(panel Panel) lipgloss.Style {
	if a.focus == panel {
		return shared.PanelFocusStyle
	}
	return shared.PanelBorderStyle
}

func (a App) renderConfirm() string {
	var b strings.Builder
	b.WriteString(shared.TitleStyle.Render("Dispatch workflow?"))
	b.WriteString("\n\n")
	b.WriteString("  " + a.confirmPreview + "\n\n")
	b.WriteString(shared.HelpKeyStyle.Render("y") + shared.HelpDescStyle.Render(" confirm") + "   ")
	b.WriteString(shared.HelpKeyStyle.Render("any other key") + shared.HelpDescStyle.Render(" cancel"))

	box := shared.OverlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

func (a App) renderStatusBar() string {
	parts := []string{"lazy-dispatchrr"}
	if repo, ok := a.repoList.SelectedLabel(); ok {
		parts = append(parts, repo)
	}
	if branch, ok := a.branchList.SelectedLabel(); ok {
		parts = append(parts, branch)
	}
	status := strings.Join(parts, " │ ")
	status += " │ ? for help"

	return "\n" + shared.StatusBarStyle.Width(a.width).Render(status)
}

func (a *App) layoutSizes() {
	_, rightW, _, outputH := a.panelDims()
	a.output.SetSize(rightW, outputH-1) // title row
}

func truncate(s string, w int) string {
	if w <= 0 || len(s) <= w {
		return s
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w-1]) + "…"
}
