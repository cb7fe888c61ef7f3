package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pr0methevs/lazy-dispatchrr/browser"
	"github.com/pr0methevs/lazy-dispatchrr/config"
	"github.com/pr0methevs/lazy-dispatchrr/gh"
	"github.com/pr0methevs/lazy-dispatchrr/history"
	"github.com/pr0methevs/lazy-dispatchrr/store"
	"github.com/pr0methevs/lazy-dispatchrr/tui/addrepo"
	"github.com/pr0methevs/lazy-dispatchrr/tui/filterlist"
	"github.com/pr0methevs/lazy-dispatchrr/tui/help"
	"github.com/pr0methevs/lazy-dispatchrr/tui/inputsform"
	"github.com/pr0methevs/lazy-dispatchrr/tui/logview"
	"github.com/pr0methevs/lazy-dispatchrr/tui/replaypicker"
	"github.com/pr0methevs/lazy-dispatchrr/tui/shared"
)

type Panel int

const (
	ReposPanel Panel = iota
	BranchesPanel
	WorkflowsPanel
	InputsPanel
	OutputPanel

	panelCount
)

type Modal int

const (
	ModalNone Modal = iota
	ModalAddRepo
	ModalInputs
	ModalConfirm
	ModalReplays
	ModalHelp
	ModalPostDispatch
)

type outputKind int

const (
	outputInfo outputKind = iota
	outputSuccess
	outputError
)

type App struct {
	cfg       config.Config
	state     store.State
	storePath string
	hist      *history.DB

	focus Panel
	modal Modal

	repoList     filterlist.List
	branchList   filterlist.List
	workflowList filterlist.List
	inputList    filterlist.List

	branches   []string
	workflows  []string
	inputLines []string

	addRepo   addrepo.Model
	inputs    inputsform.Model
	replays   replaypicker.Model
	helpView  help.Model
	output    logview.Model

	// pending confirm-dispatch
	confirmPreview string
	confirmRepo    string
	confirmBranch  string
	confirmFile    string
	confirmInputs  []gh.NameValue

	lastRepo     string
	lastWorkflow string
	lastRunID    uint64

	searchActive bool

	spinner    spinner.Model
	loading    bool
	loadingMsg string

	width  int
	height int
}

func NewApp(cfg config.Config, st store.State, storePath string, hist *history.DB) App {
	shared.InitStyles(cfg.ResolvedTheme())

	sp := spinner.New()
	sp.Spinner = resolveSpinner(cfg.ResolvedSpinnerType())
	sp.Style = shared.SpinnerStyle

	a := App{
		cfg:       cfg,
		state:     st,
		storePath: storePath,
		hist:      hist,
		repoList:  filterlist.New(st.RepoNames()),
		addRepo:   addrepo.New(),
		inputs:    inputsform.New(),
		replays:   replaypicker.New(),
		helpView:  help.New(),
		output:    logview.New(),
		spinner:   sp,
	}

	if len(st.Repos) == 0 {
		a.setOutput("Welcome! Press 'a' to add a repository.", outputInfo)
	} else {
		a.setOutput(fmt.Sprintf("Loaded %d repositories. Press enter on one to browse it.", len(st.Repos)), outputInfo)
	}
	return a
}

func resolveSpinner(name string) spinner.Spinner {
	switch name {
	case "dot":
		return spinner.Dot
	case "line":
		return spinner.Line
	case "points":
		return spinner.Points
	default:
		return spinner.MiniDot
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.helpView.SetSize(msg.Width, msg.Height)
		a.layoutSizes()
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case shared.RepoAddedMsg:
		a.loading = false
		if msg.Err != nil {
			a.setOutput("Error adding repo: "+msg.Err.Error(), outputError)
			return a, nil
		}
		a.state.AddRepo(msg.Name)
		if err := store.Save(a.storePath, a.state); err != nil {
			a.setOutput("Error saving state: "+err.Error(), outputError)
			return a, nil
		}
		a.repoList.SetItems(a.state.RepoNames())
		a.setBranches(msg.Branches)
		a.setWorkflows(msg.Workflows)
		a.setOutput(fmt.Sprintf("Added %s (%d branches, %d workflows)", msg.Name, len(msg.Branches), len(msg.Workflows)), outputSuccess)
		return a, nil

	case shared.RepoDetailsMsg:
		a.loading = false
		if msg.Err != nil {
			a.setOutput("Error loading repo: "+msg.Err.Error(), outputError)
			return a, nil
		}
		a.setBranches(msg.Branches)
		a.setWorkflows(msg.Workflows)
		a.focus = BranchesPanel
		a.setOutput(fmt.Sprintf("%s: %d branches, %d workflows on the default branch", msg.Repo, len(msg.Branches), len(msg.Workflows)), outputInfo)
		return a, nil

	case shared.BranchWorkflowsMsg:
		a.loading = false
		if msg.Err != nil {
			a.setOutput("Error loading workflows: "+msg.Err.Error(), outputError)
			return a, nil
		}
		a.setWorkflows(msg.Workflows)
		a.focus = WorkflowsPanel
		a.setOutput(fmt.Sprintf("%s@%s: %d workflows", msg.Repo, msg.Branch, len(msg.Workflows)), outputInfo)
		return a, nil

	case shared.WorkflowInputsMsg:
		a.loading = false
		if msg.Err != nil {
			a.setOutput("Error loading inputs: "+msg.Err.Error(), outputError)
			return a, nil
		}
		a.inputLines = msg.Lines
		a.inputList.SetItems(msg.Lines)
		a.inputs.SetFields(msg.Fields)
		a.focus = InputsPanel
		if len(msg.Fields) > 0 {
			a.modal = ModalInputs
			return a, nil
		}
		a.setOutput(msg.Workflow+" declares no dispatch inputs. Press 'd' to dispatch it as-is.", outputInfo)
		return a, nil

	case shared.DispatchDoneMsg:
		a.loading = false
		a.modal = ModalPostDispatch
		// The prompt's 'l'/'v' must target this dispatch even when it
		// failed, not whatever ran before.
		a.lastRepo = msg.Repo
		a.lastWorkflow = msg.Workflow
		a.lastRunID = 0
		if msg.Err != nil {
			a.setOutput("Error dispatching workflow: "+msg.Err.Error(), outputError)
			return a, nil
		}
		a.setOutput(dispatchReport(msg), outputSuccess)
		a.recordDispatch(msg)
		return a, findRunIDCmd(msg.Repo, msg.Workflow)

	case shared.RunIDMsg:
		if msg.Err != nil {
			// Lookup runs in the background; 'l' and 'v' retry it on demand.
			return a, nil
		}
		a.lastRunID = msg.RunID
		if a.hist != nil {
			a.hist.SetRunID(msg.Repo, msg.Workflow, msg.RunID)
		}
		return a, nil

	case shared.RunLogsMsg:
		a.loading = false
		if msg.Err != nil {
			a.setOutput("Error fetching logs: "+msg.Err.Error(), outputError)
			return a, nil
		}
		if msg.RunID != 0 {
			a.lastRunID = msg.RunID
		}
		header := fmt.Sprintf("Run %d — status: %s", msg.RunID, msg.Status)
		if msg.Conclusion != "" {
			header += ", conclusion: " + msg.Conclusion
		}
		a.setOutput(header+"\n\n"+msg.Logs, outputInfo)
		return a, nil

	case shared.HistoryMsg:
		a.loading = false
		if msg.Err != nil {
			a.setOutput("Error loading history: "+msg.Err.Error(), outputError)
			return a, nil
		}
		a.setOutput(historyReport(msg.Repo, msg.Entries), outputInfo)
		return a, nil

	case shared.BrowserOpenedMsg:
		if msg.Err != nil {
			a.setOutput("Error opening browser: "+msg.Err.Error(), outputError)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help toggles from anywhere except text-entry contexts.
	if key.Matches(msg, shared.Keys.Help) && !a.textEntryActive() {
		if a.modal == ModalHelp {
			a.modal = ModalNone
		} else {
			a.modal = ModalHelp
		}
		return a, nil
	}

	switch a.modal {
	case ModalHelp:
		a.modal = ModalNone
		return a, nil
	case ModalAddRepo:
		return a.handleAddRepoKey(msg)
	case ModalConfirm:
		return a.handleConfirmKey(msg)
	case ModalPostDispatch:
		return a.handlePostDispatchKey(msg)
	case ModalInputs:
		return a.handleInputsKey(msg)
	case ModalReplays:
		return a.handleReplaysKey(msg)
	}

	if a.searchActive {
		return a.handleSearchKey(msg)
	}

	return a.handleBaseKey(msg)
}

// textEntryActive reports whether keystrokes are being consumed as text,
// in which case '?' must type rather than toggle help.
func (a App) textEntryActive() bool {
	if a.searchActive {
		return true
	}
	switch a.modal {
	case ModalAddRepo:
		return true
	case ModalInputs:
		return a.inputs.Editing()
	}
	return false
}

func (a App) handleBaseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, shared.Keys.Quit), key.Matches(msg, shared.Keys.Escape):
		return a, tea.Quit

	case key.Matches(msg, shared.Keys.NextPanel):
		a.focus = (a.focus + 1) % panelCount
		return a, nil

	case key.Matches(msg, shared.Keys.PrevPanel):
		a.focus = (a.focus + panelCount - 1) % panelCount
		return a, nil

	case key.Matches(msg, shared.Keys.Down):
		if a.focus == OutputPanel {
			var cmd tea.Cmd
			a.output, cmd = a.output.Update(msg)
			return a, cmd
		}
		if l := a.focusedList(); l != nil {
			l.Next()
		}
		return a, nil

	case key.Matches(msg, shared.Keys.Up):
		if a.focus == OutputPanel {
			var cmd tea.Cmd
			a.output, cmd = a.output.Update(msg)
			return a, cmd
		}
		if l := a.focusedList(); l != nil {
			l.Prev()
		}
		return a, nil

	case key.Matches(msg, shared.Keys.Search):
		if a.focus != OutputPanel {
			a.searchActive = true
		}
		return a, nil

	case key.Matches(msg, shared.Keys.AddRepo):
		a.addRepo.Reset()
		a.modal = ModalAddRepo
		return a, nil

	case key.Matches(msg, shared.Keys.Activate):
		return a.activateFocused()

	case key.Matches(msg, shared.Keys.EditInputs):
		if len(a.inputs.Fields()) == 0 {
			a.setOutput("No workflow inputs loaded. Select a workflow first.", outputInfo)
			return a, nil
		}
		a.modal = ModalInputs
		return a, nil

	case key.Matches(msg, shared.Keys.Replays):
		repo, ok := a.repoList.SelectedLabel()
		if !ok {
			a.setOutput("No repository selected.", outputInfo)
			return a, nil
		}
		presets := a.state.ReplaysFor(repo)
		if len(presets) == 0 {
			a.setOutput("No saved replays for "+repo+". Save one from the inputs editor with 'S'.", outputInfo)
			return a, nil
		}
		a.replays.SetReplays(repo, presets)
		a.modal = ModalReplays
		return a, nil

	case key.Matches(msg, shared.Keys.Browse):
		repo, ok := a.repoList.SelectedLabel()
		if !ok {
			a.setOutput("No repository selected.", outputInfo)
			return a, nil
		}
		return a, openURLCmd(browser.RepoURL(repo))

	case key.Matches(msg, shared.Keys.History):
		repo, ok := a.repoList.SelectedLabel()
		if !ok {
			a.setOutput("No repository selected.", outputInfo)
			return a, nil
		}
		if a.hist == nil {
			a.setOutput("Dispatch history is unavailable.", outputInfo)
			return a, nil
		}
		return a.startLoading("Loading history...", historyCmd(a.hist, repo))

	case msg.String() == "d":
		return a.openConfirmDispatch()
	}

	return a, nil
}

// activateFocused drills into the focused panel's selection. Focus only
// advances when the resulting fetch succeeds.
func (a App) activateFocused() (tea.Model, tea.Cmd) {
	switch a.focus {
	case ReposPanel:
		repo, ok := a.repoList.SelectedLabel()
		if !ok {
			a.setOutput("No repository selected.", outputInfo)
			return a, nil
		}
		return a.startLoading("Loading "+repo+"...", fetchRepoDetailsCmd(repo))

	case BranchesPanel:
		repo, ok := a.repoList.SelectedLabel()
		if !ok {
			a.setOutput("No repository selected.", outputInfo)
			return a, nil
		}
		branch, ok := a.branchList.SelectedLabel()
		if !ok {
			a.setOutput("No branch selected.", outputInfo)
			return a, nil
		}
		return a.startLoading("Loading workflows...", fetchBranchWorkflowsCmd(repo, branch))

	case WorkflowsPanel:
		repo, ok := a.repoList.SelectedLabel()
		if !ok {
			a.setOutput("No repository selected.", outputInfo)
			return a, nil
		}
		workflow, ok := a.workflowList.SelectedLabel()
		if !ok {
			a.setOutput("No workflow selected.", outputInfo)
			return a, nil
		}
		branch, _ := a.branchList.SelectedLabel()
		return a.startLoading("Loading inputs...", fetchWorkflowInputsCmd(repo, workflow, branch))

	case InputsPanel:
		return a.openConfirmDispatch()
	}

	return a, nil
}

func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := a.focusedList()
	if l == nil {
		a.searchActive = false
		return a, nil
	}

	switch msg.Type {
	case tea.KeyEscape:
		l.ClearQuery()
		a.searchActive = false
	case tea.KeyEnter:
		a.searchActive = false
	case tea.KeyDown, tea.KeyCtrlJ:
		l.Next()
	case tea.KeyUp, tea.KeyCtrlK:
		l.Prev()
	case tea.KeyBackspace:
		q := l.Query()
		if q != "" {
			runes := []rune(q)
			l.SetQuery(string(runes[:len(runes)-1]))
		}
	case tea.KeySpace:
		l.SetQuery(l.Query() + " ")
	case tea.KeyRunes:
		l.SetQuery(l.Query() + string(msg.Runes))
	}
	return a, nil
}

func (a App) handleAddRepoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result := a.addRepo.HandleKey(msg)
	switch result.Action {
	case addrepo.ActionClose:
		a.modal = ModalNone
		return a, nil
	case addrepo.ActionSubmit:
		a.modal = ModalNone
		return a.startLoading("Adding "+result.Owner+"/"+result.Name+"...", addRepoCmd(result.Owner, result.Name))
	case addrepo.ActionInvalid:
		a.setOutput("Both owner and repository name are required.", outputError)
		return a, nil
	}

	var cmd tea.Cmd
	a.addRepo, cmd = a.addRepo.Update(msg)
	return a, cmd
}

func (a App) handleInputsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result := a.inputs.HandleKey(msg)
	switch result.Action {
	case inputsform.ActionClose:
		a.modal = ModalNone
		a.refreshInputLines()
		return a, nil

	case inputsform.ActionDispatch:
		a.refreshInputLines()
		return a.openConfirmDispatch()

	case inputsform.ActionSaveReplay:
		return a.saveReplay()
	}
	return a, nil
}

func (a App) saveReplay() (tea.Model, tea.Cmd) {
	repo, ok := a.repoList.SelectedLabel()
	if !ok {
		a.setOutput("No repository selected.", outputError)
		return a, nil
	}
	workflow, ok := a.workflowList.SelectedLabel()
	if !ok {
		a.setOutput("No workflow selected.", outputError)
		return a, nil
	}
	inputs, description, err := a.inputs.Capture()
	if err != nil {
		a.setOutput(err.Error(), outputError)
		return a, nil
	}
	a.state.AddReplay(repo, store.Replay{
		Workflow:    workflow,
		Description: description,
		Inputs:      inputs,
	})
	if err := store.Save(a.storePath, a.state); err != nil {
		a.setOutput("Error saving replay: "+err.Error(), outputError)
		return a, nil
	}
	a.setOutput("Saved replay for "+workflow+": "+description, outputSuccess)
	return a, nil
}

// openConfirmDispatch builds the command preview and shows the
// confirmation modal. The very same argument list is executed on "y",
// so what the user confirms is what runs.
func (a App) openConfirmDispatch() (tea.Model, tea.Cmd) {
	repo, ok := a.repoList.SelectedLabel()
	if !ok {
		a.setOutput("Cannot dispatch: no repository selected.", outputError)
		return a, nil
	}
	branch, ok := a.branchList.SelectedLabel()
	if !ok {
		a.setOutput("Cannot dispatch: no branch selected.", outputError)
		return a, nil
	}
	workflow, ok := a.workflowList.SelectedLabel()
	if !ok {
		a.setOutput("Cannot dispatch: no workflow selected.", outputError)
		return a, nil
	}

	inputs := gh.FieldValues(a.inputs.Fields())
	a.confirmRepo = repo
	a.confirmBranch = branch
	a.confirmFile = workflow
	a.confirmInputs = inputs
	a.confirmPreview = gh.Preview(gh.DispatchArgs(repo, branch, workflow, inputs))
	a.modal = ModalConfirm
	return a, nil
}

func (a App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "y" || msg.String() == "Y" {
		a.modal = ModalNone
		return a.startLoading("Dispatching...", dispatchCmd(a.confirmRepo, a.confirmBranch, a.confirmFile, a.confirmInputs, false))
	}
	// Any other key cancels without side effects.
	a.modal = ModalNone
	a.setOutput("Dispatch cancelled.", outputInfo)
	return a, nil
}

func (a App) handlePostDispatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		// Prompt stays active so the lookup can be retried.
		return a.startLoading("Fetching logs...", fetchLogsCmd(a.lastRepo, a.lastWorkflow, a.lastRunID, a.cfg.ResolvedLogLines()))
	case "v":
		return a, openRunCmd(a.lastRepo, a.lastWorkflow, a.lastRunID)
	}
	a.modal = ModalNone
	return a, nil
}

func (a App) handleReplaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result := a.replays.HandleKey(msg)
	switch result.Action {
	case replaypicker.ActionClose:
		a.modal = ModalNone
		return a, nil

	case replaypicker.ActionRun:
		replay, ok := a.replays.SelectedReplay()
		if !ok {
			return a, nil
		}
		return a.runReplay(replay)

	case replaypicker.ActionDelete:
		repo, _ := a.repoList.SelectedLabel()
		if _, ok := a.state.DeleteReplay(repo, result.Index); !ok {
			return a, nil
		}
		if err := store.Save(a.storePath, a.state); err != nil {
			a.setOutput("Error saving state: "+err.Error(), outputError)
		}
		a.replays.RemoveAt(result.Index)
		if len(a.replays.Replays()) == 0 {
			a.modal = ModalNone
			a.setOutput("Deleted the last replay for "+repo+".", outputInfo)
		}
		return a, nil
	}
	return a, nil
}

// runReplay re-applies a saved input set against the currently selected
// branch. If the loaded workflow list no longer contains the replay's
// workflow, the dispatch is refused rather than aimed at a stale target.
func (a App) runReplay(replay store.Replay) (tea.Model, tea.Cmd) {
	repo, ok := a.repoList.SelectedLabel()
	if !ok {
		a.setOutput("Cannot run replay: no repository selected.", outputError)
		return a, nil
	}
	branch, ok := a.branchList.SelectedLabel()
	if !ok {
		a.setOutput("Cannot run replay: no branch selected. Load the repo and pick a branch first.", outputError)
		return a, nil
	}
	if len(a.workflows) > 0 && !contains(a.workflows, replay.Workflow) {
		a.modal = ModalNone
		a.setOutput(fmt.Sprintf("Cannot run replay: workflow %s no longer exists on %s.", replay.Workflow, branch), outputError)
		return a, nil
	}

	inputs := make([]gh.NameValue, len(replay.Inputs))
	for i, in := range replay.Inputs {
		inputs[i] = gh.NameValue{Name: in.Name, Value: in.Value}
	}
	a.modal = ModalNone
	return a.startLoading("Dispatching replay...", dispatchCmd(repo, branch, replay.Workflow, inputs, true))
}

func (a *App) focusedList() *filterlist.List {
	switch a.focus {
	case ReposPanel:
		return &a.repoList
	case BranchesPanel:
		return &a.branchList
	case WorkflowsPanel:
		return &a.workflowList
	case InputsPanel:
		return &a.inputList
	}
	return nil
}

func (a *App) setBranches(branches []string) {
	a.branches = branches
	a.branchList.ClearQuery()
	a.branchList.SetItems(branches)
}

// setWorkflows replaces the workflow list wholesale; workflows are
// branch-scoped, so stale input fields are dropped with them.
func (a *App) setWorkflows(workflows []string) {
	a.workflows = workflows
	a.workflowList.ClearQuery()
	a.workflowList.SetItems(workflows)
	a.inputLines = nil
	a.inputList.ClearQuery()
	a.inputList.SetItems(nil)
	a.inputs.SetFields(nil)
}

// refreshInputLines re-renders the inputs panel after the editor
// changed field values.
func (a *App) refreshInputLines() {
	fields := a.inputs.Fields()
	if len(fields) == 0 {
		return
	}
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = f.Name + " = " + f.Value
	}
	a.inputLines = lines
	a.inputList.SetItems(lines)
}

func (a *App) setOutput(text string, kind outputKind) {
	var styled string
	switch kind {
	case outputSuccess:
		styled = shared.SuccessStyle.Render(text)
	case outputError:
		styled = shared.ErrorStyle.Render(text)
	default:
		styled = text
	}
	a.output.SetContent(styled)
}

func (a App) startLoading(msg string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	a.loading = true
	a.loadingMsg = msg
	return a, tea.Batch(a.spinner.Tick, cmd)
}

func (a *App) recordDispatch(msg shared.DispatchDoneMsg) {
	if a.hist == nil {
		return
	}
	inputs := make(map[string]string, len(msg.Inputs))
	for _, in := range msg.Inputs {
		inputs[in.Name] = in.Value
	}
	a.hist.Record(history.Entry{
		Repo:       msg.Repo,
		Workflow:   msg.Workflow,
		Ref:        msg.Branch,
		Inputs:     inputs,
		Dispatched: time.Now(),
	})
}

func dispatchReport(msg shared.DispatchDoneMsg) string {
	var b strings.Builder
	if msg.Replay {
		b.WriteString("Replay dispatched!\n\n")
	} else {
		b.WriteString("Workflow dispatched!\n\n")
	}
	b.WriteString("  " + msg.Preview + "\n")
	if len(msg.Inputs) > 0 {
		b.WriteString("\nInputs:\n")
		for _, in := range msg.Inputs {
			if in.Value != "" {
				b.WriteString("  " + in.Name + " = " + in.Value + "\n")
			}
		}
	}
	b.WriteString("\nPress 'l' to view logs, 'v' to open in browser, any other key to dismiss.")
	return b.String()
}

func historyReport(repo string, entries []history.Entry) string {
	if len(entries) == 0 {
		return "No dispatch history for " + repo + "."
	}
	var b strings.Builder
	b.WriteString("Recent dispatches for " + repo + ":\n\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s  %s @ %s", e.Dispatched.Format("2006-01-02 15:04"), e.Workflow, e.Ref))
		if e.RunID != 0 {
			b.WriteString(fmt.Sprintf("  (run %d)", e.RunID))
		}
		b.WriteString("\n")
		for name, value := range e.Inputs {
			b.WriteString("      " + name + " = " + value + "\n")
		}
	}
	return b.String()
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

// --- Commands ---

func fetchRepoDetailsCmd(full string) tea.Cmd {
	return func() tea.Msg {
		owner, name, err := gh.SplitName(full)
		if err != nil {
			return shared.RepoDetailsMsg{Repo: full, Err: err}
		}
		branches, workflows, err := gh.FetchRepoDetails(owner, name)
		return shared.RepoDetailsMsg{Repo: full, Branches: branches, Workflows: workflows, Err: err}
	}
}

func fetchBranchWorkflowsCmd(full, branch string) tea.Cmd {
	return func() tea.Msg {
		owner, name, err := gh.SplitName(full)
		if err != nil {
			return shared.BranchWorkflowsMsg{Repo: full, Branch: branch, Err: err}
		}
		workflows, err := gh.FetchBranchWorkflows(owner, name, branch)
		return shared.BranchWorkflowsMsg{Repo: full, Branch: branch, Workflows: workflows, Err: err}
	}
}

func fetchWorkflowInputsCmd(repo, workflow, branch string) tea.Cmd {
	return func() tea.Msg {
		lines, fields, err := gh.FetchWorkflowInputs(repo, workflow, branch)
		return shared.WorkflowInputsMsg{Workflow: workflow, Lines: lines, Fields: fields, Err: err}
	}
}

func addRepoCmd(owner, name string) tea.Cmd {
	return func() tea.Msg {
		branches, workflows, err := gh.FetchRepoDetails(owner, name)
		return shared.RepoAddedMsg{Name: owner + "/" + name, Branches: branches, Workflows: workflows, Err: err}
	}
}

func dispatchCmd(repo, branch, workflow string, inputs []gh.NameValue, replay bool) tea.Cmd {
	return func() tea.Msg {
		preview, err := gh.Dispatch(repo, branch, workflow, inputs)
		return shared.DispatchDoneMsg{
			Repo:     repo,
			Branch:   branch,
			Workflow: workflow,
			Preview:  preview,
			Inputs:   inputs,
			Replay:   replay,
			Err:      err,
		}
	}
}

func findRunIDCmd(repo, workflow string) tea.Cmd {
	return func() tea.Msg {
		runID, err := gh.FindLatestRunID(repo, workflow)
		return shared.RunIDMsg{Repo: repo, Workflow: workflow, RunID: runID, Err: err}
	}
}

func fetchLogsCmd(repo, workflow string, runID uint64, maxLines int) tea.Cmd {
	return func() tea.Msg {
		if runID == 0 {
			var err error
			runID, err = gh.FindLatestRunID(repo, workflow)
			if err != nil {
				return shared.RunLogsMsg{Err: err}
			}
		}
		status, conclusion, logs, err := gh.GetRunLogs(repo, runID, maxLines)
		return shared.RunLogsMsg{RunID: runID, Status: status, Conclusion: conclusion, Logs: logs, Err: err}
	}
}

func openRunCmd(repo, workflow string, runID uint64) tea.Cmd {
	return func() tea.Msg {
		if runID == 0 {
			var err error
			runID, err = gh.FindLatestRunID(repo, workflow)
			if err != nil {
				return shared.BrowserOpenedMsg{Err: err}
			}
		}
		return shared.BrowserOpenedMsg{Err: browser.Open(browser.RunURL(repo, runID))}
	}
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return shared.BrowserOpenedMsg{Err: browser.Open(url)}
	}
}

func historyCmd(db *history.DB, repo string) tea.Cmd {
	return func() tea.Msg {
		entries, err := db.Recent(repo, 20)
		return shared.HistoryMsg{Repo: repo, Entries: entries, Err: err}
	}
}
