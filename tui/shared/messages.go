package shared

import (
	"github.com/pr0methevs/lazy-dispatchrr/gh"
	"github.com/pr0methevs/lazy-dispatchrr/history"
)

// RepoDetailsMsg carries branches and workflows loaded for a repository.
type RepoDetailsMsg struct {
	Repo      string
	Branches  []string
	Workflows []string
	Err       error
}

// BranchWorkflowsMsg carries workflows loaded for a specific branch.
type BranchWorkflowsMsg struct {
	Repo      string
	Branch    string
	Workflows []string
	Err       error
}

// WorkflowInputsMsg carries the parsed dispatch inputs of a workflow.
type WorkflowInputsMsg struct {
	Workflow string
	Lines    []string
	Fields   []gh.InputField
	Err      error
}

// RepoAddedMsg reports the outcome of the add-repo action.
type RepoAddedMsg struct {
	Name      string
	Branches  []string
	Workflows []string
	Err       error
}

// DispatchDoneMsg reports the outcome of a workflow dispatch.
type DispatchDoneMsg struct {
	Repo     string
	Branch   string
	Workflow string
	Preview  string
	Inputs   []gh.NameValue
	Replay   bool // dispatched from a saved replay
	Err      error
}

// RunIDMsg carries the resolved id of a just-dispatched run.
type RunIDMsg struct {
	Repo     string
	Workflow string
	RunID    uint64
	Err      error
}

// RunLogsMsg carries the latest run's status and log tail.
type RunLogsMsg struct {
	RunID      uint64
	Status     string
	Conclusion string
	Logs       string
	Err        error
}

// HistoryMsg carries recent dispatch-history entries for a repository.
type HistoryMsg struct {
	Repo    string
	Entries []history.Entry
	Err     error
}

// BrowserOpenedMsg reports a failed browser launch; success is silent.
type BrowserOpenedMsg struct {
	Err error
}
