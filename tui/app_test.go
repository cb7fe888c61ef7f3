package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pr0methevs/lazy-dispatchrr/config"
	"github.com/pr0methevs/lazy-dispatchrr/gh"
	"github.com/pr0methevs/lazy-dispatchrr/store"
	"github.com/pr0methevs/lazy-dispatchrr/tui/shared"
)

func newTestApp(t *testing.T, st store.State) App {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "config.yml")
	return NewApp(config.Config{}, st, storePath, nil)
}

func sendKey(a App, k tea.KeyMsg) App {
	model, _ := a.Update(k)
	return model.(App)
}

func send(a App, msg tea.Msg) App {
	model, _ := a.Update(msg)
	return model.(App)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFocusRingCyclesBothWays(t *testing.T) {
	a := newTestApp(t, store.State{})

	order := []Panel{BranchesPanel, WorkflowsPanel, InputsPanel, OutputPanel, ReposPanel}
	for _, want := range order {
		a = sendKey(a, tea.KeyMsg{Type: tea.KeyTab})
		if a.focus != want {
			t.Fatalf("focus = %v, want %v", a.focus, want)
		}
	}

	a = sendKey(a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.focus != OutputPanel {
		t.Fatalf("focus = %v, want OutputPanel after shift+tab", a.focus)
	}
}

func TestHelpTogglesFromAnyModal(t *testing.T) {
	a := newTestApp(t, store.State{})

	a = sendKey(a, runes("?"))
	if a.modal != ModalHelp {
		t.Fatalf("modal = %v, want help", a.modal)
	}
	a = sendKey(a, runes("?"))
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want none after toggle", a.modal)
	}

	// Help from inside another modal returns to none, not back to it.
	a.modal = ModalReplays
	a = sendKey(a, runes("?"))
	if a.modal != ModalHelp {
		t.Fatalf("modal = %v, want help", a.modal)
	}
	a = sendKey(a, runes("?"))
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want none", a.modal)
	}
}

func TestAnyKeyClosesHelp(t *testing.T) {
	a := newTestApp(t, store.State{})
	a = sendKey(a, runes("?"))
	a = sendKey(a, runes("x"))
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want none", a.modal)
	}
}

func TestAddRepoModalOpensAndCloses(t *testing.T) {
	a := newTestApp(t, store.State{})

	a = sendKey(a, runes("a"))
	if a.modal != ModalAddRepo {
		t.Fatalf("modal = %v, want add-repo", a.modal)
	}
	a = sendKey(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want none after esc", a.modal)
	}
}

func TestReplaysRefusedWithoutPresets(t *testing.T) {
	st := store.State{}
	st.AddRepo("acme/api")
	a := newTestApp(t, st)

	a = sendKey(a, runes("r"))
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want none when repo has no replays", a.modal)
	}
}

func TestReplaysModalOpensWithPresets(t *testing.T) {
	st := store.State{}
	st.AddReplay("acme/api", store.Replay{Workflow: "ci.yml", Description: "x=1"})
	a := newTestApp(t, st)

	a = sendKey(a, runes("r"))
	if a.modal != ModalReplays {
		t.Fatalf("modal = %v, want replays", a.modal)
	}
}

func TestDispatchRefusedWithoutFullSelection(t *testing.T) {
	st := store.State{}
	st.AddRepo("acme/api")
	a := newTestApp(t, st)

	a = sendKey(a, runes("d"))
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want confirm refused without branch/workflow", a.modal)
	}
}

func TestConfirmDispatchPreviewAndCancel(t *testing.T) {
	st := store.State{}
	st.AddRepo("acme/api")
	a := newTestApp(t, st)
	a.setBranches([]string{"release"})
	a.setWorkflows([]string{"deploy.yml"})
	a.inputs.SetFields([]gh.InputField{{Name: "tag", Type: gh.TypeString, Value: "v1"}})

	a = sendKey(a, runes("d"))
	if a.modal != ModalConfirm {
		t.Fatalf("modal = %v, want confirm", a.modal)
	}
	want := "gh workflow run deploy.yml --repo acme/api --ref release -f tag=v1"
	if a.confirmPreview != want {
		t.Fatalf("preview = %q, want %q", a.confirmPreview, want)
	}

	// Anything but y cancels without side effects.
	a = sendKey(a, runes("n"))
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want cancelled to none", a.modal)
	}
}

func TestDispatchOutcomeAlwaysOpensPrompt(t *testing.T) {
	a := newTestApp(t, store.State{})

	a = send(a, shared.DispatchDoneMsg{Repo: "acme/api", Workflow: "ci.yml", Preview: "gh workflow run ci.yml"})
	if a.modal != ModalPostDispatch {
		t.Fatalf("modal = %v, want post-dispatch after success", a.modal)
	}

	a.modal = ModalNone
	a = send(a, shared.DispatchDoneMsg{Err: errors.New("boom")})
	if a.modal != ModalPostDispatch {
		t.Fatalf("modal = %v, want post-dispatch after failure too", a.modal)
	}

	// Any key other than 'l'/'v' dismisses the prompt.
	a = sendKey(a, runes("x"))
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want none", a.modal)
	}
}

func TestFocusAdvancesOnlyOnSuccess(t *testing.T) {
	a := newTestApp(t, store.State{})

	a = send(a, shared.RepoDetailsMsg{Repo: "acme/api", Branches: []string{"main"}, Workflows: []string{"ci.yml"}})
	if a.focus != BranchesPanel {
		t.Fatalf("focus = %v, want branches after repo details", a.focus)
	}

	a = send(a, shared.BranchWorkflowsMsg{Repo: "acme/api", Branch: "main", Err: errors.New("offline")})
	if a.focus != BranchesPanel {
		t.Fatalf("focus = %v, failure must not advance focus", a.focus)
	}

	a = send(a, shared.BranchWorkflowsMsg{Repo: "acme/api", Branch: "main", Workflows: []string{"deploy.yml"}})
	if a.focus != WorkflowsPanel {
		t.Fatalf("focus = %v, want workflows", a.focus)
	}
}

func TestWorkflowInputsOpenModalWhenFieldsExist(t *testing.T) {
	a := newTestApp(t, store.State{})

	a = send(a, shared.WorkflowInputsMsg{
		Workflow: "deploy.yml",
		Lines:    []string{"env: [type: choice]"},
		Fields:   []gh.InputField{{Name: "env", Type: gh.TypeChoice, Options: []string{"dev"}}},
	})
	if a.focus != InputsPanel {
		t.Fatalf("focus = %v, want inputs", a.focus)
	}
	if a.modal != ModalInputs {
		t.Fatalf("modal = %v, want inputs modal for a workflow with fields", a.modal)
	}

	a.modal = ModalNone
	a = send(a, shared.WorkflowInputsMsg{Workflow: "bare.yml"})
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want none for a workflow without inputs", a.modal)
	}
}

func TestSearchFiltersFocusedPanel(t *testing.T) {
	st := store.State{}
	st.AddRepo("acme/api")
	st.AddRepo("acme/web")
	a := newTestApp(t, st)

	a = sendKey(a, runes("/"))
	if !a.searchActive {
		t.Fatal("search did not activate")
	}
	a = sendKey(a, runes("w"))
	a = sendKey(a, runes("e"))
	if got := a.repoList.Len(); got != 1 {
		t.Fatalf("filtered len = %d, want 1", got)
	}
	if label, _ := a.repoList.SelectedLabel(); label != "acme/web" {
		t.Fatalf("selected = %q", label)
	}

	// Enter keeps the filter, esc clears it.
	a = sendKey(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.searchActive {
		t.Fatal("enter should leave search mode")
	}
	if a.repoList.Query() != "we" {
		t.Fatalf("query = %q, want kept", a.repoList.Query())
	}

	a = sendKey(a, runes("/"))
	a = sendKey(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.searchActive || a.repoList.Query() != "" {
		t.Fatalf("esc should clear search; query = %q", a.repoList.Query())
	}
}

func TestSearchAllowsMovingSelection(t *testing.T) {
	st := store.State{}
	st.AddRepo("acme/api")
	st.AddRepo("acme/web")
	st.AddRepo("acme/worker")
	a := newTestApp(t, st)

	a = sendKey(a, runes("/"))
	a = sendKey(a, runes("w"))
	if got := a.repoList.Len(); got != 2 {
		t.Fatalf("filtered len = %d, want 2", got)
	}

	a = sendKey(a, tea.KeyMsg{Type: tea.KeyDown})
	if !a.searchActive {
		t.Fatal("arrow keys must not leave search mode")
	}
	if label, _ := a.repoList.SelectedLabel(); label != "acme/worker" {
		t.Fatalf("selected = %q, want acme/worker", label)
	}
	a = sendKey(a, tea.KeyMsg{Type: tea.KeyUp})
	if label, _ := a.repoList.SelectedLabel(); label != "acme/web" {
		t.Fatalf("selected = %q, want acme/web", label)
	}
}

func TestFailedDispatchStillTargetsItself(t *testing.T) {
	a := newTestApp(t, store.State{})
	a.lastRepo = "old/repo"
	a.lastWorkflow = "old.yml"
	a.lastRunID = 77

	a = send(a, shared.DispatchDoneMsg{
		Repo:     "acme/api",
		Branch:   "main",
		Workflow: "deploy.yml",
		Err:      errors.New("boom"),
	})
	if a.lastRepo != "acme/api" || a.lastWorkflow != "deploy.yml" {
		t.Fatalf("prompt targets %s/%s, want the failed dispatch", a.lastRepo, a.lastWorkflow)
	}
	if a.lastRunID != 0 {
		t.Fatalf("lastRunID = %d, want reset", a.lastRunID)
	}
}

func TestEnterOnInputsPanelOpensConfirm(t *testing.T) {
	st := store.State{}
	st.AddRepo("acme/api")
	a := newTestApp(t, st)
	a.setBranches([]string{"main"})
	a.setWorkflows([]string{"deploy.yml"})
	a.inputs.SetFields([]gh.InputField{{Name: "tag", Type: gh.TypeString, Value: "v1"}})
	a.focus = InputsPanel

	a = sendKey(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.modal != ModalConfirm {
		t.Fatalf("modal = %v, want confirm", a.modal)
	}
	want := "gh workflow run deploy.yml --repo acme/api --ref main -f tag=v1"
	if a.confirmPreview != want {
		t.Fatalf("preview = %q, want %q", a.confirmPreview, want)
	}
}

func TestReplayRefusedAgainstMissingWorkflow(t *testing.T) {
	st := store.State{}
	st.AddReplay("acme/api", store.Replay{
		Workflow: "gone.yml",
		Inputs:   []store.ReplayInput{{Name: "env", Value: "prod"}},
	})
	a := newTestApp(t, st)
	a.setBranches([]string{"main"})
	a.setWorkflows([]string{"ci.yml"})

	a = sendKey(a, runes("r"))
	if a.modal != ModalReplays {
		t.Fatalf("modal = %v, want replays", a.modal)
	}
	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(App)
	if cmd != nil {
		t.Fatal("stale replay must not dispatch")
	}
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want closed with an error", a.modal)
	}
}

func TestSaveReplayFromInputsModal(t *testing.T) {
	st := store.State{}
	st.AddRepo("acme/api")
	a := newTestApp(t, st)
	a.setBranches([]string{"main"})
	a.setWorkflows([]string{"deploy.yml"})
	a.inputs.SetFields([]gh.InputField{{Name: "version", Type: gh.TypeString, Value: "1.2"}})
	a.modal = ModalInputs

	a = sendKey(a, runes("S"))
	replays := a.state.ReplaysFor("acme/api")
	if len(replays) != 1 {
		t.Fatalf("replays = %+v, want one", replays)
	}
	if replays[0].Description != "version=1.2" {
		t.Fatalf("description = %q", replays[0].Description)
	}

	// Persisted immediately.
	loaded := store.Load(a.storePath)
	if len(loaded.ReplaysFor("acme/api")) != 1 {
		t.Fatal("replay not persisted to disk")
	}
}

func TestDeleteLastReplayClosesModal(t *testing.T) {
	st := store.State{}
	st.AddReplay("acme/api", store.Replay{Workflow: "ci.yml"})
	a := newTestApp(t, st)

	a = sendKey(a, runes("r"))
	a = sendKey(a, runes("d"))
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want closed after deleting the last replay", a.modal)
	}
	if got := a.state.ReplaysFor("acme/api"); len(got) != 0 {
		t.Fatalf("replays = %+v, want none", got)
	}
}

func TestModalExclusivityAcrossSequence(t *testing.T) {
	st := store.State{}
	st.AddReplay("acme/api", store.Replay{Workflow: "ci.yml"})
	a := newTestApp(t, st)
	a.setBranches([]string{"main"})
	a.setWorkflows([]string{"ci.yml"})

	keys := []tea.KeyMsg{
		runes("a"), {Type: tea.KeyEsc},
		runes("r"), {Type: tea.KeyEsc},
		runes("?"), runes("?"),
		runes("d"), runes("n"),
	}
	for _, k := range keys {
		a = sendKey(a, k)
		if a.modal < ModalNone || a.modal > ModalPostDispatch {
			t.Fatalf("modal out of range: %v", a.modal)
		}
	}
	if a.modal != ModalNone {
		t.Fatalf("modal = %v, want none at end of sequence", a.modal)
	}
}
