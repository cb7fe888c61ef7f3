package replaypicker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pr0methevs/lazy-dispatchrr/store"
)

func strKey(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testReplays() []store.Replay {
	return []store.Replay{
		{Workflow: "deploy.yml", Description: "env=prod"},
		{Workflow: "ci.yml", Description: "debug=true"},
		{Workflow: "release.yml", Description: "tag=v1"},
	}
}

func TestNavigationWrapsAndSelects(t *testing.T) {
	m := New()
	m.SetReplays("acme/api", testReplays())

	m.HandleKey(strKey("k"))
	r := m.HandleKey(strKey("enter"))
	if r.Action != ActionRun || r.Index != 2 {
		t.Fatalf("result = %+v, want run at wrapped index 2", r)
	}
	replay, ok := m.SelectedReplay()
	if !ok || replay.Workflow != "release.yml" {
		t.Fatalf("selected = %+v, %v", replay, ok)
	}
}

func TestDeleteReportsIndex(t *testing.T) {
	m := New()
	m.SetReplays("acme/api", testReplays())

	m.HandleKey(strKey("j"))
	r := m.HandleKey(strKey("d"))
	if r.Action != ActionDelete || r.Index != 1 {
		t.Fatalf("result = %+v, want delete at index 1", r)
	}

	m.RemoveAt(r.Index)
	if got := len(m.Replays()); got != 2 {
		t.Fatalf("remaining = %d, want 2", got)
	}
	if replay, _ := m.SelectedReplay(); replay.Workflow != "release.yml" {
		t.Fatalf("cursor now on %q, want release.yml", replay.Workflow)
	}
}

func TestRemoveLastClampsCursor(t *testing.T) {
	m := New()
	m.SetReplays("acme/api", testReplays()[:1])
	m.RemoveAt(0)
	if len(m.Replays()) != 0 {
		t.Fatal("replay not removed")
	}
	if _, ok := m.SelectedReplay(); ok {
		t.Fatal("selection reported on empty list")
	}
}

func TestCloseKeys(t *testing.T) {
	m := New()
	m.SetReplays("acme/api", testReplays())
	if r := m.HandleKey(strKey("esc")); r.Action != ActionClose {
		t.Fatalf("esc: %+v", r)
	}
	if r := m.HandleKey(strKey("q")); r.Action != ActionClose {
		t.Fatalf("q: %+v", r)
	}
}
