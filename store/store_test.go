package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileYieldsEmptyState(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if len(st.Repos) != 0 {
		t.Fatalf("repos = %v, want empty", st.Repos)
	}
}

func TestLoadMalformedFileYieldsEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("repos: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := Load(path)
	if len(st.Repos) != 0 {
		t.Fatalf("repos = %v, want empty", st.Repos)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	st := State{}
	st.AddRepo("acme/api")
	st.AddReplay("acme/api", Replay{
		Workflow:    "deploy.yml",
		Description: "env=prod",
		Inputs:      []ReplayInput{{Name: "env", Value: "prod"}},
	})

	if err := Save(path, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := Load(path)
	if !reflect.DeepEqual(st, loaded) {
		t.Fatalf("roundtrip mismatch:\n  saved  %+v\n  loaded %+v", st, loaded)
	}
}

func TestAddRepoDeduplicates(t *testing.T) {
	st := State{}
	st.AddRepo("acme/api")
	st.AddReplay("acme/api", Replay{Workflow: "ci.yml"})
	st.AddRepo("acme/api")
	if len(st.Repos) != 1 {
		t.Fatalf("repos = %v, want single entry", st.Repos)
	}
	if len(st.Repos[0].Replays) != 1 {
		t.Fatal("re-adding a repo dropped its replays")
	}
}

func TestDeleteReplay(t *testing.T) {
	st := State{}
	st.AddReplay("acme/api", Replay{Workflow: "a.yml"})
	st.AddReplay("acme/api", Replay{Workflow: "b.yml"})
	st.AddReplay("other/repo", Replay{Workflow: "keep.yml"})

	removed, ok := st.DeleteReplay("acme/api", 0)
	if !ok || removed.Workflow != "a.yml" {
		t.Fatalf("removed = %+v, ok = %v", removed, ok)
	}
	if got := st.ReplaysFor("acme/api"); len(got) != 1 || got[0].Workflow != "b.yml" {
		t.Fatalf("remaining = %+v", got)
	}
	if got := st.ReplaysFor("other/repo"); len(got) != 1 {
		t.Fatal("deletion leaked into another repo's replays")
	}

	if _, ok := st.DeleteReplay("acme/api", 5); ok {
		t.Fatal("out-of-range delete reported success")
	}
	if _, ok := st.DeleteReplay("missing/repo", 0); ok {
		t.Fatal("delete on unknown repo reported success")
	}
}
