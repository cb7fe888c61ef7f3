// Package store persists the repository list and saved replays as YAML
// under the user's config directory.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// State is the on-disk shape of ~/.config/lazy-dispatchrr/config.yml.
type State struct {
	Repos []Repo `yaml:"repos"`
}

type Repo struct {
	Name    string   `yaml:"name"` // "owner/repo"
	Replays []Replay `yaml:"replays,omitempty"`
}

// Replay is a saved set of workflow input values for quick re-dispatch.
type Replay struct {
	Workflow    string        `yaml:"workflow"`
	Description string        `yaml:"description"`
	Inputs      []ReplayInput `yaml:"inputs"`
}

type ReplayInput struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// DefaultPath returns ~/.config/lazy-dispatchrr/config.yml, honoring
// XDG_CONFIG_HOME when set.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lazy-dispatchrr", "config.yml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("lazy-dispatchrr", "config.yml")
	}
	return filepath.Join(home, ".config", "lazy-dispatchrr", "config.yml")
}

// Load reads persisted state. A missing or unreadable file yields the
// empty state rather than an error: first runs start from nothing.
func Load(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}
	}
	return st
}

// Save writes the state back out, creating parent directories as needed.
func Save(path string, st State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// RepoNames returns the persisted repository identifiers in order.
func (s State) RepoNames() []string {
	names := make([]string, len(s.Repos))
	for i, r := range s.Repos {
		names[i] = r.Name
	}
	return names
}

// ReplaysFor returns the saved replays for a repository, if any.
func (s State) ReplaysFor(repo string) []Replay {
	for _, r := range s.Repos {
		if r.Name == repo {
			return r.Replays
		}
	}
	return nil
}

// AddRepo appends a repository, keeping any replays it already has.
// Adding an existing repository is a no-op.
func (s *State) AddRepo(name string) {
	for _, r := range s.Repos {
		if r.Name == name {
			return
		}
	}
	s.Repos = append(s.Repos, Repo{Name: name})
}

// AddReplay attaches a replay to a repository, creating the repository
// entry if it is somehow missing.
func (s *State) AddReplay(repo string, replay Replay) {
	for i := range s.Repos {
		if s.Repos[i].Name == repo {
			s.Repos[i].Replays = append(s.Repos[i].Replays, replay)
			return
		}
	}
	s.Repos = append(s.Repos, Repo{Name: repo, Replays: []Replay{replay}})
}

// DeleteReplay removes the replay at index from a repository's list and
// returns it. The second return is false when the index is out of range.
func (s *State) DeleteReplay(repo string, index int) (Replay, bool) {
	for i := range s.Repos {
		if s.Repos[i].Name != repo {
			continue
		}
		replays := s.Repos[i].Replays
		if index < 0 || index >= len(replays) {
			return Replay{}, false
		}
		removed := replays[index]
		s.Repos[i].Replays = append(replays[:index], replays[index+1:]...)
		return removed, true
	}
	return Replay{}, false
}
