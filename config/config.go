package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-editable display settings. Repository and replay
// state lives in the YAML store, not here.
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Display DisplayConfig `toml:"display"`
}

type ThemeConfig struct {
	FG          string `toml:"fg,omitempty"`
	Accent      string `toml:"accent,omitempty"`
	Muted       string `toml:"muted,omitempty"`
	Border      string `toml:"border,omitempty"`
	BorderFocus string `toml:"border_focus,omitempty"`
	Success     string `toml:"success,omitempty"`
	Warning     string `toml:"warning,omitempty"`
	Error       string `toml:"error,omitempty"`
	Info        string `toml:"info,omitempty"`
	CursorBG    string `toml:"cursor_bg,omitempty"`
	StatusBarBG string `toml:"status_bar_bg,omitempty"`
	StatusBarFG string `toml:"status_bar_fg,omitempty"`
}

type DisplayConfig struct {
	SpinnerType string `toml:"spinner_type,omitempty"`
	LogLines    int    `toml:"log_lines,omitempty"`
}

// DefaultConfigPath returns ~/.config/lazy-dispatchrr/settings.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.toml"
	}
	return filepath.Join(home, ".config", "lazy-dispatchrr", "settings.toml")
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		FG:          "#ffffff",
		Accent:      "#ffc799",
		Muted:       "#505050",
		Border:      "#3a3a3a",
		BorderFocus: "#ffc799",
		Success:     "#99ffe4",
		Warning:     "#ffc799",
		Error:       "#ff8080",
		Info:        "#6699ff",
		CursorBG:    "#2a2a2a",
		StatusBarBG: "#1a1a1a",
		StatusBarFG: "#a0a0a0",
	}
}

// ResolvedTheme merges the configured theme with defaults for any unset
// fields.
func (c Config) ResolvedTheme() ThemeConfig {
	d := DefaultTheme()
	return ThemeConfig{
		FG:          pick(c.Theme.FG, d.FG),
		Accent:      pick(c.Theme.Accent, d.Accent),
		Muted:       pick(c.Theme.Muted, d.Muted),
		Border:      pick(c.Theme.Border, d.Border),
		BorderFocus: pick(c.Theme.BorderFocus, d.BorderFocus),
		Success:     pick(c.Theme.Success, d.Success),
		Warning:     pick(c.Theme.Warning, d.Warning),
		Error:       pick(c.Theme.Error, d.Error),
		Info:        pick(c.Theme.Info, d.Info),
		CursorBG:    pick(c.Theme.CursorBG, d.CursorBG),
		StatusBarBG: pick(c.Theme.StatusBarBG, d.StatusBarBG),
		StatusBarFG: pick(c.Theme.StatusBarFG, d.StatusBarFG),
	}
}

// ResolvedSpinnerType returns the configured spinner name or "minidot".
func (c Config) ResolvedSpinnerType() string {
	if c.Display.SpinnerType != "" {
		return c.Display.SpinnerType
	}
	return "minidot"
}

// ResolvedLogLines returns how many log lines the output panel keeps.
func (c Config) ResolvedLogLines() int {
	if c.Display.LogLines > 0 {
		return c.Display.LogLines
	}
	return 200
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
