package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pr0methevs/lazy-dispatchrr/config"
	"github.com/pr0methevs/lazy-dispatchrr/history"
	"github.com/pr0methevs/lazy-dispatchrr/store"
	"github.com/pr0methevs/lazy-dispatchrr/tui"
)

func main() {
	configPath := flag.String("config", "", "path to settings file (default: ~/.config/lazy-dispatchrr/settings.toml)")
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "lazy-dispatchrr is an interactive console and needs a terminal")
		os.Exit(1)
	}

	path := *configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		// Missing default settings file is fine; defaults apply.
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg = config.Config{}
		} else {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	storePath := store.DefaultPath()
	state := store.Load(storePath)

	hist, err := history.Open(history.DefaultPath())
	if err != nil {
		// History is a convenience; run without it.
		hist = nil
	} else {
		defer hist.Close()
	}

	app := tui.NewApp(cfg, state, storePath, hist)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
