// ThirstIQ TUI - a chat-style hydration assistant for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thirstiq/thirstiq-tui/internal/auth"
	"github.com/thirstiq/thirstiq-tui/internal/cli"
	"github.com/thirstiq/thirstiq-tui/internal/commands"
	"github.com/thirstiq/thirstiq-tui/internal/config"
	"github.com/thirstiq/thirstiq-tui/internal/plan"
	"github.com/thirstiq/thirstiq-tui/internal/session"
	"github.com/thirstiq/thirstiq-tui/internal/ui/chat"
	"github.com/thirstiq/thirstiq-tui/internal/weather"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Program reference for messages pushed from outside the event loop
// (the config watcher).
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	if args.ConfigPath != "" {
		cfg, err := config.LoadFromPath(args.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot load config %s: %v\n", args.ConfigPath, err)
			os.Exit(1)
		}
		config.SetGlobal(cfg)
	}

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdChat:
		if err := cli.HandleChatCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		runTUI(args)
	}
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) {
	cfg := config.Global()
	if args.Name != "" {
		cfg.Profile.Name = args.Name
	}

	fetcher := weather.NewClientWithConfig(&weather.ClientConfig{
		APIKey:            cfg.Weather.APIKey,
		BaseURL:           cfg.Weather.BaseURL,
		Timeout:           time.Duration(cfg.Weather.TimeoutSecs) * time.Second,
		RequestsPerMinute: cfg.Weather.RequestsPerMinute,
	})

	if cfg.UI.DebugLogFile != "" {
		f, err := tea.LogToFile(cfg.UI.DebugLogFile, "thirstiq")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open debug log: %v\n", err)
		} else {
			defer f.Close()
		}
	}

	gate := auth.NewGate(time.Duration(cfg.Profile.SignInDelayMillis) * time.Millisecond)

	m := chat.New(chat.Options{
		Config:    cfg,
		Fetcher:   fetcher,
		Gate:      gate,
		Scheduler: plan.NewScheduler(),
		Session:   session.NewManager(),
		Version:   Version,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	// Reload the theme when the config file changes on disk. Other settings
	// (API key, delays) are read at construction and keep their values for
	// the life of the session.
	watcher, err := config.NewWatcher(500*time.Millisecond, func(newCfg *config.Config) {
		config.SetGlobal(newCfg)
		programMu.Lock()
		ref := programRef
		programMu.Unlock()
		if ref != nil {
			ref.Send(commands.ThemeChangedMsg{Mode: newCfg.UI.Theme})
		}
	})
	if err == nil {
		if werr := watcher.Watch(); werr == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running thirstiq: %v\n", err)
		os.Exit(1)
	}
}
