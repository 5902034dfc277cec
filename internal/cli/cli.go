// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for thirstiq.
package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdStatus
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool // Output in JSON format

	// Name pre-fills the sign-in prompt (--name)
	Name string

	// ConfigPath overrides the config file location (--config)
	ConfigPath string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `thirstiq - chat-style hydration assistant

ThirstIQ builds a daily water goal from the weather where you are and
splits it into timed reminders you check off as you drink.

Usage:
  thirstiq                   Start the TUI (default)
  thirstiq chat              Plain-terminal chat (no alternate screen)
  thirstiq status, s         Show configuration and provider health
  thirstiq version           Show version information
  thirstiq help              Show this help

In a session, tell it where you are ("Paris") to get a goal and a
schedule, or log a drink directly ("250ml"). Slash commands:
  /help      List commands
  /tasks     Show today's reminders
  /done <n>  Complete reminder n
  /log <ml>  Log a drink
  /goal      Explain how the goal was derived
  /stats     Session statistics
  /export    Write the transcript to markdown or json
  /quit      Leave

Global Flags:
  --name NAME     Skip the sign-in prompt
  --config PATH   Use an alternate config file
  -q, --quiet     Minimal output
  -v, --verbose   Debug output
  --json          Machine-readable output (status, version)

Configuration lives in ~/.thirstiq/config.toml. Set the weather API key
there or via THIRSTIQ_API_KEY.

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("thirstiq version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
// The argv slice excludes the program name.
func Parse(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	parsedArgs.Raw = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "chat", "repl":
		return CmdChat, parsedArgs

	case "status", "s":
		return CmdStatus, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown word: keep it as input for the TUI rather than erroring.
		parsedArgs.Raw = remaining
		return CmdTUI, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--name":
			if i+1 < len(args) {
				i++
				parsedArgs.Name = args[i]
			}
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--name="):
				parsedArgs.Name = strings.TrimPrefix(arg, "--name=")
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleVersion handles the "version" command.
func HandleVersion(args Args) {
	if args.JSON {
		resp := NewJSONResponse("version", versionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		})
		resp.Print()
		return
	}
	PrintVersion()
}

type versionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
