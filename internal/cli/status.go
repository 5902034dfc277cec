// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Status command implementation for thirstiq.
//
// Command: status
// Aliases: s
//
// Sections:
//   Config:   config file location, theme, sign-in delay
//   Weather:  provider endpoint, API key presence, reachability probe
//   Terminal: TTY, width, color support
//
// The reachability probe issues one real lookup against the provider so a
// bad key or a dead endpoint shows up here instead of mid-conversation.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/thirstiq/thirstiq-tui/internal/config"
	"github.com/thirstiq/thirstiq-tui/internal/weather"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	statusTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	valueGreenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	valueYellowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220"))

	valueRedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// probePlace is the fixed lookup used for the provider reachability check.
const probePlace = "London"

// statusData is the JSON shape for "thirstiq status --json".
type statusData struct {
	ConfigPath     string `json:"config_path"`
	ConfigExists   bool   `json:"config_exists"`
	Theme          string `json:"theme"`
	SignInDelayMS  int    `json:"sign_in_delay_ms"`
	ProviderURL    string `json:"provider_url"`
	APIKeySet      bool   `json:"api_key_set"`
	ProviderStatus string `json:"provider_status"`
	TTY            bool   `json:"tty"`
	TerminalWidth  int    `json:"terminal_width"`
}

// HandleStatus handles the "status" command.
func HandleStatus(args Args) {
	cfg := config.Global()
	data := collectStatus(cfg)

	if args.JSON {
		NewJSONResponse("status", data).Print()
		return
	}

	fmt.Println(statusTitleStyle.Render("ThirstIQ Status"))

	fmt.Println(sectionStyle.Render("Config"))
	printField("File", data.ConfigPath, valueStyle)
	if !data.ConfigExists {
		printField("", "not written yet (defaults in effect)", valueYellowStyle)
	}
	printField("Theme", data.Theme, valueStyle)
	printField("Sign-in", fmt.Sprintf("%dms simulated delay", data.SignInDelayMS), valueStyle)

	fmt.Println(sectionStyle.Render("Weather"))
	printField("Provider", data.ProviderURL, valueStyle)
	if data.APIKeySet {
		printField("API key", "configured", valueGreenStyle)
	} else {
		printField("API key", "missing (set weather.api_key or THIRSTIQ_API_KEY)", valueRedStyle)
	}
	switch data.ProviderStatus {
	case "reachable":
		printField("Reachable", "yes", valueGreenStyle)
	case "unauthorized":
		printField("Reachable", "yes, but the API key was rejected", valueRedStyle)
	case "unreachable":
		printField("Reachable", "no", valueRedStyle)
	default:
		printField("Reachable", "not checked (no API key)", valueYellowStyle)
	}

	fmt.Println(sectionStyle.Render("Terminal"))
	printField("TTY", yesNo(data.TTY), valueStyle)
	printField("Width", fmt.Sprintf("%d columns", data.TerminalWidth), valueStyle)
	printField("Color", yesNo(ColorEnabled()), valueStyle)
}

func collectStatus(cfg *config.Config) statusData {
	data := statusData{
		Theme:         cfg.UI.Theme,
		SignInDelayMS: cfg.Profile.SignInDelayMillis,
		APIKeySet:     cfg.Weather.APIKey != "",
		TTY:           IsStdoutTTY(),
		TerminalWidth: GetTerminalWidth(),
	}

	if path, err := config.ConfigPathTOML(); err == nil {
		data.ConfigPath = path
		if _, err := os.Stat(path); err == nil {
			data.ConfigExists = true
		}
	}

	data.ProviderURL = cfg.Weather.BaseURL
	if data.ProviderURL == "" {
		data.ProviderURL = weather.DefaultConfig().BaseURL
	}

	data.ProviderStatus = probeProvider(cfg)
	return data
}

// probeProvider issues one lookup to classify provider health. Skipped when
// no API key is configured: without a key every answer is 401 noise.
func probeProvider(cfg *config.Config) string {
	if cfg.Weather.APIKey == "" {
		return "skipped"
	}

	client := weather.NewClientWithConfig(&weather.ClientConfig{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Timeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Current(ctx, probePlace)
	switch {
	case err == nil:
		return "reachable"
	case weather.IsUnauthorized(err):
		return "unauthorized"
	default:
		return "unreachable"
	}
}

func printField(label, value string, style lipgloss.Style) {
	fmt.Printf("  %s%s\n", labelStyle.Render(label), style.Render(value))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
