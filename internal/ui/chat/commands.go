// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command creators: the asynchronous work the chat model kicks off.
// Each returns a tea.Cmd that runs off the update loop and reports back
// with a single message.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thirstiq/thirstiq-tui/internal/auth"
	"github.com/thirstiq/thirstiq-tui/internal/config"
	"github.com/thirstiq/thirstiq-tui/internal/export"
	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/weather"
)

// fetchTimeout bounds a single weather lookup.
const fetchTimeout = 15 * time.Second

// SignInCmd runs the simulated sign-in and reports the outcome.
func SignInCmd(gate *auth.Gate, name string) tea.Cmd {
	return func() tea.Msg {
		profile, err := gate.SignIn(context.Background(), name)
		return SignInDoneMsg{Profile: profile, Err: err}
	}
}

// FetchWeatherCmd looks up the current weather for a place.
func FetchWeatherCmd(fetcher weather.Fetcher, place string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		obs, err := fetcher.Current(ctx, place)
		return WeatherResultMsg{
			Place:       place,
			Observation: obs,
			Err:         err,
		}
	}
}

// exportOptions builds export options with files landing in the config
// directory, matching where the plain REPL writes them.
func exportOptions(userName string) *export.Options {
	opts := export.DefaultOptions()
	opts.UserName = userName
	if dir, err := config.ConfigDir(); err == nil {
		opts.OutputDir = dir
	}
	return opts
}

// ExportCmd writes the session to a file in the given format.
func ExportCmd(sess *model.Session, format, userName string) tea.Cmd {
	return func() tea.Msg {
		opts := exportOptions(userName)

		exporter, err := export.ForFormat(format, opts)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}

		path, err := export.ExportToFile(sess, exporter, opts)
		return ExportDoneMsg{Path: path, Err: err}
	}
}
