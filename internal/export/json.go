// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/thirstiq/thirstiq-tui/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter renders a session as a stable JSON document.
type JSONExporter struct {
	opts *Options
}

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{opts: opts}
}

// FileExtension returns ".json".
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// jsonSession is the export schema. Kept separate from the model types so
// the file format does not shift when internal fields change.
type jsonSession struct {
	ExportedAt        time.Time         `json:"exported_at"`
	UserName          string            `json:"user_name,omitempty"`
	StartedAt         time.Time         `json:"started_at"`
	Observation       *jsonObservation  `json:"observation,omitempty"`
	GoalMilliliters   int               `json:"goal_milliliters"`
	IntakeMilliliters int               `json:"intake_milliliters"`
	Tasks             []model.IntakeTask `json:"tasks"`
	Messages          []jsonMessage     `json:"messages"`
}

type jsonObservation struct {
	Place        string `json:"place"`
	TemperatureC int    `json:"temperature_c"`
	HumidityPct  int    `json:"humidity_pct"`
	Description  string `json:"description,omitempty"`
}

type jsonMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Export renders the session.
func (e *JSONExporter) Export(sess *model.Session) ([]byte, error) {
	if err := validateSession(sess); err != nil {
		return nil, err
	}

	out := jsonSession{
		ExportedAt:        time.Now(),
		UserName:          e.opts.UserName,
		StartedAt:         sess.StartedAt,
		GoalMilliliters:   sess.GoalMilliliters,
		IntakeMilliliters: sess.IntakeMilliliters,
		Tasks:             sess.Tasks,
		Messages:          make([]jsonMessage, 0, len(sess.Messages)),
	}

	if sess.Observation != nil {
		out.Observation = &jsonObservation{
			Place:        sess.Observation.Place,
			TemperatureC: sess.Observation.TemperatureC,
			HumidityPct:  sess.Observation.HumidityPct,
			Description:  sess.Observation.Description,
		}
	}

	for _, msg := range sess.Messages {
		out.Messages = append(out.Messages, jsonMessage{
			ID:        msg.ID,
			Role:      string(msg.Role),
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
