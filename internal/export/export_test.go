// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/thirstiq/thirstiq-tui/internal/model"
)

func testSession() *model.Session {
	sess := model.NewSession()
	sess.StartedAt = time.Date(2026, 8, 31, 8, 30, 0, 0, time.UTC)

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	obs := &model.Observation{
		Place:        "Paris",
		TemperatureC: 30,
		HumidityPct:  70,
		Description:  "clear sky",
	}
	tasks := model.TaskBatch{
		{ID: "t1", ScheduledAt: day.Add(9 * time.Hour), Milliliters: 306},
		{ID: "t2", ScheduledAt: day.Add(10 * time.Hour), Milliliters: 306, Completed: true},
	}
	sess.ApplyObservation(obs, 2450, tasks)
	sess.AddIntake(306)

	sess.Append(model.NewUserMessage("Paris"))
	sess.Append(model.NewAssistantMessage("Your daily goal is 2450ml."))
	return sess
}

func TestMarkdownExport(t *testing.T) {
	exporter := NewMarkdownExporter(&Options{UserName: "Sam", IncludeTimestamps: true})
	out, err := exporter.Export(testSession())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	content := string(out)
	for _, want := range []string{
		"# Hydration Session",
		"**User:** Sam",
		"**Location:** Paris",
		"**Goal:** 2.5L",
		"- [ ] 09:00",
		"- [x] 10:00",
		"**You**",
		"**ThirstIQ**",
		"> Your daily goal is 2450ml.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("markdown missing %q\n%s", want, content)
		}
	}
}

func TestJSONExportRoundTrip(t *testing.T) {
	exporter := NewJSONExporter(&Options{UserName: "Sam"})
	out, err := exporter.Export(testSession())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["goal_milliliters"].(float64) != 2450 {
		t.Errorf("goal = %v, want 2450", decoded["goal_milliliters"])
	}
	if decoded["intake_milliliters"].(float64) != 306 {
		t.Errorf("intake = %v, want 306", decoded["intake_milliliters"])
	}
	tasks := decoded["tasks"].([]interface{})
	if len(tasks) != 2 {
		t.Errorf("tasks = %d, want 2", len(tasks))
	}
	msgs := decoded["messages"].([]interface{})
	if len(msgs) != 2 {
		t.Errorf("messages = %d, want 2", len(msgs))
	}
}

func TestExportRejectsEmptySession(t *testing.T) {
	for _, exporter := range []Exporter{
		NewMarkdownExporter(nil),
		NewJSONExporter(nil),
	} {
		if _, err := exporter.Export(nil); err == nil {
			t.Errorf("%T: nil session should fail", exporter)
		}
		if _, err := exporter.Export(model.NewSession()); err == nil {
			t.Errorf("%T: empty session should fail", exporter)
		}
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"markdown", ".md", false},
		{"md", ".md", false},
		{"json", ".json", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		exporter, err := ForFormat(tt.format, nil)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForFormat(%q) expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFormat(%q): %v", tt.format, err)
			continue
		}
		if exporter.FileExtension() != tt.wantExt {
			t.Errorf("ForFormat(%q).FileExtension() = %q, want %q",
				tt.format, exporter.FileExtension(), tt.wantExt)
		}
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := &Options{OutputDir: dir, IncludeTimestamps: false}

	path, err := ExportToFile(testSession(), NewMarkdownExporter(opts), opts)
	if err != nil {
		t.Fatalf("ExportToFile: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("output path %q not under %q", path, dir)
	}
	if !strings.HasSuffix(path, ".md") {
		t.Errorf("output path %q missing .md extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "# Hydration Session") {
		t.Error("exported file missing header")
	}
}
