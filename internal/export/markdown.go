// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/util"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter renders a session as a readable Markdown document:
// a summary header, the reminder schedule as a checklist, and the
// transcript as quoted exchanges.
type MarkdownExporter struct {
	opts *Options
}

// NewMarkdownExporter creates a Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{opts: opts}
}

// FileExtension returns ".md".
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// Export renders the session.
func (e *MarkdownExporter) Export(sess *model.Session) ([]byte, error) {
	if err := validateSession(sess); err != nil {
		return nil, err
	}

	var b strings.Builder

	b.WriteString("# Hydration Session\n\n")

	if e.opts.UserName != "" {
		fmt.Fprintf(&b, "- **User:** %s\n", e.opts.UserName)
	}
	fmt.Fprintf(&b, "- **Started:** %s\n", sess.StartedAt.Format("2006-01-02 15:04"))
	if sess.Observation != nil {
		fmt.Fprintf(&b, "- **Location:** %s\n", sess.Observation.Place)
		fmt.Fprintf(&b, "- **Weather:** %s\n", sess.Observation.Summary())
	}
	if sess.GoalMilliliters > 0 {
		fmt.Fprintf(&b, "- **Goal:** %s\n", util.FormatMilliliters(sess.GoalMilliliters))
		fmt.Fprintf(&b, "- **Logged:** %s (%d%%)\n",
			util.FormatMilliliters(sess.IntakeMilliliters), sess.ProgressPercent())
	}
	b.WriteString("\n")

	if len(sess.Tasks) > 0 {
		b.WriteString("## Reminders\n\n")
		for _, task := range sess.Tasks {
			mark := " "
			if task.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s: %s\n",
				mark, task.Clock(), util.FormatMilliliters(task.Milliliters))
		}
		b.WriteString("\n")
	}

	if len(sess.Messages) > 0 {
		b.WriteString("## Transcript\n\n")
		for _, msg := range sess.Messages {
			fmt.Fprintf(&b, "**%s**", msg.Role.DisplayName())
			if e.opts.IncludeTimestamps {
				fmt.Fprintf(&b, " _(%s)_", msg.Timestamp.Format("15:04:05"))
			}
			b.WriteString(":\n\n")
			for _, line := range strings.Split(msg.Content, "\n") {
				fmt.Fprintf(&b, "> %s\n", line)
			}
			b.WriteString("\n")
		}
	}

	return []byte(b.String()), nil
}
