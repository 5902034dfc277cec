// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - Structured JSON output for scripting (--json flag).
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONResponse is the envelope every --json command prints.
type JSONResponse struct {
	Command   string      `json:"command"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewJSONResponse builds a response envelope for the given command.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Command:   command,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}
}

// Print writes the response as indented JSON to stdout.
func (r *JSONResponse) Print() {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot encode JSON output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
