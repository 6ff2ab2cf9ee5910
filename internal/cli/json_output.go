// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - JSON output for scripting alicelink.
//
// Every command run with --json writes a single JSONResponse envelope to
// stdout. Human-readable messages go to stderr in that mode.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/heyalice/alicelink/internal/commands"
	"github.com/heyalice/alicelink/internal/history"
	"github.com/heyalice/alicelink/internal/registry"
)

// JSONResponse is the envelope for all --json output.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is when the response was generated, RFC 3339 in UTC
	Timestamp string `json:"timestamp"`

	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Data:      DisplayErrorDetails(err),
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print outputs the JSON response to stdout.
func (r *JSONResponse) Print() error {
	return r.Write(os.Stdout)
}

// Write outputs the indented JSON response to w.
func (r *JSONResponse) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

// StderrPrint prints a message to stderr (for human-readable output in JSON mode).
func StderrPrint(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// QueryData is returned by the query command.
type QueryData struct {
	Query      string          `json:"query"`
	Registry   registry.Origin `json:"registry"`
	Icon       string          `json:"icon"`
	Candidates []CandidateData `json:"candidates"`
}

// CandidateData is one interpreted candidate.
type CandidateData struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	QueryText string `json:"query_text"`
	Intent    string `json:"intent"`
	Action    string `json:"action"`
	URI       string `json:"uri,omitempty"`
	Entity    string `json:"entity,omitempty"`
}

// NewCandidateData flattens a candidate for output.
func NewCandidateData(c commands.Candidate) CandidateData {
	data := CandidateData{
		Title:     c.Title,
		Subtitle:  c.Subtitle,
		QueryText: c.QueryText,
		Intent:    c.Intent.String(),
		Action:    "none",
		URI:       c.Action.URI,
	}
	if !c.IsNoOp() {
		data.Action = "open_uri"
	}
	if c.Entity != nil {
		data.Entity = c.Entity.Name
	}
	return data
}

// OpenData is returned by the open command.
type OpenData struct {
	Query    string `json:"query"`
	Title    string `json:"title"`
	URI      string `json:"uri,omitempty"`
	Launched bool   `json:"launched"`
	DryRun   bool   `json:"dry_run"`
}

// ConfigData is returned by config show, path and get.
type ConfigData struct {
	ConfigPath   string      `json:"config_path,omitempty"`
	RegistryPath string      `json:"registry_path,omitempty"`
	HistoryPath  string      `json:"history_path,omitempty"`
	Origin       string      `json:"registry_origin,omitempty"`
	Key          string      `json:"key,omitempty"`
	Value        interface{} `json:"value,omitempty"`
	Config       interface{} `json:"config,omitempty"`
	Registry     interface{} `json:"registry,omitempty"`
	Written      []string    `json:"written,omitempty"`
}

// ValidateData is returned by config validate.
type ValidateData struct {
	Path       string           `json:"path"`
	Format     string           `json:"format"`
	Assistants int              `json:"assistants"`
	Skills     int              `json:"skills"`
	Issues     []registry.Issue `json:"issues"`
}

// HistoryData is returned by history list and history clear.
type HistoryData struct {
	Total   int             `json:"total"`
	Entries []history.Entry `json:"entries,omitempty"`
	Removed int64           `json:"removed,omitempty"`
}

// VersionData represents the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version,omitempty"`
}

// SyntaxData is returned by the syntax command.
type SyntaxData struct {
	Markdown string `json:"markdown"`
}
