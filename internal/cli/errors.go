// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for alicelink commands.
//
// Handlers always return errors; main decides how to display them and which
// exit code to use.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/heyalice/alicelink/internal/config"
	"github.com/heyalice/alicelink/internal/launcher"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitLaunchError indicates the deep link could not be opened
	ExitLaunchError = 4
	// ExitNotFoundError indicates a resource was not found
	ExitNotFoundError = 7
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "config", "history")
	Action  string // Action being performed (e.g., "init", "clear")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure for user input.
type ValidationError struct {
	Field   string
	Value   string
	Reason  string
	Example string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// NotFoundError represents a resource not found error.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{Command: command, Action: action, Reason: reason, Err: err}
}

// ErrMissingArgument creates an error for missing required arguments.
func ErrMissingArgument(argName, usage string) error {
	return &ValidationError{Field: argName, Reason: "required argument missing", Example: usage}
}

// ErrUnknownSubcommand creates an error for an unrecognised subcommand.
func ErrUnknownSubcommand(command, sub string, valid []string) error {
	return &ValidationError{
		Field:   command + " subcommand",
		Value:   sub,
		Reason:  "unknown subcommand",
		Example: "alicelink " + command + " " + strings.Join(valid, "|"),
	}
}

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError displays an error in a consistent format.
// In JSON mode, outputs a JSONResponse with success=false.
func DisplayError(command string, err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		NewJSONErrorResponse(command, err).Print()
		return
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// DisplayErrorDetails describes err for the data field of a JSON error
// response.
func DisplayErrorDetails(err error) map[string]interface{} {
	output := map[string]interface{}{
		"error": err.Error(),
	}

	var cmdErr *CommandError
	var valErr *ValidationError
	var nfErr *NotFoundError
	var launchErr *launcher.LaunchError
	switch {
	case errors.As(err, &launchErr):
		output["error_type"] = "launch_error"
		output["uri"] = launchErr.URI
	case errors.As(err, &valErr):
		output["error_type"] = "validation_error"
		output["field"] = valErr.Field
	case errors.As(err, &nfErr):
		output["error_type"] = "not_found_error"
		output["resource"] = nfErr.Resource
	case errors.As(err, &cmdErr):
		output["error_type"] = "command_error"
		output["command"] = cmdErr.Command
		output["action"] = cmdErr.Action
	default:
		output["error_type"] = "generic_error"
	}
	return output
}

// HandleErrorAndExit displays an error and exits with an appropriate exit code.
func HandleErrorAndExit(command string, err error, jsonMode bool) {
	if err == nil {
		return
	}
	DisplayError(command, err, jsonMode)
	os.Exit(GetExitCode(err))
}

// GetExitCode determines the appropriate exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitUsageError
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return ExitNotFoundError
	}

	var launchErr *launcher.LaunchError
	if errors.As(err, &launchErr) {
		return ExitLaunchError
	}

	var cfgErrs config.ValidateErrors
	if errors.As(err, &cfgErrs) {
		return ExitConfigError
	}

	if strings.Contains(strings.ToLower(err.Error()), "config") {
		return ExitConfigError
	}

	return ExitGeneralError
}
