package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// Exit codes returned by the tally binary.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFailure
}

// PrintError writes err to w for a human reader. A CommandError prints as
// "Error: <command>: " followed by the cause, so multi-line record errors
// keep their layout.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		fmt.Fprintf(w, "Error: %s: %s\n", cmdErr.Command, strings.TrimRight(cmdErr.Err.Error(), "\n"))
		return
	}
	fmt.Fprintf(w, "Error: %s\n", strings.TrimRight(err.Error(), "\n"))
}
