package model

import (
	"errors"
	"fmt"
)

// ExitCode defines the process exit codes used by the CLI.
// Exit codes propagated from the shader compiler are passed through
// verbatim and may coincide with these values.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred, such as
	// a filesystem failure or a compiler that could not be launched.
	ExitGeneralError ExitCode = 1

	// ExitConfigNotFound indicates the file passed to --config does not exist.
	ExitConfigNotFound ExitCode = 2

	// ExitInvalidConfig indicates the build-step file could not be parsed
	// or lacks a required section or field.
	ExitInvalidConfig ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error

	// Silent suppresses the error message on stderr. The exit code is
	// the only signal the caller receives, which is how a failing shader
	// compiler is reported.
	Silent bool
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ExitStatus creates a silent CLIError. It is used when a child process
// fails and its exit code must become ours without further output.
func ExitStatus(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err, Silent: true}
}

// ExitCodeOf returns the exit code the process should terminate with
// for err. A nil error maps to ExitSuccess and any error that is not a
// CLIError maps to ExitGeneralError.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitGeneralError
}

// IsSilent reports whether err, or any error it wraps, is a silent CLIError.
func IsSilent(err error) bool {
	var cliErr *CLIError
	return errors.As(err, &cliErr) && cliErr.Silent
}
