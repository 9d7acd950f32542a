// Package errors defines the typed errors a harness run can fail with.
// Each variant keeps its message local and exposes its cause through
// Unwrap, so the CLI can render the whole chain one level per line.
package errors

import (
	"errors"
	"fmt"
)

// InputError reports a failure on the interactive operator streams,
// typically a closed stdin during key entry or confirmation.
type InputError struct {
	cause error
}

func NewInputError(cause error) *InputError {
	return &InputError{cause: cause}
}

func (e *InputError) Error() string {
	return "error reading operator input"
}

func (e *InputError) Unwrap() error {
	return e.cause
}

func IsInputError(err error) bool {
	var t *InputError
	return errors.As(err, &t)
}

// CommandSpawnError reports that an external command could not be launched
// at all. A launched command that exits non-zero is not an error.
type CommandSpawnError struct {
	Command string
	cause   error
}

func NewCommandSpawnError(command string, cause error) *CommandSpawnError {
	return &CommandSpawnError{Command: command, cause: cause}
}

func (e *CommandSpawnError) Error() string {
	return fmt.Sprintf("error running the %q command", e.Command)
}

func (e *CommandSpawnError) Unwrap() error {
	return e.cause
}

func IsCommandSpawnError(err error) bool {
	var t *CommandSpawnError
	return errors.As(err, &t)
}

// TransportError reports a network-level failure while delivering the test
// report: connection refused, timeout, TLS handshake and the like.
type TransportError struct {
	Endpoint string
	cause    error
}

func NewTransportError(endpoint string, cause error) *TransportError {
	return &TransportError{Endpoint: endpoint, cause: cause}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error sending the test report to %s", e.Endpoint)
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

func IsTransportError(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

// UnexpectedResponseError reports a non-OK status from the report endpoint.
// It carries the literal status line and the verbatim response body.
type UnexpectedResponseError struct {
	Status     string
	StatusCode int
	Body       string
}

func NewUnexpectedResponseError(status string, statusCode int, body string) *UnexpectedResponseError {
	return &UnexpectedResponseError{Status: status, StatusCode: statusCode, Body: body}
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("a %q status code was received, with this response body:\n%s", e.Status, e.Body)
}

func IsUnexpectedResponseError(err error) bool {
	var t *UnexpectedResponseError
	return errors.As(err, &t)
}
