package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoActiveDocument indicates no document is currently active.
	ErrNoActiveDocument = errors.New("no active document")

	// ErrDocumentNotFound indicates a document was not found.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnknownCommand indicates a command name with no action.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnboundKey indicates a key with no binding in the mode.
	ErrUnboundKey = errors.New("key not bound")

	// ErrUnknownLanguage indicates a file whose language cannot be detected.
	ErrUnknownLanguage = errors.New("cannot detect language")
)

// InitError reports a component that failed to initialize.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// CommandError reports a command that ran and failed.
type CommandError struct {
	Command string // command or action name
	Target  string // document path
	Err     error
}

func (e *CommandError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s on %s: %v", e.Command, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
