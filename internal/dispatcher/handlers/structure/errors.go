package structure

import "errors"

var (
	// ErrUnknownSupertabCommand indicates a supertab command that is not a
	// parent navigation command.
	ErrUnknownSupertabCommand = errors.New("unknown supertab command")

	// ErrUnknownPolicy indicates an unknown supertab policy name.
	ErrUnknownPolicy = errors.New("unknown supertab policy")
)
