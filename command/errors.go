package command

import "errors"

var (
	// ErrUnknownCommand is returned by Execute when no entry in the
	// registration table matches the parsed command name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotSupported is returned when a command exists but does not
	// implement the requested form. It is the default result of every
	// handler operation that a handler does not override.
	ErrNotSupported = errors.New("operation not supported")

	// ErrInvalidArgs is returned by a handler when the argument string is
	// missing, malformed, or out of range. The core never returns it on
	// its own; what counts as invalid is the handler's decision.
	ErrInvalidArgs = errors.New("invalid arguments")
)
