package device

import "errors"

var (
	// ErrNoDialer is returned when a Responder is constructed without a
	// Dialer.
	//
	// This indicates a configuration error. A Dialer is required in
	// order to establish the connection to the controlling terminal.
	ErrNoDialer = errors.New("no dialer configured")

	// ErrNoDispatcher is returned when a Responder is constructed
	// without a command dispatcher to route lines to.
	ErrNoDispatcher = errors.New("no dispatcher configured")

	// ErrAlreadyClosed is returned when Close is called on a Responder
	// that has already been closed, or when Run is called after Close.
	ErrAlreadyClosed = errors.New("responder already closed")

	// ErrAlreadyRunning is returned when Run is called while a previous
	// Run on the same Responder has not returned. Only one goroutine
	// may own the transport.
	ErrAlreadyRunning = errors.New("responder loop already running")
)
