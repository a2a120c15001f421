// Package at holds the wire-level vocabulary used by the command
// responder: line terminators, final result codes, and the CME error
// codes reported when verbose error mode is on.
package at

const (
	// Terminal Control
	CRLF = "\r\n"

	// Final result codes
	OK       = "OK"
	ERROR    = "ERROR"
	CmeError = "+CME ERROR:"
)

// CME error codes, as used with AT+CMEE=1. The subset here covers the
// failure reasons a dispatcher can surface.
const (
	CmeOperationNotAllowed = 3   // command exists, form not supported
	CmeInvalidParameter    = 50  // handler rejected the arguments
	CmeUnknown             = 100 // no such command
)
