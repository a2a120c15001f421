package device

import (
	"context"
	"io"
)

//go:generate go tool mockgen -source=transport.go -destination=mock_transport.go -package=device

// Transport represents an established, bidirectional byte stream to the
// terminal controlling this device.
//
// A Transport is assumed to be already connected and ready for use. It
// provides the low-level I/O primitives required to receive AT commands
// and write replies. Typical implementations include serial ports,
// accepted TCP connections, or in-memory fakes used for testing.
type Transport interface {
	io.ReadWriteCloser
}

// Dialer opens a Transport to the controlling terminal.
//
// Dialer abstracts how the connection is created (for example, via a
// serial port or a test double) and is intended to be used during
// responder construction only. Once a Transport is obtained, the Dialer
// is no longer needed.
type Dialer interface {
	// Dial creates and returns a connected Transport. It may perform
	// blocking operations and should respect cancellation and deadlines
	// provided by the context. Dial returns an error if the transport
	// cannot be established.
	Dial(ctx context.Context) (Transport, error)
}
