package device

import (
	"bytes"
	"io"
	"sync"
)

// TestTransport is a test helper that simulates a blocking transport
// using channels. This is needed because the Run loop's scanner
// goroutine continuously reads from the transport, and reads must block
// until data is available (like a real serial port would). Replies
// written by the responder are captured for inspection.
type TestTransport struct {
	mu       sync.Mutex
	readChan chan []byte
	written  bytes.Buffer
	closed   bool
}

// NewTestTransport creates a new test transport for testing.
// Exported for use in tests.
func NewTestTransport() *TestTransport {
	return &TestTransport{
		readChan: make(chan []byte, 10),
	}
}

func (t *TestTransport) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.written.Write(p)
}

func (t *TestTransport) Read(p []byte) (n int, err error) {
	data, ok := <-t.readChan
	if !ok {
		return 0, io.EOF
	}
	return copy(p, data), nil
}

func (t *TestTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.readChan)
	return nil
}

// SendLine queues a command line, CRLF terminated, to be read by the
// responder. This simulates the terminal typing a command.
func (t *TestTransport) SendLine(line string) {
	t.SendData(line + "\r\n")
}

// SendData queues raw bytes to be read by the responder.
func (t *TestTransport) SendData(data string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.readChan <- []byte(data)
	}
}

// Output returns everything the responder has written so far.
func (t *TestTransport) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.written.String()
}
