// Package device runs the answering side of an AT command session: it
// frames lines arriving on a transport, routes them through a command
// dispatcher, and writes the OK/ERROR-framed replies back.
package device

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"i4.energy/across/atdev/at"
	"i4.energy/across/atdev/command"
)

// Responder owns one command transport and answers the AT commands
// received on it. It is the device-side counterpart of a terminal
// program: lines in, result codes out.
//
// A Responder is single-threaded by contract. Run is the only reader
// and writer of the transport; handlers run inside Run's loop, so they
// may call SetEcho and SetVerboseErrors without synchronization.
type Responder struct {
	// transport is the physical connection to the controlling terminal.
	transport Transport
	// dispatcher routes parsed command lines to their handlers.
	dispatcher *command.Dispatcher
	logger     *slog.Logger
	// echo controls whether received command lines are written back
	// before the reply, as ATE1 would.
	echo bool
	// verboseErrors selects "+CME ERROR: <code>" over bare "ERROR".
	verboseErrors bool
	// greeting is written once when the session loop starts.
	greeting string
	// closed indicates the responder has been shut down.
	closed bool
	// running indicates the session loop is active.
	running bool
}

// New creates a Responder with the given configuration. It dials the
// transport immediately; the session loop does not start until Run is
// called.
func New(ctx context.Context, config Config) (*Responder, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.setDefaults()

	transport, err := config.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial transport: %w", err)
	}

	return &Responder{
		transport:     transport,
		dispatcher:    config.dispatcher,
		logger:        config.logger,
		echo:          config.echo,
		verboseErrors: config.verboseErrors,
		greeting:      config.greeting,
	}, nil
}

// Echo reports whether command echo is on.
func (r *Responder) Echo() bool { return r.echo }

// SetEcho switches command echo on or off.
func (r *Responder) SetEcho(on bool) { r.echo = on }

// VerboseErrors reports whether CME error reporting is on.
func (r *Responder) VerboseErrors() bool { return r.verboseErrors }

// SetVerboseErrors switches CME error reporting on or off.
func (r *Responder) SetVerboseErrors(on bool) { r.verboseErrors = on }

// Run is the session loop. It reads command lines from the transport
// until EOF, a transport error, or context cancellation, dispatching
// each line and writing the reply. It must be called at most once at a
// time; only the Run goroutine touches the transport.
//
// Run returns io.EOF when the terminal closes the connection, the
// context error on cancellation, or the underlying read error.
func (r *Responder) Run(ctx context.Context) error {
	if r.closed {
		return ErrAlreadyClosed
	}
	if r.running {
		return ErrAlreadyRunning
	}
	r.running = true
	defer func() {
		r.running = false
	}()

	if r.greeting != "" {
		r.writeLine(r.greeting)
	}

	scanner := bufio.NewScanner(r.transport)
	scanner.Split(at.Splitter)

	// Tokens and read errors flow through channels so the loop can
	// honor ctx while the scanner blocks on the transport.
	tokens := make(chan string, 10)
	scanErrs := make(chan error, 1)

	go func() {
		defer close(tokens)
		for scanner.Scan() {
			select {
			case tokens <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case scanErrs <- err:
			case <-ctx.Done():
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-tokens:
			if !ok {
				return io.EOF
			}
			r.handleLine(line)

		case err := <-scanErrs:
			return fmt.Errorf("read command line: %w", err)
		}
	}
}

// handleLine answers a single framed command line.
func (r *Responder) handleLine(line string) {
	if r.echo {
		r.write(line + at.CRLF)
	}

	trimmed := strings.Trim(line, " \t\r\n")
	if trimmed == "" {
		return
	}

	resp, err := r.dispatcher.Execute(trimmed)
	if err != nil {
		r.logger.Debug("command failed", "line", trimmed, "error", err)
		if r.verboseErrors {
			r.writeLine(at.CmeError + " " + strconv.Itoa(cmeCode(err)))
		} else {
			r.writeLine(at.ERROR)
		}
		return
	}

	r.logger.Debug("command handled", "line", trimmed, "response", resp)
	if resp != "" {
		r.writeLine(resp)
	}
	r.writeLine(at.OK)
}

// writeLine writes a reply line framed by CRLF on both sides, the way a
// verbose-mode (V1) modem does.
func (r *Responder) writeLine(s string) {
	r.write(at.CRLF + s + at.CRLF)
}

func (r *Responder) write(s string) {
	if _, err := r.transport.Write([]byte(s)); err != nil {
		r.logger.Warn("write reply", "error", err)
	}
}

// Close shuts down the responder and closes the transport, which also
// unblocks a Run call waiting on a read. After Close the responder
// cannot be reused.
func (r *Responder) Close() error {
	if r.closed {
		return ErrAlreadyClosed
	}
	r.closed = true

	if r.transport != nil {
		return r.transport.Close()
	}
	return nil
}

// cmeCode maps a dispatch failure to its CME error code.
func cmeCode(err error) int {
	switch {
	case errors.Is(err, command.ErrNotSupported):
		return at.CmeOperationNotAllowed
	case errors.Is(err, command.ErrInvalidArgs):
		return at.CmeInvalidParameter
	default:
		return at.CmeUnknown
	}
}
