package device

import (
	"context"
	"errors"
	"fmt"

	"go.bug.st/serial"
)

// SerialDialer opens the device's command port over a serial line using
// go.bug.st/serial.
type SerialDialer struct {
	// PortName is the path to the serial device (e.g. "/dev/ttyUSB0").
	PortName string
	// BaudRate is the line speed. Zero selects 115200.
	BaudRate int
}

// Dial opens the configured serial port and returns it as a Transport.
func (d SerialDialer) Dial(ctx context.Context) (Transport, error) {
	if ctx == nil {
		return nil, errors.New("device: context is nil")
	}
	if d.PortName == "" {
		return nil, errors.New("device: serial port name is required")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	baud := d.BaudRate
	if baud == 0 {
		baud = 115200
	}

	port, err := serial.Open(d.PortName, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial port %q: %w", d.PortName, err)
	}
	return port, nil
}

var _ Dialer = SerialDialer{}
