package device

import (
	"context"
	"errors"
	"testing"
)

func TestSerialDialer_Dial_EmptyPortName(t *testing.T) {
	dialer := SerialDialer{
		PortName: "",
	}

	transport, err := dialer.Dial(context.Background())

	if err == nil {
		t.Error("expected error for empty port name")
	}
	if transport != nil {
		t.Error("expected nil transport for empty port name")
	}
	if err.Error() != "device: serial port name is required" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSerialDialer_Dial_NilContext(t *testing.T) {
	dialer := SerialDialer{
		PortName: "/dev/ttyUSB0",
	}

	transport, err := dialer.Dial(nil)

	if err == nil {
		t.Error("expected error for nil context")
	}
	if transport != nil {
		t.Error("expected nil transport for nil context")
	}
	if err.Error() != "device: context is nil" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSerialDialer_Dial_ContextCanceled(t *testing.T) {
	dialer := SerialDialer{
		PortName: "/dev/nonexistent",
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transport, err := dialer.Dial(ctx)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
	if transport != nil {
		t.Error("expected nil transport for canceled context")
	}
}
