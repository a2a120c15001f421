package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"i4.energy/across/atdev/command"
	"i4.energy/across/atdev/device"
)

type testDialer struct {
	transport device.Transport
}

func (d testDialer) Dial(context.Context) (device.Transport, error) {
	return d.transport, nil
}

// newBuiltinDispatcher wires the daemon's command table to a responder
// that never runs; handlers are exercised directly through the
// dispatcher.
func newBuiltinDispatcher(t *testing.T) (*command.Dispatcher, *device.Responder) {
	t.Helper()

	dispatcher := command.New()
	config, err := device.NewConfigBuilder().
		WithDialer(testDialer{device.NewTestTransport()}).
		WithDispatcher(dispatcher).
		Build()
	if err != nil {
		t.Fatalf("unexpected error from Build(): %v", err)
	}

	responder, err := device.New(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error from New(): %v", err)
	}
	t.Cleanup(func() { responder.Close() })

	dispatcher.SetCommands(builtinCommands(responder, &Config{BaudRate: 115200}))
	return dispatcher, responder
}

func TestBuiltinCommands(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "Ping", input: "AT", want: ""},
		{name: "Firmware revision", input: "AT+GMR", want: Version},
		{name: "Product info", input: "AT+INFO", want: "atdev " + Version},
		{name: "Echo query default", input: "AT+ECHO?", want: "0"},
		{name: "Echo test", input: "AT+ECHO=?", want: "Valid: 0,1"},
		{name: "Echo invalid value", input: "AT+ECHO=5", wantErr: command.ErrInvalidArgs},
		{name: "CMEE query default", input: "AT+CMEE?", want: "+CMEE: 0"},
		{name: "CMEE test", input: "AT+CMEE=?", want: "+CMEE: (0-2)"},
		{name: "CMEE exec not supported", input: "AT+CMEE", wantErr: command.ErrNotSupported},
		{name: "CMEE invalid value", input: "AT+CMEE=9", wantErr: command.ErrInvalidArgs},
		{name: "IPR query", input: "AT+IPR?", want: "+IPR: 115200"},
		{name: "IPR test", input: "AT+IPR=?", want: "+IPR: (300-4000000)"},
		{name: "IPR invalid rate", input: "AT+IPR=12", wantErr: command.ErrInvalidArgs},
		{name: "IPR non-numeric rate", input: "AT+IPR=fast", wantErr: command.ErrInvalidArgs},
		{name: "Unknown command", input: "AT+BOGUS", wantErr: command.ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher, _ := newBuiltinDispatcher(t)
			got, err := dispatcher.Execute(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Execute(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEchoModuleTogglesResponder(t *testing.T) {
	dispatcher, responder := newBuiltinDispatcher(t)

	resp, err := dispatcher.Execute("AT+ECHO=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ECHO ON" {
		t.Errorf("response = %q, want %q", resp, "ECHO ON")
	}
	if !responder.Echo() {
		t.Error("responder echo should be on")
	}

	if resp, _ := dispatcher.Execute("AT+ECHO?"); resp != "1" {
		t.Errorf("query = %q, want %q", resp, "1")
	}
	if resp, _ := dispatcher.Execute("AT+ECHO"); resp != "ECHO: ON" {
		t.Errorf("exec = %q, want %q", resp, "ECHO: ON")
	}

	if _, err := dispatcher.Execute("AT+ECHO=0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if responder.Echo() {
		t.Error("responder echo should be off")
	}
}

func TestCmeeModuleTogglesResponder(t *testing.T) {
	dispatcher, responder := newBuiltinDispatcher(t)

	if _, err := dispatcher.Execute("AT+CMEE=2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !responder.VerboseErrors() {
		t.Error("verbose errors should be on after AT+CMEE=2")
	}
	if resp, _ := dispatcher.Execute("AT+CMEE?"); resp != "+CMEE: 1" {
		t.Errorf("query = %q, want %q", resp, "+CMEE: 1")
	}

	if _, err := dispatcher.Execute("AT+CMEE=0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if responder.VerboseErrors() {
		t.Error("verbose errors should be off after AT+CMEE=0")
	}
}

func TestIprModuleStoresRate(t *testing.T) {
	dispatcher, _ := newBuiltinDispatcher(t)

	if _, err := dispatcher.Execute("AT+IPR=9600"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp, _ := dispatcher.Execute("AT+IPR?"); resp != "+IPR: 9600" {
		t.Errorf("query = %q, want %q", resp, "+IPR: 9600")
	}
}

func TestHelpListsAllCommands(t *testing.T) {
	dispatcher, _ := newBuiltinDispatcher(t)

	resp, err := dispatcher.Execute("AT+HELP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"AT", "AT+GMR", "AT+INFO", "AT+ECHO", "AT+CMEE", "AT+IPR", "AT+HELP"} {
		if !strings.Contains(resp, name) {
			t.Errorf("help output missing %q:\n%s", name, resp)
		}
	}
	if !strings.Contains(resp, "report firmware revision") {
		t.Errorf("help output missing command description:\n%s", resp)
	}
}
