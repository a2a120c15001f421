package main

import (
	"strconv"
	"strings"

	"i4.energy/across/atdev/command"
	"i4.energy/across/atdev/device"
)

// Version is the firmware revision reported by AT+GMR.
const Version = "1.0.0"

// echoModule wires AT+ECHO to the responder's echo mode.
type echoModule struct {
	responder *device.Responder
}

func (m *echoModule) Exec() (string, error) {
	if m.responder.Echo() {
		return "ECHO: ON", nil
	}
	return "ECHO: OFF", nil
}

func (m *echoModule) Query() (string, error) {
	if m.responder.Echo() {
		return "1", nil
	}
	return "0", nil
}

func (m *echoModule) Test() (string, error) {
	return "Valid: 0,1", nil
}

func (m *echoModule) Set(args command.Args) (string, error) {
	value, ok := args.Get(0)
	if !ok {
		return "", command.ErrInvalidArgs
	}
	switch value {
	case "0":
		m.responder.SetEcho(false)
		return "ECHO OFF", nil
	case "1":
		m.responder.SetEcho(true)
		return "ECHO ON", nil
	default:
		return "", command.ErrInvalidArgs
	}
}

// cmeeModule wires AT+CMEE to the responder's error reporting mode.
// Level 0 selects the bare ERROR result; 1 and 2 select +CME ERROR.
type cmeeModule struct {
	command.Base
	responder *device.Responder
}

func (m *cmeeModule) Query() (string, error) {
	if m.responder.VerboseErrors() {
		return "+CMEE: 1", nil
	}
	return "+CMEE: 0", nil
}

func (m *cmeeModule) Test() (string, error) {
	return "+CMEE: (0-2)", nil
}

func (m *cmeeModule) Set(args command.Args) (string, error) {
	value, ok := args.Get(0)
	if !ok {
		return "", command.ErrInvalidArgs
	}
	switch value {
	case "0":
		m.responder.SetVerboseErrors(false)
		return "", nil
	case "1", "2":
		m.responder.SetVerboseErrors(true)
		return "", nil
	default:
		return "", command.ErrInvalidArgs
	}
}

// iprModule holds the advertised line rate for AT+IPR. Changing it does
// not reconfigure an open serial port; it only records the rate the
// caller asked for, as autobauding firmware does.
type iprModule struct {
	command.Base
	rate int
}

func (m *iprModule) Query() (string, error) {
	return "+IPR: " + strconv.Itoa(m.rate), nil
}

func (m *iprModule) Test() (string, error) {
	return "+IPR: (300-4000000)", nil
}

func (m *iprModule) Set(args command.Args) (string, error) {
	value, ok := args.Get(0)
	if !ok {
		return "", command.ErrInvalidArgs
	}
	rate, err := strconv.Atoi(value)
	if err != nil || rate < 300 || rate > 4000000 {
		return "", command.ErrInvalidArgs
	}
	m.rate = rate
	return "", nil
}

// builtinCommands assembles the daemon's command table. The responder is
// needed so AT+ECHO and AT+CMEE can flip session modes at runtime.
func builtinCommands(r *device.Responder, config *Config) []command.Binding {
	var table []command.Binding

	table = append(table,
		command.Binding{Name: "AT", Handler: &command.Command{
			ExecFunc: func() (string, error) { return "", nil },
			Help:     "connectivity check",
		}},
		command.Binding{Name: "AT+GMR", Handler: &command.Command{
			ExecFunc: func() (string, error) { return Version, nil },
			Help:     "report firmware revision",
		}},
		command.Binding{Name: "AT+INFO", Handler: &command.Command{
			ExecFunc: func() (string, error) { return "atdev " + Version, nil },
			Help:     "report product identification",
		}},
		command.Binding{Name: "AT+ECHO", Handler: &echoModule{responder: r}},
		command.Binding{Name: "AT+CMEE", Handler: &cmeeModule{responder: r}},
		command.Binding{Name: "AT+IPR", Handler: &iprModule{rate: config.BaudRate}},
	)

	table = append(table, command.Binding{Name: "AT+HELP", Handler: &command.Command{
		ExecFunc: func() (string, error) {
			var b strings.Builder
			for i, binding := range table {
				if i > 0 {
					b.WriteString("\r\n")
				}
				b.WriteString(binding.Name)
				if cmd, ok := binding.Handler.(*command.Command); ok && cmd.Help != "" {
					b.WriteString(" - ")
					b.WriteString(cmd.Help)
				}
			}
			return b.String(), nil
		},
		Help: "list supported commands",
	}})

	return table
}
