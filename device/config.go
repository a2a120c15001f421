package device

import (
	"io"
	"log/slog"

	"i4.energy/across/atdev/command"
)

// Config holds the settings a Responder is constructed with.
type Config struct {
	dialer        Dialer
	dispatcher    *command.Dispatcher
	logger        *slog.Logger
	echo          bool
	verboseErrors bool
	greeting      string
}

func (c *Config) validate() error {
	if c.dialer == nil {
		return ErrNoDialer
	}
	if c.dispatcher == nil {
		return ErrNoDispatcher
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// ConfigBuilder assembles a Config step by step.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder returns a builder with all settings at their zero
// defaults: echo off, terse errors, no greeting, discarded logs.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithDialer sets the Dialer used to open the command transport.
func (b *ConfigBuilder) WithDialer(d Dialer) *ConfigBuilder {
	b.config.dialer = d
	return b
}

// WithDispatcher sets the command dispatcher every received line is
// routed through.
func (b *ConfigBuilder) WithDispatcher(d *command.Dispatcher) *ConfigBuilder {
	b.config.dispatcher = d
	return b
}

// WithLogger sets the logger used by the session loop.
func (b *ConfigBuilder) WithLogger(logger *slog.Logger) *ConfigBuilder {
	b.config.logger = logger
	return b
}

// WithEcho sets the initial command echo mode (ATE-style). It can be
// changed at runtime through Responder.SetEcho.
func (b *ConfigBuilder) WithEcho(on bool) *ConfigBuilder {
	b.config.echo = on
	return b
}

// WithVerboseErrors sets the initial error reporting mode. When on,
// failures are reported as "+CME ERROR: <code>" instead of a bare
// "ERROR".
func (b *ConfigBuilder) WithVerboseErrors(on bool) *ConfigBuilder {
	b.config.verboseErrors = on
	return b
}

// WithGreeting sets a banner written once when the session loop starts.
func (b *ConfigBuilder) WithGreeting(greeting string) *ConfigBuilder {
	b.config.greeting = greeting
	return b
}

// Build validates the configuration and returns it.
func (b *ConfigBuilder) Build() (Config, error) {
	if err := b.config.validate(); err != nil {
		return Config{}, err
	}
	b.config.setDefaults()
	return b.config, nil
}
