package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// SerialPort is the path to the command port (e.g. "/dev/ttyUSB0")
	SerialPort string
	// BaudRate is the baud rate for the serial command port (e.g. 115200)
	BaudRate int
	// Listen is a TCP listen address (e.g. "0.0.0.0:2323"). When set,
	// the daemon serves command sessions over TCP instead of serial.
	Listen string
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string
	// Echo enables command echo at session start
	Echo bool
	// VerboseErrors enables "+CME ERROR" reporting at session start
	VerboseErrors bool
	// Greeting is a banner written when a session starts
	Greeting string
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.SerialPort = "/dev/ttyUSB0"
		c.BaudRate = 115200
		c.LogLevel = "info"
		return nil
	}
}

// WithFile loads configuration from a YAML file. An empty path is a
// no-op, so the option can always be part of the chain.
func WithFile(path string) ConfigOption {
	return func(c *Config) error {
		if path == "" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}

		var file struct {
			SerialPort    string `yaml:"serial_port"`
			BaudRate      int    `yaml:"baud_rate"`
			Listen        string `yaml:"listen"`
			LogLevel      string `yaml:"log_level"`
			Echo          *bool  `yaml:"echo"`
			VerboseErrors *bool  `yaml:"verbose_errors"`
			Greeting      string `yaml:"greeting"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse config file %q: %w", path, err)
		}

		if file.SerialPort != "" {
			c.SerialPort = file.SerialPort
		}
		if file.BaudRate != 0 {
			c.BaudRate = file.BaudRate
		}
		if file.Listen != "" {
			c.Listen = file.Listen
		}
		if file.LogLevel != "" {
			c.LogLevel = file.LogLevel
		}
		if file.Echo != nil {
			c.Echo = *file.Echo
		}
		if file.VerboseErrors != nil {
			c.VerboseErrors = *file.VerboseErrors
		}
		if file.Greeting != "" {
			c.Greeting = file.Greeting
		}

		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if serial := os.Getenv("SERIAL_PORT"); serial != "" {
			c.SerialPort = serial
		}

		if baud := os.Getenv("BAUD_RATE"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.BaudRate = b
			}
		}

		if listen := os.Getenv("LISTEN"); listen != "" {
			c.Listen = listen
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		if echo := os.Getenv("ECHO"); echo != "" {
			if b, err := strconv.ParseBool(echo); err == nil {
				c.Echo = b
			}
		}

		if verbose := os.Getenv("VERBOSE_ERRORS"); verbose != "" {
			if b, err := strconv.ParseBool(verbose); err == nil {
				c.VerboseErrors = b
			}
		}

		if greeting := os.Getenv("GREETING"); greeting != "" {
			c.Greeting = greeting
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "baud-rate":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.BaudRate = b
				}
			case "listen":
				c.Listen = f.Value.String()
			case "log-level":
				c.LogLevel = f.Value.String()
			case "echo":
				if b, err := strconv.ParseBool(f.Value.String()); err == nil {
					c.Echo = b
				}
			case "verbose-errors":
				if b, err := strconv.ParseBool(f.Value.String()); err == nil {
					c.VerboseErrors = b
				}
			case "greeting":
				c.Greeting = f.Value.String()
			}

		})
		return nil
	}

}
