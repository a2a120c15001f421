package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"i4.energy/across/atdev/command"
	"i4.energy/across/atdev/device"
)

func main() {
	flag.String("serial-port", "/dev/ttyUSB0", "Serial port to serve AT commands on")
	flag.Int("baud-rate", 115200, "Baud rate for serial communication")
	flag.String("listen", "", "TCP listen address (e.g. 0.0.0.0:2323); overrides serial mode")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Bool("echo", false, "Enable command echo at session start")
	flag.Bool("verbose-errors", false, "Report failures as +CME ERROR codes")
	flag.String("greeting", "", "Banner written when a session starts")
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithFile(*configPath), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("Starting AT command responder", "version", Version)

	if config.Listen != "" {
		err = serveTCP(ctx, logger, config)
	} else {
		err = serveSerial(ctx, logger, config)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Responder stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("Shutdown complete")
}

// serveSerial answers commands on the configured serial port until the
// context is cancelled or the port goes away.
func serveSerial(ctx context.Context, logger *slog.Logger, config *Config) error {
	dialer := device.SerialDialer{
		PortName: config.SerialPort,
		BaudRate: config.BaudRate,
	}

	logger.Info("Serving on serial port", "port", config.SerialPort, "baud", config.BaudRate)
	return serveSession(ctx, logger, config, dialer)
}

// serveTCP accepts TCP connections and runs one command session per
// connection, the way a modem exposed through a terminal server does.
func serveTCP(ctx context.Context, logger *slog.Logger, config *Config) error {
	listener, err := net.Listen("tcp", config.Listen)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	logger.Info("Serving on TCP", "address", config.Listen)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		sessionLogger := logger.With("remote", conn.RemoteAddr().String())
		go func() {
			if err := serveSession(ctx, sessionLogger, config, connDialer{conn}); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
				sessionLogger.Error("Session failed", "error", err)
			}
		}()
	}
}

// serveSession builds a responder over the given dialer, registers the
// built-in command set, and runs the session loop to completion.
func serveSession(ctx context.Context, logger *slog.Logger, config *Config, dialer device.Dialer) error {
	dispatcher := command.New()

	responderConfig, err := device.NewConfigBuilder().
		WithDialer(dialer).
		WithDispatcher(dispatcher).
		WithLogger(logger.With("component", "responder")).
		WithEcho(config.Echo).
		WithVerboseErrors(config.VerboseErrors).
		WithGreeting(config.Greeting).
		Build()
	if err != nil {
		return err
	}

	responder, err := device.New(ctx, responderConfig)
	if err != nil {
		return err
	}
	defer responder.Close()

	dispatcher.SetCommands(builtinCommands(responder, config))

	err = responder.Run(ctx)
	if errors.Is(err, io.EOF) {
		logger.Info("Session ended")
		return nil
	}
	return err
}

// connDialer adapts an already-accepted net.Conn to the Dialer contract.
type connDialer struct {
	conn net.Conn
}

func (d connDialer) Dial(context.Context) (device.Transport, error) {
	return d.conn, nil
}
