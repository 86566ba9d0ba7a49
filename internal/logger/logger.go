package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Global logger instance
	Logger zerolog.Logger

	// output is shared by every logger handed out, so component loggers created
	// at package init follow the destination chosen later by Initialize.
	output = &switchWriter{w: consoleWriter(os.Stdout)}

	rotating *lumberjack.Logger
)

func init() {
	Logger = newLogger()
	log.Logger = Logger
}

// Options configures the global logger.
type Options struct {
	Level string
	// Console receives human-readable output; nil means stdout.
	Console io.Writer
	// File, when set, duplicates log output into a size-rotated file.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Initialize sets up the global logger with appropriate configuration
func Initialize(opts Options) {
	// Set time format to be more human-readable
	zerolog.TimeFieldFormat = time.RFC3339

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	var w io.Writer = consoleWriter(console)

	if rotating != nil {
		rotating.Close()
		rotating = nil
	}
	if opts.File != "" {
		rotating = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10), // Megabytes
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28), // Days
			Compress:   true,
		}
		w = zerolog.MultiLevelWriter(w, rotating)
	}
	output.set(w)

	// Set log level
	zerolog.SetGlobalLevel(ParseLevel(opts.Level))

	// Replace standard log with zerolog
	Logger = newLogger()
	log.Logger = Logger
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Close flushes and closes the rotating log file, if any.
func Close() error {
	if rotating == nil {
		return nil
	}
	return rotating.Close()
}

// Get returns the global logger instance
func Get() *zerolog.Logger {
	return &Logger
}

// GetForComponent returns a logger with a component field for better filtering
func GetForComponent(component string) zerolog.Logger {
	return zerolog.New(output).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// SetOutput redirects every logger to w. Tests use it to capture log lines.
func SetOutput(w io.Writer) {
	output.set(w)
}

func newLogger() zerolog.Logger {
	return zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger()
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    false,
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type switchWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}
