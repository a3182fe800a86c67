package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	output    = &swapWriter{}

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Without a path, logs go to stdout only.
func SetLogPath(path string) {
	logPath = path
}

// swapWriter lets the destination change after loggers were created.
type swapWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *swapWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

func (s *swapWriter) isSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w != nil
}

// SetLogWriter redirects every logger, including ones already handed out,
// to w. It replaces the stdout and log file destinations.
func SetLogWriter(w io.Writer) {
	output.set(w)
}

func setup() {
	setupOnce.Do(func() {
		if output.isSet() {
			return
		}

		if logPath == "" {
			output.set(os.Stdout)
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			output.set(os.Stdout)
			return
		}

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			output.set(os.Stdout)
			return
		}

		output.set(io.MultiWriter(os.Stdout, logFile))
	})
}

func newLogger(level *slog.LevelVar, component string) *slog.Logger {
	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(handler).With("component", component)
}

// GetLogger returns the application-facing logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		setup()
		logger = newLogger(levelVar, "app")
	})
	return logger
}

// GetInternalLogger returns the logger used by the swipe machinery itself.
// It defaults to LevelError so library consumers are not flooded.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		setup()
		internalLogger = newLogger(internalLevelVar, "swiperow")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a raw level name to a slog.Level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
