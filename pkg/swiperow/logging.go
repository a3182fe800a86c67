package swiperow

import (
	"log/slog"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line is written to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInteractionLogLevel sets the level of the logger used by controllers.
// Settle decisions, vetoes and forced resets are logged at debug.
func SetInteractionLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
