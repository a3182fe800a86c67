// Package constants defines shared constants and default tuning values
// used throughout the swiperow package.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// ConfigPathEnvVar is the environment variable naming a TOML settings file.
const ConfigPathEnvVar = "SWIPEROW_CONFIG"

// LogLevelEnvVar is the environment variable holding a raw log level ("debug", "info", ...).
const LogLevelEnvVar = "SWIPEROW_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default interaction tuning. Distances are in the host's native units
// (pixels for the SDL host), velocities in units per second.
const (
	DefaultAnimationDuration             = 150 * time.Millisecond // Open/close settle duration
	DefaultOpenDistanceThreshold float64 = 80                     // Release distance that commits to open
	DefaultOpenVelocityThreshold float64 = 600                    // Release speed that commits to open below the distance threshold
	DefaultMaxOverscroll         float64 = 40                     // Rubber-band limit past a side's reveal width
)

// Default gesture recognition values.
const (
	DefaultDragDeadZone   float64 = 6                      // Horizontal movement before a press becomes a drag
	DefaultVelocityWindow         = 100 * time.Millisecond // Sample window used to estimate release velocity
)
