package swiperow

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow/constants"
	"github.com/BurntSushi/toml"
)

// Settings tunes the swipe interaction. Distances are in the host's native
// units and velocities in units per second.
type Settings struct {
	AnimationDuration     time.Duration // Duration of open/close settle animations
	OpenDistanceThreshold float64       // Release distance that commits to open
	OpenVelocityThreshold float64       // Release speed that commits to open below the distance threshold
	MaxOverscroll         float64       // Rubber-band limit past a side's reveal width, 0 disables overscroll
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		AnimationDuration:     constants.DefaultAnimationDuration,
		OpenDistanceThreshold: constants.DefaultOpenDistanceThreshold,
		OpenVelocityThreshold: constants.DefaultOpenVelocityThreshold,
		MaxOverscroll:         constants.DefaultMaxOverscroll,
	}
}

// Validate reports the first setting that cannot drive a controller.
func (s Settings) Validate() error {
	switch {
	case s.AnimationDuration < 0:
		return fmt.Errorf("animation duration must not be negative, got %s", s.AnimationDuration)
	case s.OpenDistanceThreshold <= 0:
		return fmt.Errorf("open distance threshold must be positive, got %g", s.OpenDistanceThreshold)
	case s.OpenVelocityThreshold <= 0:
		return fmt.Errorf("open velocity threshold must be positive, got %g", s.OpenVelocityThreshold)
	case s.MaxOverscroll < 0:
		return fmt.Errorf("max overscroll must not be negative, got %g", s.MaxOverscroll)
	}
	return nil
}

// settingsFile mirrors Settings in the on-disk TOML shape. Omitted keys keep their defaults.
//
//	animation_duration = "150ms"
//	open_distance_threshold = 80.0
//	open_velocity_threshold = 600.0
//	max_overscroll = 40.0
type settingsFile struct {
	AnimationDuration     *string  `toml:"animation_duration"`
	OpenDistanceThreshold *float64 `toml:"open_distance_threshold"`
	OpenVelocityThreshold *float64 `toml:"open_velocity_threshold"`
	MaxOverscroll         *float64 `toml:"max_overscroll"`
}

// DecodeSettings parses TOML settings on top of DefaultSettings.
func DecodeSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()

	var file settingsFile
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return settings, NewInfrastructureError("decode_settings", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return settings, NewInfrastructureError("decode_settings", fmt.Errorf("unknown key %q", undecoded[0].String()))
	}

	if file.AnimationDuration != nil {
		d, err := time.ParseDuration(*file.AnimationDuration)
		if err != nil {
			return settings, NewInfrastructureError("decode_settings", fmt.Errorf("animation_duration: %w", err))
		}
		settings.AnimationDuration = d
	}
	if file.OpenDistanceThreshold != nil {
		settings.OpenDistanceThreshold = *file.OpenDistanceThreshold
	}
	if file.OpenVelocityThreshold != nil {
		settings.OpenVelocityThreshold = *file.OpenVelocityThreshold
	}
	if file.MaxOverscroll != nil {
		settings.MaxOverscroll = *file.MaxOverscroll
	}

	if err := settings.Validate(); err != nil {
		return settings, NewInfrastructureError("decode_settings", err)
	}
	return settings, nil
}

// LoadSettings reads a TOML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), NewInfrastructureError("load_settings", err)
	}
	return DecodeSettings(data)
}

// SettingsFromEnv loads the file named by SWIPEROW_CONFIG, or returns the
// defaults when the variable is unset or the file does not exist.
func SettingsFromEnv() (Settings, error) {
	path := os.Getenv(constants.ConfigPathEnvVar)
	if path == "" {
		return DefaultSettings(), nil
	}

	settings, err := LoadSettings(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		GetLogger().Warn("Settings file not found; using defaults", "path", path)
		return DefaultSettings(), nil
	}
	return settings, err
}
