package swiperow

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettingsOverridesDefaults(t *testing.T) {
	settings, err := DecodeSettings([]byte(`
animation_duration = "250ms"
open_velocity_threshold = 900.0
`))
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, settings.AnimationDuration)
	assert.Equal(t, 900.0, settings.OpenVelocityThreshold)
	assert.Equal(t, constants.DefaultOpenDistanceThreshold, settings.OpenDistanceThreshold)
	assert.Equal(t, constants.DefaultMaxOverscroll, settings.MaxOverscroll)
}

func TestDecodeSettingsRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"syntax":        `animation_duration = `,
		"duration":      `animation_duration = "soon"`,
		"threshold":     `open_distance_threshold = 0.0`,
		"overscroll":    `max_overscroll = -1.0`,
		"unknown key":   `open_distance = 12.0`,
		"negative time": `animation_duration = "-1s"`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSettings([]byte(input))
			require.Error(t, err)
			assert.True(t, IsInfrastructureError(err))
		})
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swipe.toml")
	require.NoError(t, os.WriteFile(path, []byte(`open_distance_threshold = 64.0`), 0644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 64.0, settings.OpenDistanceThreshold)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv(constants.ConfigPathEnvVar, "")
	settings, err := SettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)

	t.Setenv(constants.ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.toml"))
	settings, err = SettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)

	path := filepath.Join(t.TempDir(), "swipe.toml")
	require.NoError(t, os.WriteFile(path, []byte(`max_overscroll = 0.0`), 0644))
	t.Setenv(constants.ConfigPathEnvVar, path)
	settings, err = SettingsFromEnv()
	require.NoError(t, err)
	assert.Zero(t, settings.MaxOverscroll)
}
