package sdlhost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestDecodeThemeOverridesOnlyGivenKeys(t *testing.T) {
	base := DefaultTheme()
	theme, err := DecodeTheme([]byte(`
left_side = 0x3478F6
background = 0x000000
font = "/usr/share/fonts/label.ttf"
`), base)
	require.NoError(t, err)

	assert.Equal(t, sdl.Color{R: 0x34, G: 0x78, B: 0xF6, A: 255}, theme.LeftSideColor)
	assert.Equal(t, sdl.Color{A: 255}, theme.BackgroundColor)
	assert.Equal(t, "/usr/share/fonts/label.ttf", theme.FontPath)
	assert.Equal(t, base.RightSideColor, theme.RightSideColor)
	assert.Equal(t, base.TextColor, theme.TextColor)
}

func TestDecodeThemeRejectsBadTOML(t *testing.T) {
	_, err := DecodeTheme([]byte(`left_side = "blue"`), DefaultTheme())
	require.Error(t, err)
	assert.True(t, swiperow.IsInfrastructureError(err))
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("text = 0xFF0000\n"), 0o644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, HexToColor(0xFF0000), theme.TextColor)

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme())

	SetTheme(DarkTheme("font.ttf"))
	assert.Equal(t, "font.ttf", CurrentTheme().FontPath)
	assert.Equal(t, HexToColor(0x1E1E1E), CurrentTheme().ContentColor)
}
