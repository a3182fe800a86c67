package sdlhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptionsFlags(t *testing.T) {
	assert.True(t, WindowOptions{}.IsZero())

	flags := WindowOptions{Resizable: true, HighDPI: true}.ToSDLFlags()
	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.NotZero(t, flags&sdl.WINDOW_ALLOW_HIGHDPI)
	assert.Zero(t, flags&sdl.WINDOW_BORDERLESS)

	hidden := WindowOptions{Hidden: true}.ToSDLFlags()
	assert.Zero(t, hidden&sdl.WINDOW_SHOWN)
}
