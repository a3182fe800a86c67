package icon

import (
	"strings"
	"testing"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opaquePixels(t *testing.T, name string) int {
	t.Helper()
	img, err := Builtin(name, 32, 32)
	require.NoError(t, err)

	count := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			count++
		}
	}
	return count
}

func TestBuiltinIconsDraw(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			assert.Greater(t, opaquePixels(t, name), 0)
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"archive", "delete", "flag"}, Names())
}

func TestRasterizeScalesToTarget(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><path fill="#FF0000" d="M0 0h10v10H0z"/></svg>`

	img, err := Rasterize(strings.NewReader(svg), 20, 8)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	center := img.RGBAAt(10, 4)
	assert.Equal(t, uint8(255), center.R)
	assert.Equal(t, uint8(255), center.A)
}

func TestRasterizeErrors(t *testing.T) {
	_, err := Rasterize(strings.NewReader("<svg"), 0, 10)
	assert.True(t, swiperow.IsInfrastructureError(err))

	_, err = Builtin("missing", 16, 16)
	assert.True(t, swiperow.IsInfrastructureError(err))
}
