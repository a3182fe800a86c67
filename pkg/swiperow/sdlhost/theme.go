package sdlhost

import (
	"os"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors used when drawing a swipe row.
type Theme struct {
	ContentColor    sdl.Color // Row content background
	TextColor       sdl.Color // Row and action label text
	LeftSideColor   sdl.Color // Default fill behind the left action view
	RightSideColor  sdl.Color // Default fill behind the right action view
	SeparatorColor  sdl.Color // Line between rows
	BackgroundColor sdl.Color // Screen background color
	FontPath        string    // Path to the label font, empty disables labels
}

var currentTheme = DefaultTheme()

// DefaultTheme returns the built-in palette: green archive on the left, red delete on the right.
func DefaultTheme() Theme {
	return Theme{
		ContentColor:    HexToColor(0xFFFFFF),
		TextColor:       HexToColor(0x202020),
		LeftSideColor:   HexToColor(0x2E9E5B),
		RightSideColor:  HexToColor(0xD64541),
		SeparatorColor:  HexToColor(0xDDDDDD),
		BackgroundColor: HexToColor(0xF2F2F2),
	}
}

// DarkTheme is a dark palette with the given label font.
func DarkTheme(fontPath string) Theme {
	return Theme{
		ContentColor:    HexToColor(0x1E1E1E),
		TextColor:       HexToColor(0xF0F0F0),
		LeftSideColor:   HexToColor(0x008080),
		RightSideColor:  HexToColor(0xB03030),
		SeparatorColor:  HexToColor(0x333333),
		BackgroundColor: HexToColor(0x000000),
		FontPath:        fontPath,
	}
}

// SetTheme replaces the theme used by every Row and Window.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// themeFile is the TOML form of a Theme. Colors are 0xRRGGBB integers;
// missing keys keep the base theme's value.
type themeFile struct {
	Content    *uint32 `toml:"content"`
	Text       *uint32 `toml:"text"`
	LeftSide   *uint32 `toml:"left_side"`
	RightSide  *uint32 `toml:"right_side"`
	Separator  *uint32 `toml:"separator"`
	Background *uint32 `toml:"background"`
	Font       *string `toml:"font"`
}

// DecodeTheme applies a TOML theme on top of base.
func DecodeTheme(data []byte, base Theme) (Theme, error) {
	var f themeFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return base, swiperow.NewInfrastructureError("decode_theme", err)
	}

	color := func(dst *sdl.Color, v *uint32) {
		if v != nil {
			*dst = HexToColor(*v)
		}
	}
	color(&base.ContentColor, f.Content)
	color(&base.TextColor, f.Text)
	color(&base.LeftSideColor, f.LeftSide)
	color(&base.RightSideColor, f.RightSide)
	color(&base.SeparatorColor, f.Separator)
	color(&base.BackgroundColor, f.Background)
	if f.Font != nil {
		base.FontPath = *f.Font
	}
	return base, nil
}

// LoadTheme reads a TOML theme file on top of the default theme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTheme(), swiperow.NewInfrastructureError("load_theme", err)
	}
	return DecodeTheme(data, DefaultTheme())
}
