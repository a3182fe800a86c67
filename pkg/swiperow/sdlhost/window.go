package sdlhost

import (
	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/constants"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Window wraps the SDL window, renderer and label font used to host rows.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Font     *ttf.Font // Nil when no font was configured
	Textures *TextureCache
	Title    string
}

// OpenWindow initializes SDL and TTF and creates a window. An empty
// fontPath skips text rendering.
func OpenWindow(title string, width, height int32, opts WindowOptions, fontPath string, fontSize int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, swiperow.NewInfrastructureError("sdl_init", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, swiperow.NewInfrastructureError("ttf_init", err)
	}

	if opts.IsZero() {
		opts = WindowOptions{Resizable: true}
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, swiperow.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		ttf.Quit()
		sdl.Quit()
		return nil, swiperow.NewInfrastructureError("create_renderer", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	w := &Window{
		Window:   window,
		Renderer: renderer,
		Textures: NewTextureCache(),
		Title:    title,
	}

	if fontPath != "" {
		font, err := ttf.OpenFont(fontPath, fontSize)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load font; labels disabled", "path", fontPath, "error", err)
		} else {
			w.Font = font
		}
	}

	return w, nil
}

// Size returns the current window size in pixels.
func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

// Clear fills the frame with the theme background.
func (w *Window) Clear() {
	setDrawColor(w.Renderer, CurrentTheme().BackgroundColor)
	w.Renderer.Clear()
}

// Present shows the frame.
func (w *Window) Present() {
	w.Renderer.Present()
}

// Close releases every SDL resource owned by the window and shuts SDL down.
func (w *Window) Close() {
	w.Textures.Destroy()
	if w.Font != nil {
		w.Font.Close()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
	ttf.Quit()
	sdl.Quit()
}
