// Command swiperow-demo shows a list of swipe rows in an SDL window.
//
// Drag a row with the mouse or a finger to reveal its actions. Arrow keys
// open and close the focused row, Tab moves focus, Escape closes it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/evdevsource"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/i18n"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/icon"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/sdlhost"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowWidth  = 480
	windowHeight = 640
	rowHeight    = 72
	actionWidth  = 120
	iconSize     = 32
)

type options struct {
	configPath  string
	touchDevice string
	fontPath    string
	theme       string
	lang        string
	logLevel    string
	logFile     string
	rows        int
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "", "TOML settings file (defaults to $SWIPEROW_CONFIG)")
	flag.StringVar(&o.touchDevice, "touch-device", "", "evdev touchscreen to read directly, e.g. /dev/input/event1")
	flag.StringVar(&o.fontPath, "font", "", "TTF font for row labels")
	flag.StringVar(&o.theme, "theme", "", `"dark" or a TOML theme file; empty uses the light theme`)
	flag.StringVar(&o.lang, "lang", os.Getenv("LANG"), "language for action labels")
	flag.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	flag.StringVar(&o.logFile, "log-file", "", "also write logs to this file")
	flag.IntVar(&o.rows, "rows", 8, "number of rows")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()
	if opts.logFile != "" {
		swiperow.SetLogPath(opts.logFile)
	}
	if err := run(opts); err != nil {
		swiperow.GetLogger().Error("Demo failed", "error", err)
		swiperow.CloseLogger()
		os.Exit(1)
	}
	swiperow.CloseLogger()
}

func loadTheme(name, fontPath string) (sdlhost.Theme, error) {
	var theme sdlhost.Theme
	switch name {
	case "":
		theme = sdlhost.DefaultTheme()
	case "dark":
		theme = sdlhost.DarkTheme("")
	default:
		var err error
		if theme, err = sdlhost.LoadTheme(name); err != nil {
			return theme, err
		}
	}
	if fontPath != "" {
		theme.FontPath = fontPath
	}
	return theme, nil
}

func loadSettings(path string) (swiperow.Settings, error) {
	if path != "" {
		return swiperow.LoadSettings(path)
	}
	return swiperow.SettingsFromEnv()
}

// languageTag turns a POSIX locale like de_DE.UTF-8 into de-DE.
func languageTag(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

type rowConfig struct {
	title string
	left  i18n.Action
	right i18n.Action
}

func rowConfigs(n int) []rowConfig {
	configs := make([]rowConfig, n)
	for i := range configs {
		configs[i] = rowConfig{title: fmt.Sprintf("Message %d", i+1), left: i18n.ActionArchive, right: i18n.ActionDelete}
		if i%3 == 2 {
			configs[i].left = i18n.ActionFlag
		}
	}
	return configs
}

var actionColors = map[i18n.Action]sdl.Color{
	i18n.ActionArchive: sdlhost.HexToColor(0x3478F6),
	i18n.ActionDelete:  sdlhost.HexToColor(0xE6373C),
	i18n.ActionFlag:    sdlhost.HexToColor(0xF59B23),
}

var actionIcons = map[i18n.Action]string{
	i18n.ActionArchive: "archive",
	i18n.ActionDelete:  "delete",
	i18n.ActionFlag:    "flag",
}

type demo struct {
	window   *sdlhost.Window
	animator *swiperow.FrameAnimator
	rows     []*sdlhost.Row
	keys     []*sdlhost.KeyControl
	focus    int
	open     map[*swiperow.Controller]bool
	icons    map[i18n.Action]*sdl.Texture
	loc      *i18n.Localizer
}

func run(opts options) error {
	if opts.logLevel != "" {
		swiperow.SetRawLogLevel(opts.logLevel)
	}

	settings, err := loadSettings(opts.configPath)
	if err != nil {
		return err
	}

	bundle, err := i18n.NewBundle()
	if err != nil {
		return err
	}
	loc := bundle.Localizer(languageTag(opts.lang), "en")

	theme, err := loadTheme(opts.theme, opts.fontPath)
	if err != nil {
		return err
	}
	sdlhost.SetTheme(theme)

	window, err := sdlhost.OpenWindow("swiperow", windowWidth, windowHeight, sdlhost.WindowOptions{Resizable: true}, theme.FontPath, 20)
	if err != nil {
		return err
	}
	defer window.Close()

	d := &demo{
		window:   window,
		animator: swiperow.NewFrameAnimator(),
		open:     make(map[*swiperow.Controller]bool),
		icons:    make(map[i18n.Action]*sdl.Texture),
		loc:      loc,
	}
	defer d.destroyIcons()

	if err := d.buildRows(settings, rowConfigs(opts.rows)); err != nil {
		return err
	}
	d.layout(window.Size())
	d.updateTitle()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var touch *evdevsource.TouchSource
	if opts.touchDevice != "" {
		w, h := window.Size()
		touch, err = evdevsource.Open(evdevsource.Options{DevicePath: opts.touchDevice, ScreenWidth: w, ScreenHeight: h})
		if err != nil {
			return err
		}
		touch.Run(ctx)
	}

	d.loop(ctx, touch)

	if touch != nil {
		stop()
		if err := touch.Wait(); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) buildRows(settings swiperow.Settings, configs []rowConfig) error {
	for i, cfg := range configs {
		c := swiperow.New(settings, d.animator)
		c.SetObserver(d.observer(cfg.title))

		bounds := sdl.Rect{X: 0, Y: int32(i * rowHeight), W: windowWidth, H: rowHeight}
		row := sdlhost.NewRow(c, cfg.title, bounds)

		left, err := d.actionView(cfg.left)
		if err != nil {
			return err
		}
		right, err := d.actionView(cfg.right)
		if err != nil {
			return err
		}
		row.SetActionView(swiperow.SideLeft, left)
		row.SetActionView(swiperow.SideRight, right)

		d.rows = append(d.rows, row)
		d.keys = append(d.keys, &sdlhost.KeyControl{Controller: c, Animated: true})
	}
	return nil
}

func (d *demo) actionView(action i18n.Action) (*sdlhost.ActionView, error) {
	view := sdlhost.NewActionView(d.loc.ActionLabel(action), actionColors[action], actionWidth)

	texture, ok := d.icons[action]
	if !ok {
		img, err := icon.Builtin(actionIcons[action], iconSize, iconSize)
		if err != nil {
			return nil, err
		}
		texture, err = sdlhost.TextureFromRGBA(d.window.Renderer, img)
		if err != nil {
			return nil, err
		}
		d.icons[action] = texture
	}

	view.Icon = texture
	return view, nil
}

func (d *demo) destroyIcons() {
	for _, texture := range d.icons {
		texture.Destroy()
	}
}

func (d *demo) observer(title string) swiperow.Observer {
	logger := swiperow.GetLogger().With("row", title)
	return swiperow.ObserverFuncs{
		OnShouldShowSide: func(c *swiperow.Controller, side swiperow.Side) bool {
			// Only one row may be open at a time.
			for _, row := range d.rows {
				if row.Controller != c && row.Controller.CurrentSide() != swiperow.SideNone {
					row.Controller.Close(true)
				}
			}
			return true
		},
		OnHideSide: func(c *swiperow.Controller, side swiperow.Side) {
			logger.Debug("Side hidden", "side", side)
		},
		OnCurrentSideChanged: func(c *swiperow.Controller) {
			logger.Info("Row side changed", "side", c.CurrentSide())
			if c.CurrentSide() == swiperow.SideNone {
				delete(d.open, c)
			} else {
				d.open[c] = true
			}
			d.updateTitle()
		},
	}
}

func (d *demo) updateTitle() {
	title := d.loc.SideHint(swiperow.SideLeft, i18n.ActionArchive)
	if n := len(d.open); n > 0 {
		title = d.loc.RowsOpen(n)
	}
	d.window.Window.SetTitle(title)
}

// loop runs until the window closes or ctx is cancelled. Drags from the
// evdev source carry no position, so they go to the focused row.
func (d *demo) loop(ctx context.Context, touch *evdevsource.TouchSource) {
	for ctx.Err() == nil {
		for event := sdl.WaitEventTimeout(16); event != nil; event = sdl.PollEvent() {
			if !d.handleEvent(event) {
				return
			}
		}

		if touch != nil && !touch.Pump(d.rows[d.focus].Controller) {
			swiperow.GetLogger().Warn("Touch device stopped")
			touch = nil
		}

		d.animator.Step()
		d.render()
	}
}

func (d *demo) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return false
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			d.layout(e.Data1, e.Data2)
		}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_TAB {
			d.focus = (d.focus + 1) % len(d.rows)
			return true
		}
		if d.keys[d.focus].HandleEvent(event) {
			return true
		}
	}

	for i, row := range d.rows {
		if row.HandleEvent(event) {
			d.focus = i
			break
		}
	}
	return true
}

func (d *demo) layout(w, h int32) {
	for i, row := range d.rows {
		row.SetBounds(sdl.Rect{X: 0, Y: int32(i * rowHeight), W: w, H: rowHeight})
		row.SetWindowSize(w, h)
	}
}

func (d *demo) render() {
	d.window.Clear()
	for _, row := range d.rows {
		row.Render(d.window.Renderer, d.window.Font, d.window.Textures)
	}

	focused := d.rows[d.focus].Bounds
	d.window.Renderer.SetDrawColor(255, 255, 255, 90)
	d.window.Renderer.DrawRect(&focused)

	d.window.Present()
}
