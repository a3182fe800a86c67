package evdevsource

import (
	"context"
	"sync"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/internal"
	"github.com/holoplot/go-evdev"
)

// Options configures a TouchSource.
type Options struct {
	DevicePath   string  // e.g. /dev/input/event1
	Scale        float64 // Multiplier from device X units to host units
	ScaleY       float64 // Multiplier for the Y axis, 0 uses Scale
	ScreenWidth  int32   // With Scale unset, maps the device X range onto this many host units
	ScreenHeight int32   // With ScaleY unset, maps the device Y range onto this many host units
	Invert       bool    // Set when the panel's X axis is mirrored
	Buffer       int     // Channel capacity, 0 uses 64
}

type reader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// TouchSource reads a touch device on its own goroutine and queues drag
// events. The UI goroutine drains them into a controller with Pump.
type TouchSource struct {
	dev     reader
	tr      *translator
	events  chan swiperow.DragEvent
	wg      sync.WaitGroup
	errOnce sync.Once
	err     error
}

// Open opens the device and prepares a source. Call Run to start reading.
func Open(opts Options) (*TouchSource, error) {
	dev, err := evdev.Open(opts.DevicePath)
	if err != nil {
		return nil, swiperow.NewInfrastructureError("open_device", err)
	}

	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("Opened touch device", "path", opts.DevicePath, "name", name)

	if opts.Scale == 0 && opts.ScreenWidth > 0 {
		opts.Scale = panelScale(dev, opts.ScreenWidth, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	}
	if opts.ScaleY == 0 && opts.ScreenHeight > 0 {
		opts.ScaleY = panelScale(dev, opts.ScreenHeight, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	}
	return newTouchSource(dev, opts), nil
}

func newTouchSource(dev reader, opts Options) *TouchSource {
	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = 64
	}

	tr := newTranslator(opts.Scale, opts.ScaleY)
	tr.invert = opts.Invert

	return &TouchSource{
		dev:    dev,
		tr:     tr,
		events: make(chan swiperow.DragEvent, buffer),
	}
}

// panelScale maps the range the device reports for an axis onto screen
// host units. The multitouch code is tried before the single-touch one.
// Devices without a usable range are treated as 1:1.
func panelScale(dev *evdev.InputDevice, screen int32, mt, single evdev.EvCode) float64 {
	infos, err := dev.AbsInfos()
	if err != nil {
		return 1
	}

	info, ok := infos[mt]
	if !ok {
		info, ok = infos[single]
	}
	if !ok {
		return 1
	}
	return scaleForRange(info.Minimum, info.Maximum, screen)
}

func scaleForRange(min, max, screen int32) float64 {
	if max <= min || screen <= 0 {
		return 1
	}
	return float64(screen) / float64(max-min)
}

// Run reads the device until ctx is cancelled or the device fails. It
// returns immediately. Wait blocks until the reader exits and the device is
// closed, which happens on its own after a read error.
func (s *TouchSource) Run(ctx context.Context) {
	s.wg.Add(2)
	done := make(chan struct{})

	go func() {
		defer s.wg.Done()
		select {
		case <-ctx.Done():
		case <-done:
		}
		// Closing unblocks ReadOne.
		s.dev.Close()
	}()

	go func() {
		defer s.wg.Done()
		defer close(s.events)
		defer close(done)
		s.read(ctx)
	}()
}

func (s *TouchSource) read(ctx context.Context) {
	var batch []swiperow.DragEvent
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				s.fail(err)
			}
			return
		}

		batch = s.tr.feed(ev, batch[:0])
		for _, de := range batch {
			select {
			case s.events <- de:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *TouchSource) fail(err error) {
	s.errOnce.Do(func() {
		s.err = swiperow.NewInfrastructureError("read_device", err)
		internal.GetInternalLogger().Error("Touch device read failed", "error", err)
	})
}

// Events exposes the queue of drag events. It is closed when Run stops.
func (s *TouchSource) Events() <-chan swiperow.DragEvent {
	return s.events
}

// Pump delivers every queued event to sink without blocking and reports
// whether the source is still open. Call it from the UI goroutine.
func (s *TouchSource) Pump(sink swiperow.DragSink) bool {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return false
			}
			swiperow.Dispatch(sink, ev)
		default:
			return true
		}
	}
}

// Wait blocks until the reader goroutines exit and returns the read error, if any.
func (s *TouchSource) Wait() error {
	s.wg.Wait()
	return s.err
}
