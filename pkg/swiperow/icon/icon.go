// Package icon rasterizes SVG glyphs for row action views.
package icon

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io"
	"sort"
	"strings"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed svg/*.svg
var builtin embed.FS

// Rasterize renders an SVG document into a w×h RGBA image, scaling the
// document's view box to fit.
func Rasterize(r io.Reader, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, swiperow.NewInfrastructureError("rasterize_icon", fmt.Errorf("invalid size %dx%d", w, h))
	}

	svg, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, swiperow.NewInfrastructureError("parse_icon", err)
	}
	svg.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	svg.Draw(raster, 1.0)

	return img, nil
}

// Builtin rasterizes one of the bundled glyphs by name ("archive", "delete", "flag").
func Builtin(name string, w, h int) (*image.RGBA, error) {
	data, err := builtin.ReadFile("svg/" + name + ".svg")
	if err != nil {
		return nil, swiperow.NewInfrastructureError("load_icon", fmt.Errorf("unknown icon %q: %w", name, err))
	}
	return Rasterize(bytes.NewReader(data), w, h)
}

// Names lists the bundled glyphs.
func Names() []string {
	entries, err := builtin.ReadDir("svg")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}
