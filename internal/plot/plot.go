package plot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/coord-tools/internal/coords"
)

// Canvas limits and defaults.
const (
	MinSize          = 16
	MaxSize          = 4096
	DefaultSize      = 256
	DefaultGridStep  = 1.0
	DefaultAxisColor = "#808080"
	DefaultGridColor = "#e0e0e0"

	markerRadius = 2
	extentPad    = 1.1

	// Grid lines closer than this many pixels are not drawn.
	minGridSpacing = 2.0
)

// Options controls the canvas. Zero values select the defaults.
type Options struct {
	Size      int     `json:"size"`
	Extent    float64 `json:"extent"`
	GridStep  float64 `json:"grid_step"`
	AxisColor string  `json:"axis_color"`
	GridColor string  `json:"grid_color"`
	Labels    bool    `json:"labels"`
}

// Plot is a rendered canvas plus what went into it.
type Plot struct {
	Image   *image.NRGBA
	Extent  float64
	Plotted int
	Skipped int
}

// Result is the encoded form of a Plot.
type Result struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Extent      float64 `json:"extent"`
	Plotted     int     `json:"plotted"`
	Skipped     int     `json:"skipped"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
}

// Render draws points and returns the PNG as base64.
func Render(points []coords.CartesianPoint, opts Options) (*Result, error) {
	p, err := Draw(points, opts)
	if err != nil {
		return nil, err
	}
	return p.Encode()
}

// Draw plots points on a grid with axes through the origin.
func Draw(points []coords.CartesianPoint, opts Options) (*Plot, error) {
	opts = withDefaults(opts)
	if opts.Size < MinSize {
		return nil, fmt.Errorf("plot size %d is below minimum %d", opts.Size, MinSize)
	}
	if opts.Size > MaxSize {
		return nil, fmt.Errorf("plot size %d is above maximum %d", opts.Size, MaxSize)
	}

	extent := opts.Extent
	if extent <= 0 || !finite(extent) {
		extent = fitExtent(points)
	}

	axisColor := parseColor(opts.AxisColor, DefaultAxisColor)
	gridColor := parseColor(opts.GridColor, DefaultGridColor)

	size := opts.Size
	canvas := imaging.New(size, size, color.White)
	scale := float64(size-1) / 2
	toPixel := func(v float64) int {
		// Clamp before the int conversion; anything this far out is off-canvas.
		f := math.Round((v/extent + 1) * scale)
		return int(math.Max(-float64(size), math.Min(2*float64(size), f)))
	}

	// Grid lines, then axes on top. The line count is bounded by size
	// because sub-pixel spacing is skipped.
	if opts.GridStep/extent*scale >= minGridSpacing {
		steps := int(math.Floor(extent / opts.GridStep))
		for k := -steps; k <= steps; k++ {
			if k == 0 {
				continue
			}
			pos := toPixel(float64(k) * opts.GridStep)
			for i := 0; i < size; i++ {
				canvas.Set(pos, i, gridColor)
				canvas.Set(i, pos, gridColor)
			}
		}
	}
	origin := toPixel(0)
	for i := 0; i < size; i++ {
		canvas.Set(origin, i, axisColor)
		canvas.Set(i, origin, axisColor)
	}

	type placed struct {
		x, y  int
		index int
	}
	var drawn []placed
	skipped := 0
	for i, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) {
			skipped++
			continue
		}
		px, py := toPixel(pt.X), toPixel(pt.Y)
		fill := angleColor(pt)
		for dy := -markerRadius; dy <= markerRadius; dy++ {
			for dx := -markerRadius; dx <= markerRadius; dx++ {
				canvas.Set(px+dx, py+dy, fill)
			}
		}
		drawn = append(drawn, placed{x: px, y: py, index: i})
	}

	out := imaging.FlipV(canvas)

	if opts.Labels {
		fg := color.NRGBA{255, 255, 255, 255}
		bg := color.NRGBA{0, 0, 0, 180}
		for _, d := range drawn {
			drawLabel(out, d.x+markerRadius+2, size-1-d.y+markerRadius+2, strconv.Itoa(d.index), fg, bg)
		}
	}

	return &Plot{
		Image:   out,
		Extent:  extent,
		Plotted: len(drawn),
		Skipped: skipped,
	}, nil
}

// Encode returns the plot as a base64 PNG.
func (p *Plot) Encode() (*Result, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, p.Image, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode plot: %w", err)
	}

	b := p.Image.Bounds()
	return &Result{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Extent:      p.Extent,
		Plotted:     p.Plotted,
		Skipped:     p.Skipped,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes the plot to path as PNG.
func (p *Plot) Save(path string) error {
	if err := imgio.Save(path, p.Image, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save plot to %s: %w", path, err)
	}
	return nil
}

func withDefaults(opts Options) Options {
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if opts.GridStep <= 0 || !finite(opts.GridStep) {
		opts.GridStep = DefaultGridStep
	}
	if opts.AxisColor == "" {
		opts.AxisColor = DefaultAxisColor
	}
	if opts.GridColor == "" {
		opts.GridColor = DefaultGridColor
	}
	return opts
}

// fitExtent returns a half-width that holds every finite point with some
// padding, never below 1.
func fitExtent(points []coords.CartesianPoint) float64 {
	extent := 0.0
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	extent = math.Max(extent*extentPad, 1)
	if math.IsInf(extent, 0) {
		extent = math.MaxFloat64
	}
	return extent
}

// angleColor maps the point's polar angle onto the hue wheel.
func angleColor(p coords.CartesianPoint) colorful.Color {
	deg := coords.ArctanQuadrant.Polar(p).Theta * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return colorful.Hsv(deg, 0.9, 0.9)
}

// parseColor parses a hex colour, falling back to def when hex is invalid.
func parseColor(hex, def string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(def)
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
