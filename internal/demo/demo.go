// Package demo runs the fixed demonstration sequence of conversions and
// rotations and prints each result.
package demo

import (
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/ironsheep/coord-tools/internal/coords"
	"github.com/ironsheep/coord-tools/internal/plot"
)

// Options configures a Run. The zero value prints the sequence and nothing else.
type Options struct {
	// Arctan is used for the Cartesian to Polar step.
	Arctan coords.Arctan

	// PlotPath, when set, receives a PNG of every printed point.
	PlotPath string
	PlotSize int

	Logger *zap.Logger
}

// printer writes the sequence to an output and remembers what it printed.
type printer struct {
	w       io.Writer
	opts    Options
	printed []coords.CartesianPoint
	err     error
}

// Run executes the sequence against w and returns the first write or plot error.
func Run(w io.Writer, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	r := &printer{w: w, opts: opts}
	r.sequence()
	if r.err != nil {
		return r.err
	}

	if opts.PlotPath == "" {
		return nil
	}
	p, err := plot.Draw(r.printed, plot.Options{Size: opts.PlotSize, Labels: true})
	if err != nil {
		return err
	}
	if err := p.Save(opts.PlotPath); err != nil {
		return err
	}
	opts.Logger.Info("plot written",
		zap.String("path", opts.PlotPath),
		zap.Int("points", p.Plotted),
		zap.Float64("extent", p.Extent))
	return nil
}

func (r *printer) sequence() {
	log := r.opts.Logger.With(zap.Stringer("arctan", r.opts.Arctan))

	c := coords.Pair(1.0, 1.0).ToCartesian()
	r.point(c)

	p := r.opts.Arctan.Polar(c)
	r.line(p)
	log.Debug("converted to polar", zap.Float64("r", p.R), zap.Float64("theta", p.Theta))

	r.point(coords.Pair(3.2, 3.3))

	rotated := coords.Pair(1.0, 0.0).ToCartesian().Rotate(math.Pi)
	r.point(rotated)
	log.Debug("rotated", zap.Float64("theta", math.Pi), zap.Stringer("point", rotated))
}

// point writes any representation in Cartesian form.
func (r *printer) point(p coords.Coordinates) {
	c := p.ToCartesian()
	r.printed = append(r.printed, c)
	r.line(c)
}

// line writes v on its own line. After the first failure it does nothing.
func (r *printer) line(v fmt.Stringer) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintln(r.w, v.String()); err != nil {
		r.err = fmt.Errorf("failed to write output: %w", err)
	}
}
