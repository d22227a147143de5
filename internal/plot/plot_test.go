package plot

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/coord-tools/internal/coords"
)

var white = color.NRGBA{255, 255, 255, 255}

func TestDraw_AxesAndPoint(t *testing.T) {
	p, err := Draw([]coords.CartesianPoint{{X: 0.5, Y: 0.5}}, Options{Size: 101, Extent: 1})
	require.NoError(t, err)

	assert.Equal(t, 101, p.Image.Bounds().Dx())
	assert.Equal(t, 101, p.Image.Bounds().Dy())
	assert.Equal(t, 1, p.Plotted)
	assert.Equal(t, 0, p.Skipped)

	axis := color.NRGBA{128, 128, 128, 255}
	assert.Equal(t, axis, p.Image.NRGBAAt(50, 10), "vertical axis")
	assert.Equal(t, axis, p.Image.NRGBAAt(10, 50), "horizontal axis")

	// (0.5, 0.5) lands at column 75 and, with y up, row 25.
	got := p.Image.NRGBAAt(75, 25)
	assert.NotEqual(t, white, got)
	assert.NotEqual(t, axis, got)
	assert.Greater(t, got.R, got.B, "45° should be warm, got %v", got)

	assert.Equal(t, white, p.Image.NRGBAAt(75, 75), "mirror position must stay empty")
}

func TestDraw_SkipsNonFinite(t *testing.T) {
	points := []coords.CartesianPoint{
		{X: 1, Y: 1},
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.Inf(-1)},
	}

	p, err := Draw(points, Options{Size: 64})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Plotted)
	assert.Equal(t, 2, p.Skipped)
	assert.InDelta(t, 1.1, p.Extent, 1e-12)
}

func TestDraw_TooSmall(t *testing.T) {
	_, err := Draw(nil, Options{Size: 8})
	assert.Error(t, err)
}

func TestDraw_TooLarge(t *testing.T) {
	_, err := Draw([]coords.CartesianPoint{{X: 1, Y: 1}}, Options{Size: 200000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "above maximum")

	p, err := Draw(nil, Options{Size: MaxSize, Extent: 1, GridStep: 1})
	require.NoError(t, err)
	assert.Equal(t, MaxSize, p.Image.Bounds().Dx())
}

// drawWithin fails the test if Draw does not return within d.
func drawWithin(t *testing.T, d time.Duration, points []coords.CartesianPoint, opts Options) *Plot {
	t.Helper()
	type outcome struct {
		p   *Plot
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		p, err := Draw(points, opts)
		done <- outcome{p, err}
	}()

	select {
	case o := <-done:
		require.NoError(t, o.err)
		return o.p
	case <-time.After(d):
		t.Fatalf("Draw(%+v) did not return within %v", opts, d)
		return nil
	}
}

func TestDraw_DenseGridIsSkipped(t *testing.T) {
	tests := []struct {
		name   string
		points []coords.CartesianPoint
		opts   Options
	}{
		{"huge extent", []coords.CartesianPoint{{X: 1, Y: 1}}, Options{Size: 256, Extent: 1e9}},
		{"max extent", []coords.CartesianPoint{{X: 1, Y: 1}}, Options{Size: 256, Extent: math.MaxFloat64}},
		{"tiny grid step", []coords.CartesianPoint{{X: 1, Y: 1}}, Options{Size: 256, Extent: 1, GridStep: 1e-9}},
		{"huge points", []coords.CartesianPoint{{X: 1e308, Y: -1e308}, {X: 1, Y: 1}}, Options{Size: 256}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := drawWithin(t, 5*time.Second, tt.points, tt.opts)

			assert.Equal(t, 256, p.Image.Bounds().Dx())
			assert.Equal(t, len(tt.points), p.Plotted)
			// Away from the axes and markers the canvas stays blank.
			assert.Equal(t, white, p.Image.NRGBAAt(40, 200))
		})
	}
}

func TestDraw_PointOutsideExtent(t *testing.T) {
	p := drawWithin(t, 5*time.Second, []coords.CartesianPoint{{X: 1e300, Y: 0}}, Options{Size: 64, Extent: 1})
	assert.Equal(t, 1, p.Plotted)
	assert.Equal(t, white, p.Image.NRGBAAt(10, 10))
}

func TestDraw_InvalidColorFallsBack(t *testing.T) {
	p, err := Draw(nil, Options{Size: 33, Extent: 1, AxisColor: "not-a-colour"})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, p.Image.NRGBAAt(16, 0))
}

func TestDraw_Labels(t *testing.T) {
	pts := []coords.CartesianPoint{{X: -0.5, Y: -0.5}}

	plain, err := Draw(pts, Options{Size: 101, Extent: 1})
	require.NoError(t, err)
	labelled, err := Draw(pts, Options{Size: 101, Extent: 1, Labels: true})
	require.NoError(t, err)

	assert.NotEqual(t, plain.Image.Pix, labelled.Image.Pix)
}

func TestFitExtent(t *testing.T) {
	tests := []struct {
		name   string
		points []coords.CartesianPoint
		want   float64
	}{
		{"empty", nil, 1},
		{"small", []coords.CartesianPoint{{X: 0.1, Y: -0.2}}, 1},
		{"large", []coords.CartesianPoint{{X: 3, Y: -10}}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, fitExtent(tt.points), 1e-12)
		})
	}
}

func TestAngleColor_Distinct(t *testing.T) {
	right := angleColor(coords.Cartesian(1, 0))
	left := angleColor(coords.Cartesian(-1, 0))
	assert.NotEqual(t, right.Hex(), left.Hex())

	h, _, _ := right.Hsv()
	assert.InDelta(t, 0, h, 1e-6)
	h, _, _ = left.Hsv()
	assert.InDelta(t, 180, h, 1e-6)
}

func TestRender(t *testing.T) {
	res, err := Render([]coords.CartesianPoint{{X: 1, Y: 2}}, Options{Size: 32})
	require.NoError(t, err)

	assert.Equal(t, 32, res.Width)
	assert.Equal(t, 32, res.Height)
	assert.Equal(t, "image/png", res.MimeType)
	assert.Equal(t, 1, res.Plotted)

	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestSave(t *testing.T) {
	p, err := Draw([]coords.CartesianPoint{{X: 1, Y: 0}}, Options{Size: 48})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, p.Save(path))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}
