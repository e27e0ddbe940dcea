package chart

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/de-tools/sales-report/pkg/models/domain"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// SkyBlue is the bar fill colour.
var SkyBlue = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

type Options struct {
	Width    vg.Length
	Height   vg.Length
	DPI      int
	BarWidth vg.Length
	Color    color.Color
}

// DefaultOptions gives a 6x4 inch canvas at 100 DPI, i.e. 600x400 pixels.
func DefaultOptions() Options {
	return Options{
		Width:    6 * vg.Inch,
		Height:   4 * vg.Inch,
		DPI:      100,
		BarWidth: vg.Points(30),
		Color:    SkyBlue,
	}
}

type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render draws the chart as a PNG, replacing any file at path.
func (r *Renderer) Render(ctx context.Context, chart domain.BarChart, path string) error {
	p, err := r.build(chart)
	if err != nil {
		return err
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(r.opts.Width, r.opts.Height),
		vgimg.UseDPI(r.opts.DPI),
	)
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write chart %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bars", len(chart.Values)).Msg("chart rendered")
	return nil
}

func (r *Renderer) build(chart domain.BarChart) (*plot.Plot, error) {
	if len(chart.Labels) != len(chart.Values) {
		return nil, fmt.Errorf("chart has %d labels for %d values", len(chart.Labels), len(chart.Values))
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.Y.Label.Text = chart.YLabel

	// an empty chart keeps its axes and title
	if len(chart.Values) == 0 {
		return p, nil
	}

	bars, err := plotter.NewBarChart(plotter.Values(chart.Values), r.opts.BarWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = r.opts.Color
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(chart.Labels...)
	// half a slot either side of the outer bars
	p.X.Min = -0.5
	p.X.Max = float64(len(chart.Values)) - 0.5
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return p, nil
}
