package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jengzang/records-heatmap-go/internal/heatmap"
)

// PNGOptions control the size and labelling of a PNG rendering.
type PNGOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	Colors int // palette size
}

// DefaultPNGOptions returns a 6x6 inch rendering with a 64 colour palette.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{Title: "Heatmap", Width: 6 * vg.Inch, Height: 6 * vg.Inch, Colors: 64}
}

// gridXYZ adapts a result to plotter.GridXYZ. Plot rows grow upwards, so
// plot row r is grid row Rows-1-r.
type gridXYZ struct {
	res *heatmap.Result
}

func (g gridXYZ) Dims() (c, r int) { return g.res.Cols, g.res.Rows }

func (g gridXYZ) Z(c, r int) float64 {
	return g.res.Intensity.At(g.res.Rows-1-r, c)
}

func (g gridXYZ) X(c int) float64 {
	x, _ := g.res.CellCenter(0, c)
	return x
}

func (g gridXYZ) Y(r int) float64 {
	_, y := g.res.CellCenter(g.res.Rows-1-r, 0)
	return y
}

// Min and Max fix the dynamic range so that colours are comparable
// between renderings.
func (g gridXYZ) Min() float64 { return 0 }
func (g gridXYZ) Max() float64 { return 1 }

// PNG draws res as a PNG image to w.
func PNG(w io.Writer, res *heatmap.Result, opts PNGOptions) error {
	if opts.Colors < 2 {
		opts.Colors = 2
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultPNGOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	h := plotter.NewHeatMap(gridXYZ{res: res}, palette.Heat(opts.Colors, 1))
	h.Rasterized = true
	h.Underflow = color.Black
	h.Overflow = color.White
	p.Add(h)

	p.X.Min, p.X.Max = res.Bounds.XMin, res.Bounds.XMin+float64(res.Cols)*res.CellSize
	p.Y.Min, p.Y.Max = res.Bounds.YMin, res.Bounds.YMin+float64(res.Rows)*res.CellSize

	wt, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return fmt.Errorf("failed to create png canvas: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}
