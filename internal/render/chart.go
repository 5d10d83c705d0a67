package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jengzang/records-heatmap-go/internal/heatmap"
)

// ChartOptions control an HTML rendering.
type ChartOptions struct {
	Title      string
	Subtitle   string
	Width      string
	Height     string
	AssetsHost string // optional override of the echarts asset host
}

// DefaultChartOptions returns a 900px square chart.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Title: "Heatmap", Width: "900px", Height: "900px"}
}

var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// Chart writes res as a self-contained echarts heatmap page to w. Axis
// categories are labelled with cell centres; empty cells are left out.
func Chart(w io.Writer, res *heatmap.Result, o ChartOptions) error {
	xLabels := make([]string, res.Cols)
	for c := range xLabels {
		x, _ := res.CellCenter(0, c)
		xLabels[c] = strconv.FormatFloat(x, 'g', 6, 64)
	}
	yLabels := make([]string, res.Rows)
	for r := range yLabels {
		_, y := res.CellCenter(r, 0)
		yLabels[r] = strconv.FormatFloat(y, 'g', 6, 64)
	}

	data := make([]opts.HeatMapData, 0, res.Counts.Accumulated)
	for r := 0; r < res.Rows; r++ {
		for c := 0; c < res.Cols; c++ {
			v := res.Intensity.At(r, c)
			if v == 0 {
				continue
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{c, r, v}})
		}
	}

	subtitle := o.Subtitle
	if subtitle == "" {
		subtitle = fmt.Sprintf("%d x %d cells, %d points, %d rejected", res.Rows, res.Cols, res.Counts.Accumulated, res.Rejected())
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: o.Width, Height: o.Height, AssetsHost: o.AssetsHost}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xLabels, Name: "X", SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		// Row 0 is the maximum-y edge and belongs at the top.
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yLabels, Name: "Y", Inverse: opts.Bool(true), SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("intensity", data)

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
