package heatmap

import (
	"gonum.org/v1/gonum/mat"
)

// Options control the contrast and smoothing stages of Build.
// The zero value is not valid; start from DefaultOptions.
type Options struct {
	// Root is the contrast root: intensities become v^(1/Root).
	Root float64
	// Blur enables Gaussian smoothing with standard deviation Sigma cells.
	Blur  bool
	Sigma float64
}

// DefaultOptions returns options that apply no contrast change and no blur.
func DefaultOptions() Options {
	return Options{Root: 1, Sigma: 1}
}

// Validate reports configuration errors before any work is done.
func (o Options) Validate() error {
	if err := checkRoot(o.Root); err != nil {
		return err
	}
	if o.Blur {
		if err := checkSigma(o.Sigma); err != nil {
			return err
		}
	}
	return nil
}

// Result is the output of Build.
type Result struct {
	Geometry
	// Counts are the raw per-cell tallies before normalization.
	Counts *Counts
	// Intensity holds values in [0,1], row 0 at the maximum-y edge.
	Intensity *mat.Dense
}

// Rejected returns the number of points left out of the grid.
func (r *Result) Rejected() int { return r.Counts.Rejections.Total() }

// Empty reports whether no point landed in the grid. The intensity grid of
// an empty result is all zeros.
func (r *Result) Empty() bool { return r.Counts.Accumulated == 0 }

// Grid copies the intensities into a slice of rows.
func (r *Result) Grid() [][]float64 {
	grid := make([][]float64, r.Rows)
	for i := range grid {
		grid[i] = mat.Row(nil, i, r.Intensity)
	}
	return grid
}

// Build runs the full pipeline over the points given as parallel x and y
// sequences: resolve the grid, bin the points, normalize, apply the
// contrast root and optionally blur.
//
// Invalid bounds, cell size, root or sigma and mismatched sequence lengths
// are returned as errors. Points that are missing or fall outside the grid
// are never errors; they are counted in Result.Counts.Rejections.
func Build(xs, ys []float64, bounds Bounds, cellSize float64, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g, err := Resolve(bounds, cellSize)
	if err != nil {
		return nil, err
	}

	counts, err := Bin(g, xs, ys)
	if err != nil {
		return nil, err
	}

	intensity := Normalize(counts)
	if err := Contrast(intensity, opts.Root); err != nil {
		return nil, err
	}
	if opts.Blur {
		if err := Blur(intensity, opts.Sigma); err != nil {
			return nil, err
		}
	}

	return &Result{
		Geometry:  g,
		Counts:    counts,
		Intensity: intensity,
	}, nil
}
