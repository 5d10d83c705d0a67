package heatmap

import (
	"fmt"
	"math"
)

// Rejections breaks down why points were left out of a grid.
type Rejections struct {
	Missing     int `json:"missing"`     // x or y was NaN
	OutOfBounds int `json:"outOfBounds"` // outside the closed bounds rectangle
	EdgeMiss    int `json:"edgeMiss"`    // inside the bounds but truncated past the last row or column
}

// Total returns the number of rejected points.
func (r Rejections) Total() int {
	return r.Missing + r.OutOfBounds + r.EdgeMiss
}

// Counts holds the number of points that fell in each cell, row-major.
type Counts struct {
	Geometry
	Cells       []int
	Accumulated int
	Max         int
	Rejections  Rejections
}

// At returns the count for cell (row, col).
func (c *Counts) At(row, col int) int {
	return c.Cells[row*c.Cols+col]
}

// Bin filters the points given as parallel x and y sequences and counts the
// survivors per cell of g.
//
// A point is rejected when either coordinate is NaN, when it lies outside
// the closed bounds, or when its truncated cell index falls outside the grid.
// The last check catches points on the high edges of the bounds, which pass
// the bounds test but index one past the final row or column.
func Bin(g Geometry, xs, ys []float64) (*Counts, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	c := &Counts{
		Geometry: g,
		Cells:    make([]int, g.Cells()),
	}
	for i, x := range xs {
		y := ys[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			c.Rejections.Missing++
			continue
		}
		if !g.Bounds.Contains(x, y) {
			c.Rejections.OutOfBounds++
			continue
		}

		row, col := g.toGridRow(y), g.toGridCol(x)
		if !g.inGrid(row, col) {
			c.Rejections.EdgeMiss++
			continue
		}

		idx := row*g.Cols + col
		c.Cells[idx]++
		c.Accumulated++
		if c.Cells[idx] > c.Max {
			c.Max = c.Cells[idx]
		}
	}
	return c, nil
}
