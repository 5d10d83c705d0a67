package heatmap

import (
	"fmt"
	"math"
)

// maxCells caps the number of cells a single grid may hold.
const maxCells = 1 << 28

// Bounds is an axis-aligned rectangle in the same reference system as the
// points being binned.
type Bounds struct {
	XMin float64 `json:"xMin"`
	YMin float64 `json:"yMin"`
	XMax float64 `json:"xMax"`
	YMax float64 `json:"yMax"`
}

// Width returns XMax - XMin.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Contains reports whether (x, y) lies in the closed rectangle.
func (b Bounds) Contains(x, y float64) bool {
	return !(x < b.XMin || x > b.XMax || y < b.YMin || y > b.YMax)
}

func (b Bounds) finite() bool {
	for _, v := range []float64{b.XMin, b.YMin, b.XMax, b.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Geometry is the resolved shape of a grid: its bounds, the side length of
// each square cell and the number of rows and columns.
type Geometry struct {
	Bounds   Bounds  `json:"bounds"`
	CellSize float64 `json:"cellSize"`
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
}

// Resolve computes the grid dimensions for bounds and cellSize. Rows and
// columns are the truncated quotients of the region height and width by the
// cell size, so a partial cell at the high edge is dropped.
func Resolve(bounds Bounds, cellSize float64) (Geometry, error) {
	if !bounds.finite() {
		return Geometry{}, fmt.Errorf("%w: non-finite bounds %+v", ErrInvalidGeometry, bounds)
	}
	if bounds.XMax <= bounds.XMin || bounds.YMax <= bounds.YMin {
		return Geometry{}, fmt.Errorf("%w: empty bounds %+v", ErrInvalidGeometry, bounds)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return Geometry{}, fmt.Errorf("%w: cell size %g", ErrInvalidGeometry, cellSize)
	}

	rows := math.Floor(bounds.Height() / cellSize)
	cols := math.Floor(bounds.Width() / cellSize)
	if rows < 1 || cols < 1 {
		return Geometry{}, fmt.Errorf("%w: cell size %g larger than %gx%g region",
			ErrInvalidGeometry, cellSize, bounds.Width(), bounds.Height())
	}
	if rows*cols > maxCells {
		return Geometry{}, fmt.Errorf("%w: %.0fx%.0f grid exceeds %d cells",
			ErrInvalidGeometry, rows, cols, maxCells)
	}

	return Geometry{
		Bounds:   bounds,
		CellSize: cellSize,
		Rows:     int(rows),
		Cols:     int(cols),
	}, nil
}

// Cells returns Rows*Cols.
func (g Geometry) Cells() int { return g.Rows * g.Cols }

// toGridRow maps y to a row index with row 0 at the maximum-y edge.
// The distance from YMin is truncated toward zero before mirroring, so
// y == YMax on an exact multiple of the cell size maps to -1.
func (g Geometry) toGridRow(y float64) int {
	fromBottom := int((y - g.Bounds.YMin) / g.CellSize)
	return g.Rows - 1 - fromBottom
}

// toGridCol maps x to a column index with column 0 at XMin.
func (g Geometry) toGridCol(x float64) int {
	return int((x - g.Bounds.XMin) / g.CellSize)
}

// inGrid reports whether (row, col) addresses a cell.
func (g Geometry) inGrid(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// CellCenter returns the coordinates of the centre of cell (row, col).
func (g Geometry) CellCenter(row, col int) (x, y float64) {
	x = g.Bounds.XMin + (float64(col)+0.5)*g.CellSize
	y = g.Bounds.YMin + (float64(g.Rows-1-row)+0.5)*g.CellSize
	return x, y
}
