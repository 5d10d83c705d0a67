package heatmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bounds   Bounds
		cellSize float64
		rows     int
		cols     int
	}{
		{"exact division", Bounds{0, 0, 100, 100}, 50, 2, 2},
		{"partial trailing cell dropped", Bounds{0, 0, 110, 75}, 50, 1, 2},
		{"offset bounds", Bounds{-180, -90, 180, 90}, 10, 18, 36},
		{"cell equals region", Bounds{5, 5, 6, 6}, 1, 1, 1},
		{"fractional cell", Bounds{0, 0, 1, 0.5}, 0.1, 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := Resolve(tt.bounds, tt.cellSize)
			require.NoError(t, err)
			assert.Equal(t, tt.rows, g.Rows)
			assert.Equal(t, tt.cols, g.Cols)
			assert.Equal(t, int(math.Floor(tt.bounds.Height()/tt.cellSize)), g.Rows)
			assert.Equal(t, int(math.Floor(tt.bounds.Width()/tt.cellSize)), g.Cols)
			assert.Equal(t, tt.rows*tt.cols, g.Cells())
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bounds   Bounds
		cellSize float64
	}{
		{"zero cell size", Bounds{0, 0, 10, 10}, 0},
		{"negative cell size", Bounds{0, 0, 10, 10}, -1},
		{"nan cell size", Bounds{0, 0, 10, 10}, math.NaN()},
		{"infinite cell size", Bounds{0, 0, 10, 10}, math.Inf(1)},
		{"inverted x", Bounds{10, 0, 0, 10}, 1},
		{"flat y", Bounds{0, 5, 10, 5}, 1},
		{"cell larger than region", Bounds{0, 0, 10, 10}, 11},
		{"cell wider than tall region", Bounds{0, 0, 100, 10}, 20},
		{"nan bound", Bounds{0, math.NaN(), 10, 10}, 1},
		{"infinite bound", Bounds{0, 0, math.Inf(1), 10}, 1},
		{"too many cells", Bounds{0, 0, 1e6, 1e6}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(tt.bounds, tt.cellSize)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
		})
	}
}

func TestToGridRowMirrorsY(t *testing.T) {
	t.Parallel()

	g, err := Resolve(Bounds{0, 0, 100, 100}, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, g.toGridRow(0), "y_min maps to the last row")
	assert.Equal(t, 1, g.toGridRow(49.999))
	assert.Equal(t, 0, g.toGridRow(50))
	assert.Equal(t, 0, g.toGridRow(99.999))
	assert.Equal(t, -1, g.toGridRow(100), "y_max truncates one past the top row")

	assert.Equal(t, 0, g.toGridCol(0))
	assert.Equal(t, 1, g.toGridCol(50))
	assert.Equal(t, 2, g.toGridCol(100), "x_max truncates one past the last column")
}

func TestCellCenterRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := Resolve(Bounds{-10, 20, 30, 50}, 5)
	require.NoError(t, err)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x, y := g.CellCenter(row, col)
			assert.Equal(t, row, g.toGridRow(y))
			assert.Equal(t, col, g.toGridCol(x))
		}
	}

	x, y := g.CellCenter(0, 0)
	assert.InDelta(t, -7.5, x, 1e-12)
	assert.InDelta(t, 47.5, y, 1e-12)
}
