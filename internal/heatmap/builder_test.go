package heatmap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func scenarioPoints() ([]float64, []float64) {
	return []float64{10, 10, 90, 200, math.NaN()},
		[]float64{10, 10, 90, 200, 5}
}

func TestBuildScenario(t *testing.T) {
	t.Parallel()

	xs, ys := scenarioPoints()
	res, err := Build(xs, ys, Bounds{0, 0, 100, 100}, 50, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 2, res.Cols)
	want := [][]float64{{0, 0.5}, {1, 0}}
	if diff := cmp.Diff(want, res.Grid()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, res.Rejected())
	assert.Equal(t, 3, res.Counts.Accumulated)
	assert.False(t, res.Empty())
}

func TestBuildAllRejected(t *testing.T) {
	t.Parallel()

	xs := []float64{math.NaN(), -5, 500, 100}
	ys := []float64{1, 1, 1, 100}
	res, err := Build(xs, ys, Bounds{0, 0, 100, 100}, 10, Options{Root: 2, Blur: true, Sigma: 1})
	require.NoError(t, err)

	assert.True(t, res.Empty())
	assert.Equal(t, 4, res.Rejected())
	assert.Equal(t, Rejections{Missing: 1, OutOfBounds: 2, EdgeMiss: 1}, res.Counts.Rejections)
	for _, v := range res.Intensity.RawMatrix().Data {
		assert.False(t, math.IsNaN(v))
		assert.Zero(t, v)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	t.Parallel()

	res, err := Build(nil, nil, Bounds{0, 0, 10, 10}, 1, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Zero(t, res.Rejected())
}

func TestBuildBlurDisabledIsPassthrough(t *testing.T) {
	t.Parallel()

	xs, ys := scenarioPoints()
	bounds := Bounds{0, 0, 100, 100}

	plain, err := Build(xs, ys, bounds, 50, Options{Root: 3, Sigma: 5})
	require.NoError(t, err)

	counts, err := Bin(plain.Geometry, xs, ys)
	require.NoError(t, err)
	manual := Normalize(counts)
	require.NoError(t, Contrast(manual, 3))

	assert.Equal(t, manual.RawMatrix().Data, plain.Intensity.RawMatrix().Data)
}

func TestBuildBlur(t *testing.T) {
	t.Parallel()

	xs := []float64{55, 55, 55}
	ys := []float64{55, 55, 55}
	res, err := Build(xs, ys, Bounds{0, 0, 110, 110}, 10, Options{Root: 1, Blur: true, Sigma: 1})
	require.NoError(t, err)

	r, c := res.Intensity.Dims()
	assert.Equal(t, 11, r)
	assert.Equal(t, 11, c)

	peakRow, peakCol := argmax(res.Intensity)
	assert.Equal(t, 5, peakRow)
	assert.Equal(t, 5, peakCol)
	assert.Less(t, res.Intensity.At(5, 5), 1.0)
	assert.Greater(t, res.Intensity.At(5, 6), 0.0)
	assert.Equal(t, 3, res.Counts.At(5, 5), "raw counts are kept unblurred")
}

func TestBuildInvalidConfiguration(t *testing.T) {
	t.Parallel()

	xs, ys := scenarioPoints()
	bounds := Bounds{0, 0, 100, 100}

	tests := []struct {
		name     string
		xs, ys   []float64
		bounds   Bounds
		cellSize float64
		opts     Options
		want     error
	}{
		{"zero options root", xs, ys, bounds, 50, Options{}, ErrInvalidRoot},
		{"negative root", xs, ys, bounds, 50, Options{Root: -2}, ErrInvalidRoot},
		{"blur without sigma", xs, ys, bounds, 50, Options{Root: 1, Blur: true}, ErrInvalidSigma},
		{"inverted bounds", xs, ys, Bounds{100, 100, 0, 0}, 50, DefaultOptions(), ErrInvalidGeometry},
		{"zero cell size", xs, ys, bounds, 0, DefaultOptions(), ErrInvalidGeometry},
		{"length mismatch", xs, ys[:2], bounds, 50, DefaultOptions(), ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Build(tt.xs, tt.ys, tt.bounds, tt.cellSize, tt.opts)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, res)
		})
	}
}

func TestBuildSigmaIgnoredWithoutBlur(t *testing.T) {
	t.Parallel()

	xs, ys := scenarioPoints()
	_, err := Build(xs, ys, Bounds{0, 0, 100, 100}, 50, Options{Root: 1, Sigma: -1})
	assert.NoError(t, err)
}

func TestBuildDoesNotAliasAcrossCalls(t *testing.T) {
	t.Parallel()

	xs, ys := scenarioPoints()
	bounds := Bounds{0, 0, 100, 100}
	a, err := Build(xs, ys, bounds, 50, DefaultOptions())
	require.NoError(t, err)
	b, err := Build(xs, ys, bounds, 50, DefaultOptions())
	require.NoError(t, err)

	a.Intensity.Set(0, 0, 0.25)
	assert.Zero(t, b.Intensity.At(0, 0))
}

func argmax(m *mat.Dense) (row, col int) {
	r, c := m.Dims()
	best := math.Inf(-1)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v > best {
				best, row, col = v, i, j
			}
		}
	}
	return row, col
}
