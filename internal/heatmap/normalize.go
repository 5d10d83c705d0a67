package heatmap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Normalize converts c into a real-valued grid scaled by the global maximum
// count, so the busiest cell has intensity 1. When no point was accumulated
// the returned grid is all zeros.
func Normalize(c *Counts) *mat.Dense {
	data := make([]float64, len(c.Cells))
	for i, n := range c.Cells {
		data[i] = float64(n)
	}

	if peak := floats.Max(data); peak > 0 {
		for i := range data {
			data[i] /= peak
		}
	}
	return mat.NewDense(c.Rows, c.Cols, data)
}

// Contrast replaces every value v of m with v^(1/root) in place.
// A root above 1 lifts sparse cells, a root below 1 suppresses them and
// root 1 leaves m untouched.
func Contrast(m *mat.Dense, root float64) error {
	if err := checkRoot(root); err != nil {
		return err
	}
	if root == 1 {
		return nil
	}

	exp := 1 / root
	m.Apply(func(_, _ int, v float64) float64 {
		return math.Pow(v, exp)
	}, m)
	return nil
}

func checkRoot(root float64) error {
	if !(root > 0) || math.IsInf(root, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidRoot, root)
	}
	return nil
}
