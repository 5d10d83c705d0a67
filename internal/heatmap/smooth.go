package heatmap

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

// kernelTruncate is the kernel half-width in standard deviations.
const kernelTruncate = 4.0

// kernelSize returns the odd side length of the Gaussian kernel for sigma.
func kernelSize(sigma float64) int {
	return 2*int(kernelTruncate*sigma+0.5) + 1
}

// Blur smooths m in place with a Gaussian of the given standard deviation,
// measured in cells. Edges are mirrored with the edge cell repeated, so a
// constant grid stays constant and values stay within the input range.
func Blur(m *mat.Dense, sigma float64) error {
	if err := checkSigma(sigma); err != nil {
		return err
	}

	rows, cols := m.Dims()
	src := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV64F)
	defer src.Close()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			src.SetDoubleAt(i, j, m.At(i, j))
		}
	}

	dst := gocv.NewMat()
	defer dst.Close()
	k := kernelSize(sigma)
	gocv.GaussianBlur(src, &dst, image.Point{X: k, Y: k}, sigma, sigma, gocv.BorderReflect)
	if dst.Empty() || dst.Rows() != rows || dst.Cols() != cols {
		return fmt.Errorf("gaussian blur of %dx%d grid produced no output", rows, cols)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, dst.GetDoubleAt(i, j))
		}
	}
	return nil
}

func checkSigma(sigma float64) error {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSigma, sigma)
	}
	return nil
}
