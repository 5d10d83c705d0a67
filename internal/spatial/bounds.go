package spatial

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/jengzang/records-heatmap-go/internal/heatmap"
)

// Extent returns the smallest rectangle containing every point whose
// coordinates are both defined. ok is false when there is no such point.
func Extent(xs, ys []float64) (r r2.Rect, ok bool) {
	r = r2.EmptyRect()
	for i, x := range xs {
		if i >= len(ys) {
			break
		}
		y := ys[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		r = r.AddPoint(r2.Point{X: x, Y: y})
	}
	return r, !r.IsEmpty()
}

// ToBounds converts a rectangle into heatmap bounds.
func ToBounds(r r2.Rect) heatmap.Bounds {
	return heatmap.Bounds{XMin: r.X.Lo, YMin: r.Y.Lo, XMax: r.X.Hi, YMax: r.Y.Hi}
}

// FromBounds converts heatmap bounds into a rectangle.
func FromBounds(b heatmap.Bounds) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: b.XMin, Hi: b.XMax},
		Y: r1.Interval{Lo: b.YMin, Hi: b.YMax},
	}
}

// Pad grows b by margin on every side.
func Pad(b heatmap.Bounds, margin float64) heatmap.Bounds {
	return ToBounds(FromBounds(b).ExpandedByMargin(margin))
}

// Geographic reports whether b fits in longitude/latitude degree ranges.
func Geographic(b heatmap.Bounds) bool {
	return b.XMin >= -180 && b.XMax <= 180 && b.YMin >= -90 && b.YMax <= 90
}

// CellSizeMeters returns the north-south ground length of a cell of
// cellSize degrees at the centre of b. ok is false when b is not in
// longitude/latitude degrees.
func CellSizeMeters(b heatmap.Bounds, cellSize float64) (meters float64, ok bool) {
	if !Geographic(b) {
		return 0, false
	}
	c := FromBounds(b).Center()
	lo := math.Max(c.Y-cellSize/2, -90)
	hi := math.Min(c.Y+cellSize/2, 90)
	return HaversineDistance(lo, c.X, hi, c.X), true
}
