// Package heatmap turns planar point samples into a grid of normalized
// intensities suitable for rendering as a heatmap image.
//
// Build runs four stages in order: Resolve computes the grid shape from the
// bounds and cell size, Bin filters and counts points per cell, Normalize and
// Contrast rescale the counts into [0,1], and Blur optionally applies a
// Gaussian smoothing pass. Each stage is exported so callers can run or test
// it on its own.
//
// Row 0 of every grid is the maximum-y edge of the bounds and column 0 is the
// minimum-x edge, so a grid can be drawn directly as an image.
package heatmap
