// Package render draws intensity grids built by package heatmap, as PNG
// images through gonum/plot and as interactive HTML charts through
// go-echarts. In both outputs row 0 of the grid, the maximum-y edge, is at
// the top.
package render
