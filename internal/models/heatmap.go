package models

import "github.com/jengzang/records-heatmap-go/internal/heatmap"

// HeatmapPoint represents a single non-empty cell of the heatmap
type HeatmapPoint struct {
	X         float64 `json:"x"`         // cell centre
	Y         float64 `json:"y"`         // cell centre
	Row       int     `json:"row"`       // 0 = top (maximum y)
	Col       int     `json:"col"`       // 0 = left (minimum x)
	Intensity float64 `json:"intensity"` // Normalized 0-1
	Value     int     `json:"value"`     // Raw point count
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	Rows           int            `json:"rows"`
	Cols           int            `json:"cols"`
	Bounds         heatmap.Bounds `json:"bounds"`
	CellSize       float64        `json:"cellSize"`
	CellSizeMeters float64        `json:"cellSizeMeters,omitempty"` // longitude/latitude bounds only
	Root           float64        `json:"root"`
	Blur           bool           `json:"blur"`
	Sigma          float64        `json:"sigma,omitempty"`

	Grid   [][]float64    `json:"grid"`
	Points []HeatmapPoint `json:"points"`
	Count  int            `json:"count"`

	Total       int                `json:"total"`       // points considered
	Accumulated int                `json:"accumulated"` // points binned
	MaxValue    int                `json:"max_value"`
	Rejected    int                `json:"rejected"`
	Rejections  heatmap.Rejections `json:"rejections"`
}
