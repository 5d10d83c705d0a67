package models

// TrackPointFilter represents filter parameters for querying track points
type TrackPointFilter struct {
	StartTime int64  `form:"startTime" json:"startTime"` // Unix timestamp
	EndTime   int64  `form:"endTime" json:"endTime"`     // Unix timestamp
	Category  string `form:"category" json:"category"`
	Page      int    `form:"page" json:"page"`
	PageSize  int    `form:"pageSize" json:"pageSize"`
}

// HeatmapParams are the grid parameters shared by every heatmap request.
// Nil fields fall back to the data extent or the configured defaults.
type HeatmapParams struct {
	MinX *float64 `form:"minX" json:"minX"`
	MinY *float64 `form:"minY" json:"minY"`
	MaxX *float64 `form:"maxX" json:"maxX"`
	MaxY *float64 `form:"maxY" json:"maxY"`

	CellSize       *float64 `form:"cellSize" json:"cellSize"`             // coordinate units
	CellSizeMeters *float64 `form:"cellSizeMeters" json:"cellSizeMeters"` // converted to degrees of latitude

	Root  *float64 `form:"root" json:"root"`
	Blur  bool     `form:"blur" json:"blur"`
	Sigma *float64 `form:"sigma" json:"sigma"`
}

// HasBounds reports whether all four bounds were supplied.
func (p HeatmapParams) HasBounds() bool {
	return p.MinX != nil && p.MinY != nil && p.MaxX != nil && p.MaxY != nil
}

// HeatmapFilter selects stored track points and the grid to bin them into.
type HeatmapFilter struct {
	HeatmapParams
	StartTime int64  `form:"startTime"`
	EndTime   int64  `form:"endTime"`
	Category  string `form:"category"`
}

// TrackPointFilter returns the track point selection part of f.
func (f HeatmapFilter) TrackPointFilter() TrackPointFilter {
	return TrackPointFilter{
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		Category:  f.Category,
	}
}

// HeatmapCoordinatesRequest carries caller-supplied coordinates.
// A null entry in X or Y is a missing value.
type HeatmapCoordinatesRequest struct {
	HeatmapParams
	X []*float64 `json:"x"`
	Y []*float64 `json:"y"`
}
