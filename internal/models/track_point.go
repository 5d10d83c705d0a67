package models

// TrackPoint is one geolocated event record. Longitude and latitude are
// nullable: a record whose position was never resolved is kept, and shows
// up as a missing value when it is binned into a heatmap.
type TrackPoint struct {
	ID        int64    `json:"id" db:"id"`
	DataTime  int64    `json:"dataTime" db:"data_time"` // Unix timestamp in seconds
	Longitude *float64 `json:"longitude" db:"longitude"`
	Latitude  *float64 `json:"latitude" db:"latitude"`
	Category  string   `json:"category,omitempty" db:"category"`
	CreatedAt *string  `json:"createdAt,omitempty" db:"created_at"`
}

// TrackPointsResponse represents a paginated response of track points
type TrackPointsResponse struct {
	Data       []TrackPoint `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

// TrackPointBatch is the body of a track point upload.
type TrackPointBatch struct {
	Points []TrackPoint `json:"points" binding:"required"`
}
