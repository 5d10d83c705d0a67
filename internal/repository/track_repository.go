package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/jengzang/records-heatmap-go/internal/database"
	"github.com/jengzang/records-heatmap-go/internal/models"
)

// TrackRepository handles database operations for track points
type TrackRepository struct {
	db *sql.DB
}

// NewTrackRepository creates a new track repository
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// whereClause builds the WHERE clause shared by listing and coordinate loading.
func whereClause(filter models.TrackPointFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.StartTime > 0 {
		conditions = append(conditions, "data_time >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "data_time <= ?")
		args = append(args, filter.EndTime)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// GetTrackPoints retrieves one page of track points. Page and PageSize
// must already be valid; TrackService clamps them.
func (r *TrackRepository) GetTrackPoints(ctx context.Context, filter models.TrackPointFilter) ([]models.TrackPoint, int64, error) {
	where, args := whereClause(filter)

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM track_points"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count track points: %w", err)
	}

	query := `SELECT id, data_time, longitude, latitude, category, created_at FROM track_points` +
		where + " ORDER BY data_time DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query track points: %w", err)
	}
	defer rows.Close()

	points := []models.TrackPoint{}
	for rows.Next() {
		var p models.TrackPoint
		if err := rows.Scan(&p.ID, &p.DataTime, &p.Longitude, &p.Latitude, &p.Category, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan track point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate track points: %w", err)
	}

	return points, total, nil
}

// InsertTrackPoints stores points in a single transaction and returns how many were written
func (r *TrackRepository) InsertTrackPoints(ctx context.Context, points []models.TrackPoint) (int, error) {
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO track_points (data_time, longitude, latitude, category) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for i, p := range points {
			if _, err := stmt.ExecContext(ctx, p.DataTime, nullable(p.Longitude), nullable(p.Latitude), p.Category); err != nil {
				return fmt.Errorf("failed to insert track point %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(points), nil
}

// nullable stores nil and NaN as SQL NULL
func nullable(v *float64) sql.NullFloat64 {
	if v == nil || math.IsNaN(*v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// LoadCoordinates returns the longitude (x) and latitude (y) of every
// selected track point as two parallel sequences. A NULL coordinate is
// returned as NaN so that it is counted as a missing value downstream.
func (r *TrackRepository) LoadCoordinates(ctx context.Context, filter models.TrackPointFilter) ([]float64, []float64, error) {
	where, args := whereClause(filter)
	query := "SELECT longitude, latitude FROM track_points" + where + " ORDER BY data_time, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query coordinates: %w", err)
	}
	defer rows.Close()

	var xs, ys []float64
	for rows.Next() {
		var lon, lat sql.NullFloat64
		if err := rows.Scan(&lon, &lat); err != nil {
			return nil, nil, fmt.Errorf("failed to scan coordinates: %w", err)
		}
		xs = append(xs, valueOrNaN(lon))
		ys = append(ys, valueOrNaN(lat))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate coordinates: %w", err)
	}

	return xs, ys, nil
}

func valueOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
