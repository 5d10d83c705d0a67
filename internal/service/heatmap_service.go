package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jengzang/records-heatmap-go/internal/config"
	"github.com/jengzang/records-heatmap-go/internal/heatmap"
	"github.com/jengzang/records-heatmap-go/internal/models"
	"github.com/jengzang/records-heatmap-go/internal/spatial"
)

// ErrInvalidRequest marks request parameters the service cannot build a grid from.
var ErrInvalidRequest = errors.New("invalid request")

// IsBadRequest reports whether err was caused by the caller's parameters
// rather than by storage.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, heatmap.ErrInvalidGeometry) ||
		errors.Is(err, heatmap.ErrInvalidRoot) ||
		errors.Is(err, heatmap.ErrInvalidSigma) ||
		errors.Is(err, heatmap.ErrLengthMismatch)
}

// CoordinateSource loads coordinates as parallel x (longitude) and y
// (latitude) sequences, with NaN for missing values.
type CoordinateSource interface {
	LoadCoordinates(ctx context.Context, filter models.TrackPointFilter) ([]float64, []float64, error)
}

// Heatmap is a built grid together with the parameters it was built with.
type Heatmap struct {
	*heatmap.Result
	Options heatmap.Options
	Total   int // points considered
}

// HeatmapService builds intensity grids over stored or supplied coordinates
type HeatmapService struct {
	source CoordinateSource
	cfg    config.HeatmapConfig
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(source CoordinateSource, cfg config.HeatmapConfig) *HeatmapService {
	return &HeatmapService{source: source, cfg: cfg}
}

// Build loads the stored coordinates selected by filter and bins them.
func (s *HeatmapService) Build(ctx context.Context, filter models.HeatmapFilter) (*Heatmap, error) {
	xs, ys, err := s.source.LoadCoordinates(ctx, filter.TrackPointFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to load coordinates: %w", err)
	}
	return s.build(xs, ys, filter.HeatmapParams)
}

// BuildFromCoordinates bins caller-supplied coordinates. Null entries are
// missing values.
func (s *HeatmapService) BuildFromCoordinates(req models.HeatmapCoordinatesRequest) (*Heatmap, error) {
	if len(req.X) != len(req.Y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", heatmap.ErrLengthMismatch, len(req.X), len(req.Y))
	}
	xs := make([]float64, len(req.X))
	ys := make([]float64, len(req.Y))
	for i := range req.X {
		xs[i] = valueOrNaN(req.X[i])
		ys[i] = valueOrNaN(req.Y[i])
	}
	return s.build(xs, ys, req.HeatmapParams)
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func (s *HeatmapService) build(xs, ys []float64, params models.HeatmapParams) (*Heatmap, error) {
	bounds, cellSize, err := s.resolveGrid(xs, ys, params)
	if err != nil {
		return nil, err
	}

	g, err := heatmap.Resolve(bounds, cellSize)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxCells > 0 && g.Cells() > s.cfg.MaxCells {
		return nil, fmt.Errorf("%w: %d x %d grid exceeds %d cells, use a larger cell size", ErrInvalidRequest, g.Rows, g.Cols, s.cfg.MaxCells)
	}

	opts := s.options(params)
	res, err := heatmap.Build(xs, ys, bounds, cellSize, opts)
	if err != nil {
		return nil, err
	}

	log.Printf("[HeatmapService] resolution %d x %d (cell size %g)", res.Rows, res.Cols, res.CellSize)
	if n := res.Rejected(); n > 0 {
		r := res.Counts.Rejections
		log.Printf("[HeatmapService] %d coords were not within bounds (missing %d, outside %d, edge %d)",
			n, r.Missing, r.OutOfBounds, r.EdgeMiss)
	}

	return &Heatmap{Result: res, Options: opts, Total: len(xs)}, nil
}

// resolveGrid picks the bounds and cell size for a request. Explicit bounds
// win; otherwise the extent of the defined points is used, padded by one
// cell so the points on its high edges still land in the grid.
func (s *HeatmapService) resolveGrid(xs, ys []float64, params models.HeatmapParams) (heatmap.Bounds, float64, error) {
	var bounds heatmap.Bounds
	explicit := params.HasBounds()
	switch {
	case explicit:
		bounds = heatmap.Bounds{XMin: *params.MinX, YMin: *params.MinY, XMax: *params.MaxX, YMax: *params.MaxY}
	case params.MinX != nil || params.MinY != nil || params.MaxX != nil || params.MaxY != nil:
		return bounds, 0, fmt.Errorf("%w: bounds need all of minX, minY, maxX and maxY", ErrInvalidRequest)
	default:
		extent, ok := spatial.Extent(xs, ys)
		if !ok {
			return bounds, 0, fmt.Errorf("%w: no coordinates to derive bounds from, supply minX, minY, maxX and maxY", ErrInvalidRequest)
		}
		bounds = spatial.ToBounds(extent)
	}

	cellSize := s.cfg.CellSize
	switch {
	case params.CellSize != nil:
		cellSize = *params.CellSize
	case params.CellSizeMeters != nil:
		if *params.CellSizeMeters <= 0 {
			return bounds, 0, fmt.Errorf("%w: cell size %g m", heatmap.ErrInvalidGeometry, *params.CellSizeMeters)
		}
		center := spatial.FromBounds(bounds).Center()
		cellSize = spatial.DegreesForMeters(center.Y, center.X, *params.CellSizeMeters)
	}

	if !explicit && cellSize > 0 {
		bounds = spatial.Pad(bounds, cellSize)
	}
	return bounds, cellSize, nil
}

func (s *HeatmapService) options(params models.HeatmapParams) heatmap.Options {
	opts := heatmap.Options{Root: s.cfg.Root, Sigma: s.cfg.Sigma, Blur: params.Blur}
	if params.Root != nil {
		opts.Root = *params.Root
	}
	if params.Sigma != nil {
		opts.Sigma = *params.Sigma
	}
	return opts
}

// Response describes h for the JSON API. Only non-empty cells are listed
// in Points.
func (h *Heatmap) Response() *models.HeatmapResponse {
	resp := &models.HeatmapResponse{
		Rows:        h.Rows,
		Cols:        h.Cols,
		Bounds:      h.Bounds,
		CellSize:    h.CellSize,
		Root:        h.Options.Root,
		Blur:        h.Options.Blur,
		Grid:        h.Grid(),
		Points:      []models.HeatmapPoint{},
		Total:       h.Total,
		Accumulated: h.Counts.Accumulated,
		MaxValue:    h.Counts.Max,
		Rejected:    h.Rejected(),
		Rejections:  h.Counts.Rejections,
	}
	if h.Options.Blur {
		resp.Sigma = h.Options.Sigma
	}
	if meters, ok := spatial.CellSizeMeters(h.Bounds, h.CellSize); ok {
		resp.CellSizeMeters = meters
	}

	for row := 0; row < h.Rows; row++ {
		for col := 0; col < h.Cols; col++ {
			v := h.Intensity.At(row, col)
			if v == 0 {
				continue
			}
			x, y := h.CellCenter(row, col)
			resp.Points = append(resp.Points, models.HeatmapPoint{
				X:         x,
				Y:         y,
				Row:       row,
				Col:       col,
				Intensity: v,
				Value:     h.Counts.At(row, col),
			})
		}
	}
	resp.Count = len(resp.Points)

	return resp
}
