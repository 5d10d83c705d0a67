package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jengzang/records-heatmap-go/internal/config"
	"github.com/jengzang/records-heatmap-go/internal/database"
	"github.com/jengzang/records-heatmap-go/internal/models"
	"github.com/jengzang/records-heatmap-go/internal/render"
	"github.com/jengzang/records-heatmap-go/internal/repository"
	"github.com/jengzang/records-heatmap-go/internal/service"
)

type buildFlags struct {
	db             string
	csv            string
	bounds         string
	cellSize       float64
	cellSizeMeters float64
	root           float64
	blur           bool
	sigma          float64
	maxCells       int
	category       string
	start          int64
	end            int64
	title          string
	out            string
}

func newBuildCmd() *cobra.Command {
	var f buildFlags
	cfg := config.Load().Heatmap

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a heatmap and write it as .png, .html or .json",
		Example: `  heatmap build --db tracks.db --cell-size-meters 500 --root 2 --out footprint.png
  heatmap build --csv points.csv --bounds 0,0,100,100 --cell-size 50 --out grid.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (f.db == "") == (f.csv == "") {
				return fmt.Errorf("exactly one of --db or --csv is required")
			}
			return runBuild(cmd.Context(), cmd, f, cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.db, "db", "", "sqlite track point store")
	fl.StringVar(&f.csv, "csv", "", "CSV file with x and y columns")
	fl.StringVar(&f.bounds, "bounds", "", "xmin,ymin,xmax,ymax (default: data extent)")
	fl.Float64Var(&f.cellSize, "cell-size", 0, "cell side length in coordinate units")
	fl.Float64Var(&f.cellSizeMeters, "cell-size-meters", 0, "cell side length in meters, for longitude/latitude data")
	fl.Float64Var(&f.root, "root", cfg.Root, "contrast root, intensities become v^(1/root)")
	fl.BoolVar(&f.blur, "blur", false, "apply a Gaussian blur")
	fl.Float64Var(&f.sigma, "sigma", cfg.Sigma, "blur standard deviation in cells")
	fl.IntVar(&f.maxCells, "max-cells", cfg.MaxCells, "refuse grids larger than this")
	fl.StringVar(&f.category, "category", "", "only use track points of this category (--db)")
	fl.Int64Var(&f.start, "start", 0, "only use track points at or after this Unix time (--db)")
	fl.Int64Var(&f.end, "end", 0, "only use track points at or before this Unix time (--db)")
	fl.StringVar(&f.title, "title", "Heatmap", "title for image and chart output")
	fl.StringVarP(&f.out, "out", "o", "-", "output file; the extension picks the format, - writes JSON to stdout")

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, f buildFlags, cfg config.HeatmapConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}

	filter := models.HeatmapFilter{
		StartTime: f.start,
		EndTime:   f.end,
		Category:  f.category,
	}
	filter.Blur = f.blur
	filter.Root = &f.root
	filter.Sigma = &f.sigma
	if cmd.Flags().Changed("cell-size") {
		filter.CellSize = &f.cellSize
	}
	if cmd.Flags().Changed("cell-size-meters") {
		filter.CellSizeMeters = &f.cellSizeMeters
	}
	if f.bounds != "" {
		b, err := parseBounds(f.bounds)
		if err != nil {
			return err
		}
		filter.MinX, filter.MinY, filter.MaxX, filter.MaxY = &b[0], &b[1], &b[2], &b[3]
	}

	var source service.CoordinateSource
	if f.db != "" {
		db, err := database.Open(database.Config{Path: f.db})
		if err != nil {
			return err
		}
		defer db.Close()
		source = repository.NewTrackRepository(db)
	} else {
		file, err := os.Open(f.csv)
		if err != nil {
			return fmt.Errorf("failed to open csv: %w", err)
		}
		xs, ys, err := readCSV(file)
		file.Close()
		if err != nil {
			return err
		}
		log.Printf("[heatmap] read %d coordinates from %s", len(xs), f.csv)
		source = staticSource{xs: xs, ys: ys}
	}

	cfg.MaxCells = f.maxCells
	hm, err := service.NewHeatmapService(source, cfg).Build(ctx, filter)
	if err != nil {
		return err
	}
	if hm.Empty() {
		log.Printf("[heatmap] no point landed in the grid, writing an all-zero map")
	}

	return write(cmd.OutOrStdout(), f.out, f.title, hm)
}

func parseBounds(s string) ([4]float64, error) {
	var b [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return b, fmt.Errorf("--bounds wants xmin,ymin,xmax,ymax, got %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return b, fmt.Errorf("--bounds: %w", err)
		}
		b[i] = v
	}
	return b, nil
}

// staticSource serves coordinates that were loaded up front.
type staticSource struct {
	xs, ys []float64
}

func (s staticSource) LoadCoordinates(context.Context, models.TrackPointFilter) ([]float64, []float64, error) {
	return s.xs, s.ys, nil
}

func write(stdout io.Writer, out, title string, hm *service.Heatmap) error {
	if out == "-" || out == "" {
		return writeJSON(stdout, hm)
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		opts := render.DefaultPNGOptions()
		opts.Title = title
		err = render.PNG(file, hm.Result, opts)
	case ".html", ".htm":
		opts := render.DefaultChartOptions()
		opts.Title = title
		err = render.Chart(file, hm.Result, opts)
	case ".json":
		err = writeJSON(file, hm)
	default:
		err = fmt.Errorf("unknown output format %q, use .png, .html or .json", filepath.Ext(out))
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Printf("[heatmap] wrote %d x %d grid to %s", hm.Rows, hm.Cols, out)
	return nil
}

func writeJSON(w io.Writer, hm *service.Heatmap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(hm.Response())
}
