package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// readCSV reads x and y columns from r. The header names the columns,
// as x/y or longitude/latitude (lon/lat, lng/lat). Empty cells and
// values that do not parse are missing values and come back as NaN.
func readCSV(r io.Reader) ([]float64, []float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	xi, yi := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x", "longitude", "lon", "lng":
			xi = i
		case "y", "latitude", "lat":
			yi = i
		}
	}
	if xi < 0 || yi < 0 {
		return nil, nil, fmt.Errorf("csv header %v has no x and y columns", header)
	}

	var xs, ys []float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}
		xs = append(xs, field(rec, xi))
		ys = append(ys, field(rec, yi))
	}
	return xs, ys, nil
}

func field(rec []string, i int) float64 {
	if i >= len(rec) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
