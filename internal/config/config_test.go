package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "RATE_LIMIT", "RATE_WINDOW",
		"HEATMAP_CELL_SIZE", "HEATMAP_ROOT", "HEATMAP_SIGMA", "HEATMAP_MAX_CELLS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "./data/tracks/tracks.db", cfg.DBPath)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, 0.01, cfg.Heatmap.CellSize)
	assert.Equal(t, 1.0, cfg.Heatmap.Root)
	assert.Equal(t, 1.0, cfg.Heatmap.Sigma)
	assert.Equal(t, 4_000_000, cfg.Heatmap.MaxCells)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("HEATMAP_CELL_SIZE", "250")
	t.Setenv("HEATMAP_ROOT", "2.5")
	t.Setenv("HEATMAP_MAX_CELLS", "1000")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
	assert.Equal(t, 250.0, cfg.Heatmap.CellSize)
	assert.Equal(t, 2.5, cfg.Heatmap.Root)
	assert.Equal(t, 1000, cfg.Heatmap.MaxCells)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("HEATMAP_SIGMA", "wide")
	t.Setenv("RATE_WINDOW", "soon")

	cfg := Load()
	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, 1.0, cfg.Heatmap.Sigma)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}
