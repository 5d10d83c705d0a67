package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string // 为空时不启用鉴权
	GinMode   string

	RateLimit  int           // 每个窗口内单个 IP 的最大请求数
	RateWindow time.Duration // 限流窗口

	Heatmap HeatmapConfig
}

// HeatmapConfig holds defaults applied when a heatmap request omits a parameter.
type HeatmapConfig struct {
	CellSize float64 // default cell side length, in coordinate units
	Root     float64 // default contrast root
	Sigma    float64 // default blur sigma, in cells
	MaxCells int     // largest grid a single request may build
}

// Load 加载配置
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", ":8080"),
		DBPath:     getEnv("DB_PATH", "./data/tracks/tracks.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		GinMode:    getEnv("GIN_MODE", "release"),
		RateLimit:  getEnvInt("RATE_LIMIT", 120),
		RateWindow: getEnvDuration("RATE_WINDOW", time.Minute),
		Heatmap: HeatmapConfig{
			CellSize: getEnvFloat("HEATMAP_CELL_SIZE", 0.01),
			Root:     getEnvFloat("HEATMAP_ROOT", 1),
			Sigma:    getEnvFloat("HEATMAP_SIGMA", 1),
			MaxCells: getEnvInt("HEATMAP_MAX_CELLS", 4_000_000),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[Config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[Config] invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[Config] invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
