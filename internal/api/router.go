package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/records-heatmap-go/internal/config"
	"github.com/jengzang/records-heatmap-go/internal/handler"
	"github.com/jengzang/records-heatmap-go/internal/middleware"
	"github.com/jengzang/records-heatmap-go/internal/repository"
	"github.com/jengzang/records-heatmap-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if err := db.PingContext(c.Request.Context()); err != nil {
			status, code = "database unavailable", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"message": "Records Heatmap API is running",
		})
	})

	trackRepo := repository.NewTrackRepository(db)
	trackHandler := handler.NewTrackHandler(service.NewTrackService(trackRepo))
	heatmapHandler := handler.NewHeatmapHandler(service.NewHeatmapService(trackRepo, cfg.Heatmap))

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow), middleware.Auth(cfg.JWTSecret))
	{
		// 轨迹点
		tracks := api.Group("/tracks")
		{
			tracks.GET("/points", trackHandler.GetTrackPoints)
			tracks.POST("/points", trackHandler.AddTrackPoints)
		}

		// 热力图
		heatmap := api.Group("/heatmap")
		{
			heatmap.GET("", heatmapHandler.GetHeatmap)
			heatmap.POST("", heatmapHandler.PostHeatmap)
			heatmap.GET("/image", heatmapHandler.GetHeatmapImage)
			heatmap.GET("/chart", heatmapHandler.GetHeatmapChart)
		}
	}

	return r
}
