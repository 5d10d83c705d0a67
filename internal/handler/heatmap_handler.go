package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/records-heatmap-go/internal/models"
	"github.com/jengzang/records-heatmap-go/internal/render"
	"github.com/jengzang/records-heatmap-go/internal/service"
	"github.com/jengzang/records-heatmap-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for heatmaps
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: service}
}

// build binds the query and builds a heatmap over stored track points.
// It writes the error response itself and returns nil on failure.
func (h *HeatmapHandler) build(c *gin.Context) *service.Heatmap {
	var filter models.HeatmapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return nil
	}

	hm, err := h.service.Build(c.Request.Context(), filter)
	if err != nil {
		buildError(c, err)
		return nil
	}
	return hm
}

func buildError(c *gin.Context, err error) {
	if service.IsBadRequest(err) {
		response.BadRequest(c, "Invalid heatmap parameters", err)
		return
	}
	response.InternalError(c, "Failed to build heatmap", err)
}

// GetHeatmap handles GET /api/v1/heatmap
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	hm := h.build(c)
	if hm == nil {
		return
	}
	response.Success(c, hm.Response())
}

// PostHeatmap handles POST /api/v1/heatmap
func (h *HeatmapHandler) PostHeatmap(c *gin.Context) {
	var req models.HeatmapCoordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	hm, err := h.service.BuildFromCoordinates(req)
	if err != nil {
		buildError(c, err)
		return
	}
	response.Success(c, hm.Response())
}

// GetHeatmapImage handles GET /api/v1/heatmap/image
func (h *HeatmapHandler) GetHeatmapImage(c *gin.Context) {
	hm := h.build(c)
	if hm == nil {
		return
	}

	opts := render.DefaultPNGOptions()
	if title := c.Query("title"); title != "" {
		opts.Title = title
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, hm.Result, opts); err != nil {
		response.InternalError(c, "Failed to render heatmap", err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// GetHeatmapChart handles GET /api/v1/heatmap/chart
func (h *HeatmapHandler) GetHeatmapChart(c *gin.Context) {
	hm := h.build(c)
	if hm == nil {
		return
	}

	opts := render.DefaultChartOptions()
	if title := c.Query("title"); title != "" {
		opts.Title = title
	}

	var buf bytes.Buffer
	if err := render.Chart(&buf, hm.Result, opts); err != nil {
		response.InternalError(c, "Failed to render heatmap", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
