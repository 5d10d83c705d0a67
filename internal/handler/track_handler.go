package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/records-heatmap-go/internal/models"
	"github.com/jengzang/records-heatmap-go/internal/service"
	"github.com/jengzang/records-heatmap-go/pkg/response"
)

// TrackHandler handles HTTP requests for track points
type TrackHandler struct {
	trackService *service.TrackService
}

// NewTrackHandler creates a new track handler
func NewTrackHandler(trackService *service.TrackService) *TrackHandler {
	return &TrackHandler{
		trackService: trackService,
	}
}

// GetTrackPoints handles GET /api/v1/tracks/points
func (h *TrackHandler) GetTrackPoints(c *gin.Context) {
	var filter models.TrackPointFilter

	// Parse query parameters
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	result, err := h.trackService.GetTrackPoints(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "Failed to get track points", err)
		return
	}

	response.Success(c, result)
}

// AddTrackPoints handles POST /api/v1/tracks/points
func (h *TrackHandler) AddTrackPoints(c *gin.Context) {
	var batch models.TrackPointBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	n, err := h.trackService.AddTrackPoints(c.Request.Context(), batch)
	if err != nil {
		if service.IsBadRequest(err) {
			response.BadRequest(c, "Invalid track points", err)
			return
		}
		response.InternalError(c, "Failed to add track points", err)
		return
	}

	c.JSON(http.StatusCreated, response.Response{
		Code:    0,
		Message: "created",
		Data:    gin.H{"inserted": n},
	})
}
