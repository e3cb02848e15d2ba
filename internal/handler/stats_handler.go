package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/dto"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/response"
)

// StatsService defines the aggregation the handler depends on.
type StatsService interface {
	Dashboard(ctx context.Context) (*dto.StatsResponse, error)
}

// StatsHandler wires the dashboard stats endpoint to the stats service.
type StatsHandler struct {
	service StatsService
}

// NewStatsHandler creates a new handler.
func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// Dashboard godoc
// @Summary Admin dashboard stats
// @Description Aggregate complaint, student and leave counts
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Failure 403 {object} map[string]string
// @Router /stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}
