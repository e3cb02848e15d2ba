package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/service"
)

// MetricsHandler exposes the Prometheus scrape endpoint.
type MetricsHandler struct {
	service *service.MetricsService
}

// NewMetricsHandler creates a new handler.
func NewMetricsHandler(svc *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: svc}
}

// Metrics serves the Prometheus registry.
func (h *MetricsHandler) Metrics(c *gin.Context) {
	h.service.Handler().ServeHTTP(c.Writer, c.Request)
}
