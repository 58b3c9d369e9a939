package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes prometheus collectors
type MetricsHandler struct {
	handler http.Handler
}

// NewMetricsHandler creates a handler serving the default registry
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{
		handler: promhttp.Handler(),
	}
}

// GetMetrics writes the metrics in the prometheus text format
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	h.handler.ServeHTTP(c.Writer, c.Request)
}
