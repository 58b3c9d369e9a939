package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodbridge-service/internal/models"
)

// HealthHandler handles liveness requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Ping always reports that the backend is up
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, models.PingResponse{
		Message: "Backend is working!",
	})
}
