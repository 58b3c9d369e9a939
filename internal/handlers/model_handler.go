package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foodbridge-service/internal/models"
)

// ModelLister is implemented by services.FoodService
type ModelLister interface {
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
}

// ModelHandler handles model-related requests
type ModelHandler struct {
	service ModelLister
	logger  *zap.Logger
}

// NewModelHandler creates a new model handler
func NewModelHandler(service ModelLister, logger *zap.Logger) *ModelHandler {
	return &ModelHandler{
		service: service,
		logger:  logger,
	}
}

// GetModels returns every model the provider exposes, unfiltered
func (h *ModelHandler) GetModels(c *gin.Context) {
	available, err := h.service.ListModels(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list models", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ModelListResponse{
		Models: available,
	})
}
