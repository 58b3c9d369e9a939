package services

import (
	"context"
	"errors"

	"foodbridge-service/internal/models"
)

// ErrProviderUnavailable is returned when no provider client could be created.
var ErrProviderUnavailable = errors.New("AI provider is not configured")

// Provider is the narrow view of a multimodal model service used by FoodService.
type Provider interface {
	// ListModels returns every model the provider exposes to the current credential.
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
	// GenerateContent sends prompt and image to model and returns the raw text answer.
	GenerateContent(ctx context.Context, model, prompt string, img *UploadedImage) (string, error)
}
