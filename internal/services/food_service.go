package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"foodbridge-service/internal/metrics"
	"foodbridge-service/internal/models"
)

const analysisPrompt = "Analyze this food image. Respond ONLY with a single JSON object, no extra text. " +
	"The JSON should contain: " +
	"'food_type' (string), " +
	"'freshness' (e.g., 'Fresh', 'Stale', 'Expired'), " +
	"and 'deliverability' ('Deliverable' or 'Non-deliverable' with a reason). " +
	`Example: {"food_type":"Apple","freshness":"Fresh","deliverability":"Deliverable - Looks clean and ripe."}`

const demoFoodType = "Demo Food Item"

var (
	missingCredentialResponse = models.AnalysisResponse{
		Error:     "Image analysis is currently unavailable. Please configure GEMINI_API_KEY in the environment.",
		FoodType:  demoFoodType,
		Freshness: "Fresh",
		Advice:    "Demo analysis - Please add your Gemini API key to enable AI analysis",
	}

	missingModelResponse = models.AnalysisResponse{
		Error:     "No valid Gemini vision model is initialized. Please check /models endpoint.",
		FoodType:  demoFoodType,
		Freshness: "Fresh",
		Advice:    "Demo analysis - Model initialization failed",
	}
)

// FoodService classifies food images through an AI provider.
// Its state is fixed by NewFoodService and only read afterwards.
type FoodService struct {
	logger        *zap.Logger
	provider      Provider
	hasCredential bool
	model         string
}

// NewFoodService selects a model from the provider's list. provider may be
// nil when no credential is configured or the client could not be created.
// Provider errors are logged and leave the service without a model.
func NewFoodService(ctx context.Context, provider Provider, hasCredential bool, logger *zap.Logger) *FoodService {
	service := &FoodService{
		logger:        logger,
		provider:      provider,
		hasCredential: hasCredential,
	}

	if !hasCredential {
		service.provider = nil
		logger.Warn("Skipping model initialization - no API key available")
		return service
	}

	service.selectModel(ctx)

	return service
}

func (s *FoodService) selectModel(ctx context.Context) {
	available, err := s.ListModels(ctx)
	if err != nil {
		s.logger.Error("Error creating model", zap.Error(err))
		return
	}

	selection := SelectModel(available)
	switch selection.Rule {
	case RulePreferred:
		s.logger.Info("Using model", zap.String("model", selection.Model))
	case RuleFallback:
		s.logger.Warn("Using fallback model, it may not support images", zap.String("model", selection.Model))
	default:
		s.logger.Error("No valid Gemini model found for your API key", zap.Int("listed", len(available)))
	}

	s.model = selection.Model
	if s.model != "" {
		metrics.ModelReady.Set(1)
	}
}

// HasCredential reports whether an API key was configured
func (s *FoodService) HasCredential() bool {
	return s.hasCredential
}

// Model returns the selected model name, or "" when none was selected
func (s *FoodService) Model() string {
	return s.model
}

// DemoResponse returns the canned payload to serve instead of a real
// analysis, or nil when the service is ready.
func (s *FoodService) DemoResponse() *models.AnalysisResponse {
	if !s.hasCredential {
		resp := missingCredentialResponse
		return &resp
	}
	if s.model == "" {
		resp := missingModelResponse
		return &resp
	}
	return nil
}

// ListModels returns the provider's full model list
func (s *FoodService) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}

	startTime := time.Now()
	available, err := s.provider.ListModels(ctx)
	metrics.ProviderDurationSeconds.
		WithLabelValues("list_models", metrics.Result(err)).
		Observe(time.Since(startTime).Seconds())
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	return available, nil
}

// Analyze decodes imageData, asks the selected model for a verdict and
// parses it. Callers must check DemoResponse first.
func (s *FoodService) Analyze(ctx context.Context, imageData []byte) (*models.AnalysisResponse, error) {
	if s.provider == nil || s.model == "" {
		return nil, ErrProviderUnavailable
	}

	img, err := DecodeImage(imageData)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Analyzing image",
		zap.String("model", s.model),
		zap.String("format", img.Format),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
	)

	startTime := time.Now()
	text, err := s.provider.GenerateContent(ctx, s.model, analysisPrompt, img)
	metrics.ProviderDurationSeconds.
		WithLabelValues("generate_content", metrics.Result(err)).
		Observe(time.Since(startTime).Seconds())
	if err != nil {
		return nil, err
	}

	return ParseVerdict(text)
}
