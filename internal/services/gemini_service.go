package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"foodbridge-service/internal/models"
)

// GeminiService talks to the Gemini API through the official Go SDK
type GeminiService struct {
	client *genai.Client
	logger *zap.Logger
}

// NewGeminiService creates a Gemini client authenticated with apiKey
func NewGeminiService(ctx context.Context, apiKey string, logger *zap.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		logger: logger,
	}, nil
}

// ListModels returns all models visible to the configured key
func (s *GeminiService) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	result := make([]models.ModelInfo, 0)

	it := s.client.ListModels(ctx)
	for {
		m, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		methods := m.SupportedGenerationMethods
		if methods == nil {
			methods = []string{}
		}
		result = append(result, models.ModelInfo{
			Name:    m.Name,
			Methods: methods,
		})
	}

	s.logger.Debug("Listed Gemini models", zap.Int("count", len(result)))
	return result, nil
}

// GenerateContent sends the prompt followed by the image and returns the
// text of the first candidate
func (s *GeminiService) GenerateContent(ctx context.Context, model, prompt string, img *UploadedImage) (string, error) {
	gm := s.client.GenerativeModel(model)

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt), genai.ImageData(img.Format, img.Data))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("model returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("model returned no text")
	}

	return sb.String(), nil
}

// Close releases the underlying connections
func (s *GeminiService) Close() error {
	return s.client.Close()
}
