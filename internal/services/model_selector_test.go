package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodbridge-service/internal/models"
)

func TestSelectModel(t *testing.T) {
	tests := []struct {
		name      string
		available []models.ModelInfo
		expected  Selection
	}{
		{
			name:     "empty list",
			expected: Selection{Rule: RuleNone},
		},
		{
			name: "no model supports generateContent",
			available: []models.ModelInfo{
				{Name: "models/embedding-001", Methods: []string{"embedContent"}},
				{Name: "models/aqa", Methods: []string{"generateAnswer"}},
			},
			expected: Selection{Rule: RuleNone},
		},
		{
			name: "vision hint preferred over earlier models",
			available: []models.ModelInfo{
				{Name: "models/gemini-1.0-pro", Methods: []string{"generateContent"}},
				{Name: "models/gemini-pro-vision", Methods: []string{"generateContent", "countTokens"}},
			},
			expected: Selection{Model: "models/gemini-pro-vision", Rule: RulePreferred},
		},
		{
			name: "image hint counts as preferred",
			available: []models.ModelInfo{
				{Name: "models/gemini-1.5-flash", Methods: []string{"generateContent"}},
				{Name: "models/gemini-2.0-flash-image", Methods: []string{"generateContent"}},
			},
			expected: Selection{Model: "models/gemini-2.0-flash-image", Rule: RulePreferred},
		},
		{
			name: "hinted model without generateContent is ignored",
			available: []models.ModelInfo{
				{Name: "models/imagen-3", Methods: []string{"predict"}},
				{Name: "models/gemini-1.5-flash", Methods: []string{"generateContent"}},
			},
			expected: Selection{Model: "models/gemini-1.5-flash", Rule: RuleFallback},
		},
		{
			name: "first usable model is the fallback",
			available: []models.ModelInfo{
				{Name: "models/embedding-001", Methods: []string{"embedContent"}},
				{Name: "models/gemini-1.5-pro", Methods: []string{"generateContent"}},
				{Name: "models/gemini-1.5-flash", Methods: []string{"generateContent"}},
			},
			expected: Selection{Model: "models/gemini-1.5-pro", Rule: RuleFallback},
		},
		{
			name: "hint match is case sensitive",
			available: []models.ModelInfo{
				{Name: "models/Gemini-Vision", Methods: []string{"generateContent"}},
			},
			expected: Selection{Model: "models/Gemini-Vision", Rule: RuleFallback},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectModel(tt.available))
		})
	}
}
