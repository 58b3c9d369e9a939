package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"foodbridge-service/internal/models"
)

const unknownValue = "Unknown"

// InvalidJSONError is returned when the cleaned provider text does not parse as JSON.
type InvalidJSONError struct {
	Raw string
	Err error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("AI response was not valid JSON: %v", e.Err)
}

func (e *InvalidJSONError) Unwrap() error {
	return e.Err
}

// CleanResponse trims the text and removes markdown code fences.
func CleanResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// ParseVerdict maps the provider's JSON answer onto an AnalysisResponse.
// Each field falls back to "Unknown" on its own.
func ParseVerdict(text string) (*models.AnalysisResponse, error) {
	cleaned := CleanResponse(text)

	var raw any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &InvalidJSONError{Raw: text, Err: err}
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("AI response is not a JSON object")
	}

	return &models.AnalysisResponse{
		FoodType:  stringField(fields, "food_type"),
		Freshness: stringField(fields, "freshness"),
		Advice:    stringField(fields, "deliverability"),
	}, nil
}

func stringField(fields map[string]any, key string) string {
	value, ok := fields[key]
	if !ok || value == nil {
		return unknownValue
	}

	if s, ok := value.(string); ok {
		return s
	}

	// numbers, booleans and nested values keep their JSON text
	encoded, err := json.Marshal(value)
	if err != nil {
		return unknownValue
	}
	return string(encoded)
}
