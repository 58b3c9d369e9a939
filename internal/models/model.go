package models

// PingResponse represents the liveness check response
type PingResponse struct {
	Message string `json:"message"`
}

// ModelInfo describes one model exposed by the AI provider
type ModelInfo struct {
	Name    string   `json:"name"`
	Methods []string `json:"methods"`
}

// ModelListResponse represents the provider's model list
type ModelListResponse struct {
	Models []ModelInfo `json:"models"`
}

// AnalysisResponse is the normalized verdict for an uploaded food image.
// Error is only set on demo responses.
type AnalysisResponse struct {
	Error     string `json:"error,omitempty"`
	FoodType  string `json:"food_type"`
	Freshness string `json:"freshness"`
	Advice    string `json:"advice"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
