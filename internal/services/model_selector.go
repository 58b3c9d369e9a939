package services

import (
	"slices"
	"strings"

	"foodbridge-service/internal/models"
)

// GenerateContentMethod is the capability a model must advertise to be usable.
const GenerateContentMethod = "generateContent"

// SelectionRule names the policy step that picked a model.
type SelectionRule string

const (
	RulePreferred SelectionRule = "preferred"
	RuleFallback  SelectionRule = "fallback"
	RuleNone      SelectionRule = "none"
)

// visionHints are name fragments of models expected to handle images.
var visionHints = []string{"vision", "image"}

// Selection is the outcome of SelectModel. Model is empty when Rule is RuleNone.
type Selection struct {
	Model string
	Rule  SelectionRule
}

// SelectModel applies the selection policy to a provider model list:
// content generation models only, a vision hint preferred, otherwise
// the first usable model, otherwise nothing.
func SelectModel(available []models.ModelInfo) Selection {
	usable := make([]models.ModelInfo, 0, len(available))
	for _, m := range available {
		if slices.Contains(m.Methods, GenerateContentMethod) {
			usable = append(usable, m)
		}
	}

	for _, m := range usable {
		if hasVisionHint(m.Name) {
			return Selection{Model: m.Name, Rule: RulePreferred}
		}
	}

	if len(usable) > 0 {
		return Selection{Model: usable[0].Name, Rule: RuleFallback}
	}

	return Selection{Rule: RuleNone}
}

func hasVisionHint(name string) bool {
	for _, hint := range visionHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}
