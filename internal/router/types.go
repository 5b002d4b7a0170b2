package router

import "travel-assistant/internal/model"

// ClassificationResult is the outcome of one classification.
// Matched=false always carries CategoryGeneric.
type ClassificationResult struct {
	Category  model.Category
	Rationale string
	RawText   string
	Matched   bool
}

func unmatched(raw string) ClassificationResult {
	return ClassificationResult{
		Category:  model.CategoryGeneric,
		Rationale: RationaleNotProvided,
		RawText:   raw,
	}
}
