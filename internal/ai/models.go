package ai

import "strings"

// Server-safe model ids. Client hints are never forwarded verbatim.
const (
	// ModelReasoning spends part of its completion budget on hidden
	// deliberation tokens, so its visible caps are smaller and
	// length-truncation is more likely.
	ModelReasoning = "gpt-5-mini"
	// ModelMidTier is the standard-class model used for fallback calls.
	ModelMidTier = "gpt-4o-mini"
	// ModelBaseline is the default standard-class model.
	ModelBaseline = "gpt-3.5-turbo"
)

// NormalizeModel maps a free-form client hint onto exactly one of the three
// server-safe ids. Matching is by case-insensitive substring; every input,
// including the empty string, produces a result. An absent hint falls back
// to the configured default, itself defaulting to the reasoning model.
func NormalizeModel(hint, configuredDefault string) string {
	if hint == "" {
		if configuredDefault != "" {
			return configuredDefault
		}
		return ModelReasoning
	}
	lower := strings.ToLower(hint)
	switch {
	case strings.Contains(lower, "gpt-5"):
		return ModelReasoning
	case strings.Contains(lower, "gpt-4"):
		return ModelMidTier
	default:
		return ModelBaseline
	}
}

// IsReasoningModel reports whether the resolved id belongs to the
// reasoning class and therefore uses the completion-token request shape.
func IsReasoningModel(model string) bool {
	return strings.Contains(model, "gpt-5-mini")
}
