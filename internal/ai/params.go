package ai

import (
	"math"
	"strings"
)

// Length presets accepted by the gateway. Anything else counts as normal.
const (
	LengthShort  = "short"
	LengthNormal = "normal"
	LengthLong   = "long"
)

// Completion-token caps per model class and length. The reasoning class
// gets smaller visible caps because hidden deliberation tokens come out of
// the same budget.
func maxTokensByLength(reasoning bool, length string) int {
	if reasoning {
		switch length {
		case LengthShort:
			return 300
		case LengthLong:
			return 700
		default:
			return 450
		}
	}
	switch length {
	case LengthShort:
		return 700
	case LengthLong:
		return 1400
	default:
		return 1000
	}
}

// SamplingParams is the model-class specific slice of the provider request.
// The two implementations are mutually exclusive: a request carries either
// the reasoning shape or the standard shape, never a mix.
type SamplingParams interface {
	apply(*chatRequest)
}

// ReasoningParams caps completion tokens and pins temperature to 1; the
// reasoning class ignores sampling knobs.
type ReasoningParams struct {
	MaxCompletionTokens int
}

func (p ReasoningParams) apply(req *chatRequest) {
	req.MaxCompletionTokens = p.MaxCompletionTokens
	one := 1.0
	req.Temperature = &one
	req.ResponseFormat = &responseFormat{Type: "text"}
}

// StandardParams is the conventional max_tokens/temperature/top_p shape.
type StandardParams struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

func (p StandardParams) apply(req *chatRequest) {
	req.MaxTokens = p.MaxTokens
	temp := p.Temperature
	req.Temperature = &temp
	req.TopP = p.TopP
}

// MaxVisibleTokens returns the cap that was sent to the provider,
// regardless of which shape carried it. Used in truncation diagnostics.
func MaxVisibleTokens(p SamplingParams) int {
	switch v := p.(type) {
	case ReasoningParams:
		return v.MaxCompletionTokens
	case StandardParams:
		return v.MaxTokens
	default:
		return 0
	}
}

// ResolveParams derives the sampling parameters for a resolved model from
// the user's tone/length selection.
func ResolveParams(model, tone, length string, usedExamples bool) SamplingParams {
	if IsReasoningModel(model) {
		return ReasoningParams{MaxCompletionTokens: maxTokensByLength(true, length)}
	}
	return StandardParams{
		MaxTokens:   maxTokensByLength(false, length),
		Temperature: resolveTemperature(model, tone, usedExamples),
		TopP:        0.9,
	}
}

// resolveTemperature starts from a tone-driven base, then applies two
// independent additive bumps, each with its own ceiling, in order:
// mid-tier model +0.1 capped at 0.85, examples in play +0.1 capped at 0.7.
func resolveTemperature(model, tone string, usedExamples bool) float64 {
	base := 0.5
	switch tone {
	case "normal", "formal":
		base = 0.4
	case "friendly", "casual":
		base = 0.6
	case "funny", "creative", "storytelling":
		base = 0.75
	}
	if strings.Contains(model, "gpt-4") {
		base = math.Min(base+0.1, 0.85)
	}
	if usedExamples {
		base = math.Min(base+0.1, 0.7)
	}
	return base
}
