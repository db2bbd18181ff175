package model

// GenerateRequest is the body of POST /api/ai/generate. Only prompt is
// required; tone, length and model hint all have server-side defaults.
type GenerateRequest struct {
	Prompt       string   `json:"prompt"`
	Tone         string   `json:"tone"`
	Length       string   `json:"length"`
	ClientModel  string   `json:"clientModel"`
	UsedExamples bool     `json:"usedExamples"`
	ExampleIDs   []string `json:"exampleIds"`
}

// TokenUsage mirrors the provider's usage accounting field names.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

type GenerateMetadata struct {
	ModelUsed    string      `json:"modelUsed"`
	FallbackUsed bool        `json:"fallbackUsed"`
	FinishReason string      `json:"finishReason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// GenerateResponse always carries a user-facing result string, even on
// degraded paths (truncation, empty content). Hard failures use the
// {error} shape instead and never this one.
type GenerateResponse struct {
	Result   string           `json:"result"`
	Success  bool             `json:"success"`
	Metadata GenerateMetadata `json:"metadata"`
}

type EstimateRequest struct {
	Prompt       string   `json:"prompt"`
	UsedExamples bool     `json:"usedExamples"`
	ExampleIDs   []string `json:"exampleIds"`
}

type EstimateResponse struct {
	EstimatedTokens int `json:"estimatedTokens"`
	ExamplesChosen  int `json:"examplesChosen"`
}
