package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/fandyandika/hello-saas/internal/model"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// RequestError carries a caller-visible message with an HTTP status. Every
// other error returned by the gateway is internal and must be surfaced to
// callers as a generic failure only.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Fallback call parameters, fixed by design: one attempt, mid-tier model,
// smaller budget, moderate temperature.
const (
	fallbackMaxTokens   = 400
	fallbackTemperature = 0.7
	fallbackTopP        = 0.9
)

// Gateway resolves a generation request into provider parameters, performs
// the provider call, classifies the outcome and returns a normalized
// result. It is stateless; a single instance serves concurrent requests.
type Gateway struct {
	client       *Client
	apiKey       string
	defaultModel string
}

func NewGateway(client *Client, apiKey, defaultModel string) *Gateway {
	return &Gateway{
		client:       client,
		apiKey:       apiKey,
		defaultModel: defaultModel,
	}
}

// Generate runs the full pipeline. All provider-shaped outcomes, including
// truncation and empty content, resolve to a GenerateResponse; only
// validation/configuration problems (RequestError) and transport failures
// return an error.
func (g *Gateway) Generate(ctx context.Context, req *model.GenerateRequest) (*model.GenerateResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, &RequestError{Status: 400, Message: "Prompt is required"}
	}

	if g.apiKey == "" {
		return nil, &RequestError{Status: 400, Message: "API key OpenAI belum dikonfigurasi. Silakan tambahkan OPENAI_API_KEY ke file .env."}
	}
	if !strings.HasPrefix(g.apiKey, "sk-") {
		return nil, &RequestError{Status: 400, Message: `Format API key tidak valid. API key harus dimulai dengan "sk-".`}
	}

	resolvedModel := NormalizeModel(req.ClientModel, g.defaultModel)
	systemPrompt := BuildSystemPrompt(req.Tone)
	params := ResolveParams(resolvedModel, req.Tone, req.Length, req.UsedExamples)

	payload := chatRequest{
		Model: resolvedModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		N: 1,
	}
	params.apply(&payload)

	log.WithFields(log.Fields{
		"model":  resolvedModel,
		"tone":   req.Tone,
		"length": req.Length,
	}).Debug("ai: calling provider")

	resp, err := g.client.CreateChatCompletion(ctx, payload)
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, g.classifyProviderError(resolvedModel, resp)
	}

	return g.classify(ctx, resolvedModel, prompt, systemPrompt, params, resp)
}

// classifyProviderError maps known provider error payloads to actionable
// caller-facing messages; anything unrecognized becomes an internal error
// carrying the raw provider message for the server log.
func (g *Gateway) classifyProviderError(resolvedModel string, resp *ProviderResponse) error {
	code := gjson.GetBytes(resp.Raw, "error.code").String()
	message := gjson.GetBytes(resp.Raw, "error.message").String()
	lower := strings.ToLower(message)

	log.WithFields(log.Fields{
		"status": resp.StatusCode,
		"code":   code,
		"model":  resolvedModel,
	}).Error("ai: provider returned error")

	switch {
	case code == "model_not_found" || strings.Contains(lower, "model"):
		return &RequestError{
			Status:  400,
			Message: fmt.Sprintf("Model %s tidak tersedia. Silakan periksa akses akun OpenAI Anda atau coba model lain.", resolvedModel),
		}
	case code == "invalid_api_key" || strings.Contains(lower, "api key"):
		return &RequestError{
			Status:  400,
			Message: "API key OpenAI tidak valid. Silakan periksa konfigurasi OPENAI_API_KEY di file .env.",
		}
	case code == "insufficient_quota" || strings.Contains(lower, "quota"):
		return &RequestError{
			Status:  400,
			Message: "Quota OpenAI habis atau tidak ada kredit. Silakan periksa billing account Anda.",
		}
	}
	return fmt.Errorf("openai api error: status %d - %s", resp.StatusCode, message)
}

// classify walks the response state machine: content present, truncated
// (with the single reasoning-class fallback), stopped empty, unknown.
func (g *Gateway) classify(ctx context.Context, resolvedModel, prompt, systemPrompt string, params SamplingParams, resp *ProviderResponse) (*model.GenerateResponse, error) {
	var content, finishReason string
	if len(resp.Parsed.Choices) > 0 {
		content = resp.Parsed.Choices[0].Message.Content
		finishReason = resp.Parsed.Choices[0].FinishReason
	}
	reasoning := IsReasoningModel(resolvedModel)

	build := func(result string, meta model.GenerateMetadata) *model.GenerateResponse {
		return &model.GenerateResponse{Result: result, Success: true, Metadata: meta}
	}
	meta := model.GenerateMetadata{
		ModelUsed:    resolvedModel,
		FinishReason: finishReason,
		Usage:        resp.Parsed.Usage,
	}

	// Content present: return it verbatim, flagged when the cap was hit.
	if content != "" {
		if finishReason == "length" {
			content += "\n\n[Response terpotong karena mencapai batas token maksimal]"
		}
		return build(content, meta), nil
	}

	if finishReason == "length" {
		// Reasoning-class truncation with nothing visible: one fallback
		// call to the mid-tier model with a tighter budget. Never more
		// than one, even if the fallback truncates too.
		if reasoning {
			fbResp, err := g.fallbackCall(ctx, prompt, systemPrompt)
			if err != nil {
				return nil, err
			}
			if fbResp.OK() {
				fbContent := "No response generated"
				fbMeta := model.GenerateMetadata{
					ModelUsed:    ModelMidTier,
					FallbackUsed: true,
					Usage:        fbResp.Parsed.Usage,
				}
				if len(fbResp.Parsed.Choices) > 0 {
					if c := fbResp.Parsed.Choices[0].Message.Content; c != "" {
						fbContent = c
					}
					fbMeta.FinishReason = fbResp.Parsed.Choices[0].FinishReason
				}
				return build(fbContent, fbMeta), nil
			}
			log.WithField("status", fbResp.StatusCode).Warn("ai: fallback call failed, reporting original truncation")
		}

		tokenCap := MaxVisibleTokens(params)
		reasoningTokens := gjson.GetBytes(resp.Raw, "usage.completion_tokens_details.reasoning_tokens")
		if reasoning && reasoningTokens.Exists() && int(reasoningTokens.Int()) == tokenCap {
			return build("Model gpt-5-mini menggunakan semua token untuk reasoning internal. Silakan gunakan model lain (gpt-3.5-turbo) atau kurangi kompleksitas prompt.", meta), nil
		}
		return build(fmt.Sprintf("Response terlalu panjang dan terpotong karena mencapai batas token maksimal (%d tokens). Silakan coba dengan prompt yang lebih pendek atau kurangi examples.", tokenCap), meta), nil
	}

	if finishReason == "stop" {
		// Natural stop without content. Kept as a degraded success for
		// compatibility; the log line exists so the condition is visible.
		log.WithField("model", resolvedModel).Warn("ai: finish_reason=stop with empty content")
		return build("Response berhasil dihasilkan.", meta), nil
	}

	// Unknown finish reason: probe alternative payload fields before
	// giving up with a diagnostic that embeds the raw value.
	if text := gjson.GetBytes(resp.Raw, "choices.0.message.text").String(); text != "" {
		return build(text, meta), nil
	}
	if text := gjson.GetBytes(resp.Raw, "choices.0.text").String(); text != "" {
		return build(text, meta), nil
	}
	return build(fmt.Sprintf("Response tidak dapat diproses. Finish reason: %s", finishReason), meta), nil
}

func (g *Gateway) fallbackCall(ctx context.Context, prompt, systemPrompt string) (*ProviderResponse, error) {
	temp := fallbackTemperature
	payload := chatRequest{
		Model: ModelMidTier,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt + fallbackSuffix},
			{Role: "user", Content: prompt},
		},
		N:           1,
		MaxTokens:   fallbackMaxTokens,
		Temperature: &temp,
		TopP:        fallbackTopP,
	}
	return g.client.CreateChatCompletion(ctx, payload)
}
