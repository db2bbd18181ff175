package ai

import "testing"

func TestTokenCapTable(t *testing.T) {
	cases := []struct {
		reasoning bool
		length    string
		want      int
	}{
		{true, LengthShort, 300},
		{true, LengthNormal, 450},
		{true, LengthLong, 700},
		{true, "", 450},
		{false, LengthShort, 700},
		{false, LengthNormal, 1000},
		{false, LengthLong, 1400},
		{false, "", 1000},
	}

	for _, tc := range cases {
		if got := maxTokensByLength(tc.reasoning, tc.length); got != tc.want {
			t.Errorf("maxTokensByLength(%v, %q) = %d, want %d", tc.reasoning, tc.length, got, tc.want)
		}
	}
}

func TestResolveParamsReasoningShape(t *testing.T) {
	params := ResolveParams(ModelReasoning, "funny", LengthShort, false)

	rp, ok := params.(ReasoningParams)
	if !ok {
		t.Fatalf("expected ReasoningParams, got %T", params)
	}
	if rp.MaxCompletionTokens != 300 {
		t.Errorf("expected cap 300, got %d", rp.MaxCompletionTokens)
	}

	var req chatRequest
	params.apply(&req)
	if req.MaxCompletionTokens != 300 {
		t.Errorf("expected max_completion_tokens 300, got %d", req.MaxCompletionTokens)
	}
	if req.MaxTokens != 0 {
		t.Errorf("reasoning shape must not set max_tokens, got %d", req.MaxTokens)
	}
	if req.Temperature == nil || *req.Temperature != 1 {
		t.Errorf("reasoning shape must pin temperature to 1, got %v", req.Temperature)
	}
	if req.TopP != 0 {
		t.Errorf("reasoning shape must not set top_p, got %v", req.TopP)
	}
	if req.ResponseFormat == nil || req.ResponseFormat.Type != "text" {
		t.Errorf("reasoning shape must request text response format")
	}
}

func TestResolveParamsStandardShape(t *testing.T) {
	params := ResolveParams(ModelBaseline, "funny", LengthLong, false)

	sp, ok := params.(StandardParams)
	if !ok {
		t.Fatalf("expected StandardParams, got %T", params)
	}
	if sp.MaxTokens != 1400 {
		t.Errorf("expected cap 1400, got %d", sp.MaxTokens)
	}
	if sp.Temperature != 0.75 {
		t.Errorf("expected temperature 0.75 for funny, got %v", sp.Temperature)
	}
	if sp.TopP != 0.9 {
		t.Errorf("expected top_p 0.9, got %v", sp.TopP)
	}

	var req chatRequest
	params.apply(&req)
	if req.MaxCompletionTokens != 0 {
		t.Errorf("standard shape must not set max_completion_tokens, got %d", req.MaxCompletionTokens)
	}
	if req.ResponseFormat != nil {
		t.Errorf("standard shape must not set response_format")
	}
}

func TestTemperatureBases(t *testing.T) {
	cases := []struct {
		tone string
		want float64
	}{
		{"normal", 0.4},
		{"formal", 0.4},
		{"friendly", 0.6},
		{"casual", 0.6},
		{"funny", 0.75},
		{"creative", 0.75},
		{"storytelling", 0.75},
		{"professional", 0.5},
		{"unknown-tone", 0.5},
	}

	for _, tc := range cases {
		if got := resolveTemperature(ModelBaseline, tc.tone, false); got != tc.want {
			t.Errorf("resolveTemperature(baseline, %q) = %v, want %v", tc.tone, got, tc.want)
		}
	}
}

func TestTemperatureAdjustmentsAndCeilings(t *testing.T) {
	approx := func(got, want float64) bool {
		diff := got - want
		return diff < 1e-9 && diff > -1e-9
	}

	// Mid-tier bump applies its own cap.
	if got := resolveTemperature(ModelMidTier, "funny", false); !approx(got, 0.85) {
		t.Errorf("funny on mid-tier = %v, want 0.85", got)
	}
	if got := resolveTemperature(ModelMidTier, "normal", false); !approx(got, 0.5) {
		t.Errorf("normal on mid-tier = %v, want 0.5", got)
	}

	// Examples bump applies after, with its own 0.7 cap.
	if got := resolveTemperature(ModelBaseline, "friendly", true); !approx(got, 0.7) {
		t.Errorf("friendly+examples = %v, want 0.7", got)
	}
	if got := resolveTemperature(ModelBaseline, "normal", true); !approx(got, 0.5) {
		t.Errorf("normal+examples = %v, want 0.5", got)
	}
	if got := resolveTemperature(ModelBaseline, "funny", true); !approx(got, 0.7) {
		t.Errorf("funny+examples = %v, want 0.7 (capped)", got)
	}
}

func TestTemperatureNeverExceedsCeilings(t *testing.T) {
	tones := []string{"normal", "formal", "friendly", "casual", "funny", "creative", "storytelling", "professional", ""}
	models := []string{ModelMidTier, ModelBaseline}

	for _, tone := range tones {
		for _, m := range models {
			for _, used := range []bool{false, true} {
				got := resolveTemperature(m, tone, used)
				if got > 0.85 {
					t.Errorf("resolveTemperature(%q, %q, %v) = %v exceeds 0.85", m, tone, used, got)
				}
			}
		}
	}
}
