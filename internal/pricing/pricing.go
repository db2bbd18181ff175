package pricing

import (
	"github.com/fandyandika/hello-saas/internal/model"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ModelPrice holds per-token USD prices.
type ModelPrice struct {
	InputCostPerToken  decimal.Decimal
	OutputCostPerToken decimal.Decimal
}

// Fixed price table for the three server-safe models. Prices are USD per
// token (provider pricing divided by 1e6).
var prices = map[string]ModelPrice{
	"gpt-5-mini": {
		InputCostPerToken:  decimal.RequireFromString("0.00000025"),
		OutputCostPerToken: decimal.RequireFromString("0.000002"),
	},
	"gpt-4o-mini": {
		InputCostPerToken:  decimal.RequireFromString("0.00000015"),
		OutputCostPerToken: decimal.RequireFromString("0.0000006"),
	},
	"gpt-3.5-turbo": {
		InputCostPerToken:  decimal.RequireFromString("0.0000005"),
		OutputCostPerToken: decimal.RequireFromString("0.0000015"),
	},
}

// CostResult reports the estimated cost in integer micro-dollars plus a
// display string, mirroring how the request ledger stores it.
type CostResult struct {
	PriceFound bool
	CostMicros int64
	CostUsd    string
}

var oneMillion = decimal.NewFromInt(1_000_000)

// Estimate computes the cost of a single generation from its token usage.
// Unknown models and absent usage yield a zero cost, never an error.
func Estimate(modelID string, usage *model.TokenUsage) CostResult {
	result := CostResult{CostUsd: "0.000000"}
	if modelID == "" || usage == nil {
		return result
	}

	price, found := prices[modelID]
	if !found {
		log.Debugf("pricing: no price entry for model %s", modelID)
		return result
	}
	result.PriceFound = true

	promptTokens := usage.PromptTokens
	if promptTokens < 0 {
		promptTokens = 0
	}
	completionTokens := usage.CompletionTokens
	if completionTokens < 0 {
		completionTokens = 0
	}

	cost := price.InputCostPerToken.Mul(decimal.NewFromInt(int64(promptTokens))).
		Add(price.OutputCostPerToken.Mul(decimal.NewFromInt(int64(completionTokens))))

	result.CostMicros = cost.Mul(oneMillion).Round(0).IntPart()
	result.CostUsd = cost.StringFixed(6)
	return result
}

// MicrosToUsd renders an accumulated micro-dollar total for display.
func MicrosToUsd(micros int64) string {
	return decimal.NewFromInt(micros).Div(oneMillion).StringFixed(6)
}
