package ai

import (
	"math"
	"strings"

	"github.com/fandyandika/hello-saas/internal/model"
)

const (
	// At most two explicitly selected examples go into a prompt; when the
	// feature is on but nothing is selected, exactly one is used.
	maxSelectedExamples = 2

	// Per-example character budget inside the composed prompt.
	exampleCharBudget = 200

	// Advisory token math: chars per token, plus a flat allowance for the
	// system prompt. Not authoritative, display only.
	charsPerToken        = 4
	systemTokenAllowance = 100
)

// ChooseExamples applies the selection policy: feature off means none,
// explicit ids mean the matching examples capped at two, enabled-but-none-
// selected falls back to the first example.
func ChooseExamples(all []*model.Example, selectedIDs []string) []*model.Example {
	if len(all) == 0 {
		return nil
	}
	if len(selectedIDs) == 0 {
		return all[:1]
	}

	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	var chosen []*model.Example
	for _, ex := range all {
		if selected[ex.ID] {
			chosen = append(chosen, ex)
			if len(chosen) == maxSelectedExamples {
				break
			}
		}
	}
	return chosen
}

// TruncateExample cuts text down to maxLen characters, preferring the last
// sentence boundary when it falls past 60% of the budget; otherwise it hard
// cuts and appends an ellipsis.
func TruncateExample(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	truncated := runes[:maxLen]
	// Boundary position in runes, not bytes, so multi-byte text measures
	// against the same budget it was cut with.
	lastSentence := -1
	for i := len(truncated) - 1; i >= 0; i-- {
		if truncated[i] == '.' {
			lastSentence = i
			break
		}
	}
	if lastSentence > int(float64(maxLen)*0.6) {
		return string(truncated[:lastSentence+1])
	}
	return string(truncated) + "..."
}

// ComposePrompt prepends a labeled Examples block to the user's task when
// examples are in play; otherwise the prompt passes through untouched.
func ComposePrompt(userPrompt string, examples []*model.Example) string {
	if len(examples) == 0 {
		return userPrompt
	}
	parts := make([]string, len(examples))
	for i, ex := range examples {
		parts[i] = TruncateExample(ex.Content, exampleCharBudget)
	}
	return "Examples:\n" + strings.Join(parts, "\n\n---\n\n") + "\n\nTask: " + userPrompt
}

// EstimateTokens is the rough, display-only usage estimate computed from
// character counts alone.
func EstimateTokens(prompt string, exampleCount int) int {
	promptTokens := float64(len(prompt)) / charsPerToken
	exampleTokens := float64(exampleCount*exampleCharBudget) / charsPerToken
	return int(math.Round(promptTokens + exampleTokens + systemTokenAllowance))
}
