package ai

import (
	"strings"
	"testing"

	"github.com/fandyandika/hello-saas/internal/model"
)

func sampleExamples() []*model.Example {
	return []*model.Example{
		{ID: "a", Content: "Diskon besar akhir pekan ini."},
		{ID: "b", Content: "Tips menyeduh kopi di rumah."},
		{ID: "c", Content: "Cerita pelanggan setia kami."},
	}
}

func TestChooseExamplesDefaultsToFirstWhenNoneSelected(t *testing.T) {
	chosen := ChooseExamples(sampleExamples(), nil)
	if len(chosen) != 1 || chosen[0].ID != "a" {
		t.Fatalf("expected the first example only, got %+v", chosen)
	}
}

func TestChooseExamplesMatchesSelectedIDs(t *testing.T) {
	chosen := ChooseExamples(sampleExamples(), []string{"c", "a"})
	if len(chosen) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(chosen))
	}
	// Result keeps the stored order, not the selection order.
	if chosen[0].ID != "a" || chosen[1].ID != "c" {
		t.Errorf("got ids %s, %s", chosen[0].ID, chosen[1].ID)
	}
}

func TestChooseExamplesCapsAtTwo(t *testing.T) {
	chosen := ChooseExamples(sampleExamples(), []string{"a", "b", "c"})
	if len(chosen) != maxSelectedExamples {
		t.Fatalf("expected %d examples, got %d", maxSelectedExamples, len(chosen))
	}
}

func TestChooseExamplesEmptyInput(t *testing.T) {
	if got := ChooseExamples(nil, []string{"a"}); got != nil {
		t.Fatalf("expected nil for empty candidates, got %+v", got)
	}
}

func TestTruncateExamplePrefersSentenceBoundary(t *testing.T) {
	// A period at position 149 of a 160-char text sits past 60% of a
	// 150-char budget, so the cut lands there.
	text := strings.Repeat("x", 148) + ". dan kalimat kedua"
	got := TruncateExample(text, 150)
	if !strings.HasSuffix(got, ".") {
		t.Errorf("expected a sentence-boundary cut, got %q", got)
	}
	if len(got) != 149 {
		t.Errorf("len = %d, want 149", len(got))
	}
}

func TestTruncateExampleFallsBackToEllipsis(t *testing.T) {
	// The only period falls before 60% of the budget.
	text := "Awal. " + strings.Repeat("y", 200)
	got := TruncateExample(text, 100)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis cut, got %q", got)
	}
	if len([]rune(got)) != 103 {
		t.Errorf("rune len = %d, want 103", len([]rune(got)))
	}
}

func TestTruncateExampleMeasuresBoundaryInRunes(t *testing.T) {
	// The period sits at rune 50 (before 60% of a 100-rune budget) but at
	// byte 100 because of the two-byte runes before it. The cut decision
	// must use the rune position, so this falls back to the ellipsis.
	text := strings.Repeat("é", 50) + "." + strings.Repeat("y", 60)
	got := TruncateExample(text, 100)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis cut, got %q", got)
	}
	if len([]rune(got)) != 103 {
		t.Errorf("rune len = %d, want 103", len([]rune(got)))
	}
}

func TestTruncateExampleShortTextUntouched(t *testing.T) {
	text := "Singkat saja."
	if got := TruncateExample(text, 200); got != text {
		t.Errorf("short text must pass through, got %q", got)
	}
}

func TestComposePromptFormat(t *testing.T) {
	examples := sampleExamples()[:2]
	got := ComposePrompt("Tulis caption produk", examples)

	if !strings.HasPrefix(got, "Examples:\n") {
		t.Errorf("missing Examples header: %q", got)
	}
	if !strings.Contains(got, "\n\n---\n\n") {
		t.Errorf("missing separator between examples: %q", got)
	}
	if !strings.HasSuffix(got, "\n\nTask: Tulis caption produk") {
		t.Errorf("missing Task suffix: %q", got)
	}
}

func TestComposePromptWithoutExamplesPassesThrough(t *testing.T) {
	if got := ComposePrompt("Tulis caption produk", nil); got != "Tulis caption produk" {
		t.Errorf("got %q", got)
	}
}

func TestEstimateTokens(t *testing.T) {
	// 40 chars / 4 + 2*200/4 + 100 = 10 + 100 + 100.
	prompt := strings.Repeat("p", 40)
	if got := EstimateTokens(prompt, 2); got != 210 {
		t.Errorf("EstimateTokens = %d, want 210", got)
	}
	if got := EstimateTokens("", 0); got != 100 {
		t.Errorf("empty prompt estimate = %d, want 100", got)
	}
}
