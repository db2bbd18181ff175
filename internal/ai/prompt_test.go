package ai

import (
	"strings"
	"testing"
)

func TestBuildSystemPromptOrder(t *testing.T) {
	prompt := BuildSystemPrompt("funny")

	wantParts := []string{
		baseSystem,
		toneInstructions["funny"],
		toneStyleGuides["funny"],
		antiFiller,
	}

	pos := -1
	for _, part := range wantParts {
		idx := strings.Index(prompt, part)
		if idx < 0 {
			t.Fatalf("prompt missing part %q", part)
		}
		if idx <= pos {
			t.Fatalf("part %q out of order", part)
		}
		pos = idx
	}
}

func TestBuildSystemPromptUnknownToneFallsBackToNormal(t *testing.T) {
	got := BuildSystemPrompt("sarcastic")
	want := BuildSystemPrompt("normal")
	if got != want {
		t.Errorf("unknown tone should use the normal entries:\ngot:  %s\nwant: %s", got, want)
	}
}

func TestBuildSystemPromptMixedMapCoverage(t *testing.T) {
	// "professional" has a tone instruction but no style guide; the style
	// guide falls back to normal independently.
	prompt := BuildSystemPrompt("professional")
	if !strings.Contains(prompt, toneInstructions["professional"]) {
		t.Errorf("expected professional tone instruction")
	}
	if !strings.Contains(prompt, toneStyleGuides["normal"]) {
		t.Errorf("expected normal style guide fallback")
	}
}
