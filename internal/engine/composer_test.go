package engine

import (
	"strings"
	"testing"

	"github.com/healthbot/backend/internal/knowledge"
)

func TestBuildPromptDeterministic(t *testing.T) {
	kb := knowledge.Default()

	a := BuildPrompt("I feel dizzy", "en", kb)
	b := BuildPrompt("I feel dizzy", "en", kb)

	if a != b {
		t.Fatalf("identical inputs produced different prompts")
	}
}

func TestBuildPromptContents(t *testing.T) {
	kb := knowledge.Default()
	prompt := BuildPrompt("what causes joint pain?", "hi", kb)

	if !strings.Contains(prompt, "User's preferred language: hi") {
		t.Fatalf("prompt missing language line")
	}
	if !strings.Contains(prompt, "IMPORTANT FORMATTING RULES:") {
		t.Fatalf("prompt missing formatting rules")
	}
	if !strings.Contains(prompt, "## 🏥 [Main Topic]") {
		t.Fatalf("prompt missing response template")
	}

	// Every catalog entry is embedded, not a selection.
	for _, c := range kb.Conditions() {
		if !strings.Contains(prompt, c.Name) {
			t.Fatalf("prompt missing condition %q", c.Name)
		}
	}

	if !strings.HasSuffix(prompt, "User message: what causes joint pain?") {
		t.Fatalf("user message must come last, got tail %q", prompt[len(prompt)-60:])
	}
}

func TestBuildPromptEmbedsConditionDetails(t *testing.T) {
	prompt := BuildPrompt("m", "en", knowledge.Default())

	if !strings.Contains(prompt, "use mosquito nets") {
		t.Fatalf("prompt missing prevention steps")
	}
	if !strings.Contains(prompt, "antimalarial medications, rest, fluids, hospital care if severe") {
		t.Fatalf("prompt missing treatment text")
	}
}
