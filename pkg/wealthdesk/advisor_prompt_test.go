package wealthdesk

import (
	"strings"
	"testing"
)

func TestBuildAdvisorPromptOrdering(t *testing.T) {
	snapshot := "Client profile for Test (user 1, t@example.com)\n"
	window := []string{"User: hi", "Assistant: hello"}

	prompt := buildAdvisorPrompt(snapshot, window, "what next?")

	profileIdx := strings.Index(prompt, "Client profile")
	historyIdx := strings.Index(prompt, "Conversation history:")
	instructionIdx := strings.Index(prompt, "You are a personal AI wealth advisor")
	taskIdx := strings.Index(prompt, "Respond to the client's latest message: what next?")

	for name, idx := range map[string]int{
		"profile": profileIdx, "history": historyIdx,
		"instructions": instructionIdx, "task": taskIdx,
	} {
		if idx < 0 {
			t.Fatalf("prompt missing %s section:\n%s", name, prompt)
		}
	}
	if !(profileIdx < historyIdx && historyIdx < instructionIdx && instructionIdx < taskIdx) {
		t.Fatalf("sections out of order: profile=%d history=%d instructions=%d task=%d",
			profileIdx, historyIdx, instructionIdx, taskIdx)
	}
}

func TestBuildAdvisorPromptIncludesAllTurns(t *testing.T) {
	window := []string{"User: one", "Assistant: two", "User: three"}
	prompt := buildAdvisorPrompt("snapshot\n", window, "three")

	for _, turn := range window {
		if !strings.Contains(prompt, turn) {
			t.Errorf("prompt missing turn %q", turn)
		}
	}
}

func TestBuildAdvisorPromptEmptyWindow(t *testing.T) {
	prompt := buildAdvisorPrompt("snapshot\n", nil, "first message")
	if !strings.Contains(prompt, "(no prior conversation)") {
		t.Fatalf("expected placeholder for empty history:\n%s", prompt)
	}
}

func TestBuildAdvisorPromptDeterministic(t *testing.T) {
	snapshot := "profile data\n"
	window := []string{"User: hi"}

	first := buildAdvisorPrompt(snapshot, window, "msg")
	second := buildAdvisorPrompt(snapshot, window, "msg")
	if first != second {
		t.Fatalf("identical inputs produced different prompts")
	}
}
