package wealthdesk

import (
	"strings"
	"testing"
)

func TestFallbackReplyKeywords(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"How is my portfolio performance this month?", "Your portfolio has been performing well"},
		{"Any market news today?", "Today's market is showing positive trends"},
		{"give me a market update", "Today's market is showing positive trends"},
		{"Do you have an investment idea for me?", "Based on your risk profile"},
		{"investment recommendation please", "Based on your risk profile"},
		{"How are my savings goals?", "You're making good progress"},
		{"Should I change my allocation?", "Your current asset allocation"},
		{"What about my risk level?", "Your current asset allocation"},
		{"Any tax tips?", "tax optimization opportunities"},
		{"hello there", "Thank you for your message"},
	}

	for _, tc := range cases {
		got := FallbackReply(tc.message)
		if !strings.Contains(got, tc.want) {
			t.Errorf("FallbackReply(%q) = %q, want substring %q", tc.message, got, tc.want)
		}
	}
}

func TestFallbackReplyCaseInsensitive(t *testing.T) {
	lower := FallbackReply("portfolio performance")
	upper := FallbackReply("PORTFOLIO PERFORMANCE")
	if lower != upper {
		t.Fatalf("matching must ignore case")
	}
}

func TestFallbackReplyRuleOrder(t *testing.T) {
	// "portfolio performance" outranks the later allocation rule even
	// when both could match.
	got := FallbackReply("portfolio performance and risk allocation")
	if !strings.Contains(got, "Your portfolio has been performing well") {
		t.Fatalf("expected first matching rule to win, got %q", got)
	}
}

func TestFallbackReplyNeverEmpty(t *testing.T) {
	for _, message := range []string{"", "   ", "xyzzy", "9000"} {
		if FallbackReply(message) == "" {
			t.Fatalf("FallbackReply(%q) returned empty string", message)
		}
	}
}
