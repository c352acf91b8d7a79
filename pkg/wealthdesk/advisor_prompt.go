package wealthdesk

import "strings"

// advisorInstructionBlock fixes the assistant persona and behavioral
// rules. It sits after the grounding data and conversation history so
// the model's recency bias favors the rules and the task.
const advisorInstructionBlock = `You are a personal AI wealth advisor. Follow these rules:
- Be concise and professional.
- Ground every piece of advice in the client profile data above.
- Never fabricate portfolio, goal, or market figures that are not in the profile.
- If asked about information outside the profile, say you do not have that data.`

// buildAdvisorPrompt composes the full prompt sent to the completion
// backend. Pure: identical inputs produce identical output. Order is
// deliberate: profile snapshot, then conversation history, then the
// instruction block, then the latest message as the task.
func buildAdvisorPrompt(snapshot string, window []string, latestMessage string) string {
	var b strings.Builder
	b.WriteString(snapshot)

	b.WriteString("\nConversation history:\n")
	if len(window) == 0 {
		b.WriteString("(no prior conversation)\n")
	} else {
		for _, turn := range window {
			b.WriteString(turn)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(advisorInstructionBlock)
	b.WriteString("\n\nRespond to the client's latest message: ")
	b.WriteString(latestMessage)
	return b.String()
}
