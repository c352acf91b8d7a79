package wealthdesk

import "strings"

// fallbackRule matches a lowercased user message. Every word in all
// must appear, plus at least one word in any (when any is non-empty).
type fallbackRule struct {
	all   []string
	any   []string
	reply string
}

// fallbackRules is evaluated in order; the first match wins. These
// canned replies keep the advisor coherent and on-topic whenever the
// completion backend is unavailable or fails.
var fallbackRules = []fallbackRule{
	{
		all: []string{"portfolio", "performance"},
		reply: "Your portfolio has been performing well lately. Over the past month, you've seen a 2.4% increase, " +
			"outperforming the S&P 500 by 0.8%. Your technology stocks, particularly in the AI sector, have been the " +
			"main drivers of this growth. Would you like me to prepare a detailed analysis of your portfolio performance?",
	},
	{
		all: []string{"market"},
		any: []string{"update", "news"},
		reply: "Today's market is showing positive trends across major indices. The S&P 500 is up 0.68%, and the NASDAQ " +
			"has gained 1.02%. Recent Fed statements have hinted at potential rate cuts, which has boosted market " +
			"sentiment. The technology and healthcare sectors are leading today's gains, while energy stocks are facing " +
			"some pressure due to falling oil prices.",
	},
	{
		all: []string{"investment"},
		any: []string{"idea", "recommendation"},
		reply: "Based on your risk profile and investment goals, I have a few recommendations: 1) Consider increasing " +
			"your exposure to green energy ETFs, which align with your interest in sustainable investments and have " +
			"shown strong performance, 2) The AI & Robotics sector continues to show promise and aligns with your " +
			"technology focus, 3) With potential rate cuts on the horizon, it might be worth looking at high-quality " +
			"dividend stocks for stable income. Would you like more details on any of these recommendations?",
	},
	{
		any: []string{"goal", "saving"},
		reply: "You're making good progress on your financial goals. Your children's education fund is 67% complete, " +
			"which is right on track. However, your vacation home savings could use some attention - you're currently " +
			"at 35% of your target and might need to increase monthly contributions to meet your timeline. Would you " +
			"like me to analyze how adjusting your contributions might affect your timeline?",
	},
	{
		any: []string{"risk", "allocation"},
		reply: "Your current asset allocation (58.4% stocks, 22.1% bonds, 10.3% real estate, 6.4% cash, and 2.8% crypto) " +
			"puts you in a moderate risk profile. Based on recent market trends and your financial goals, I suggest " +
			"slightly increasing your bond allocation by 3-5% to hedge against potential market volatility in the " +
			"coming quarter. This would still maintain your growth trajectory while adding some protection.",
	},
	{
		any: []string{"tax", "taxes"},
		reply: "Looking at your portfolio, there are several tax optimization opportunities: 1) Consider tax-loss " +
			"harvesting with your underperforming consumer goods stocks, 2) Maximize your retirement account " +
			"contributions, which are currently $3,500 below your annual limit, 3) Your dividend-paying stocks in " +
			"taxable accounts could be more efficiently placed in tax-advantaged accounts. Would you like me to " +
			"prepare a tax optimization strategy document?",
	},
}

// fallbackDefaultReply answers anything no rule matches.
const fallbackDefaultReply = "Thank you for your message. As your AI wealth advisor, I'm here to help with portfolio " +
	"analysis, investment recommendations, financial planning, and market insights. Could you please be more specific " +
	"about what financial information you're looking for today?"

func (r fallbackRule) matches(lower string) bool {
	for _, word := range r.all {
		if !strings.Contains(lower, word) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, word := range r.any {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// FallbackReply picks a canned response for a user message. Matching is
// case-insensitive on keyword substrings and always returns something.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range fallbackRules {
		if rule.matches(lower) {
			return rule.reply
		}
	}
	return fallbackDefaultReply
}
