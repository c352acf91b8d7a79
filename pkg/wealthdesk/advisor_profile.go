package wealthdesk

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProfileStore is the storage surface the advisor reads a user's
// financial profile from. *Core satisfies it.
type ProfileStore interface {
	GetUser(id int64) (*User, error)
	GetPortfolioAssets(userID int64) ([]PortfolioAsset, error)
	GetFinancialGoals(userID int64) ([]FinancialGoal, error)
	GetAllMarketIndicators() ([]MarketIndicator, error)
}

// goalPercentComplete computes goal progress as a whole percentage,
// clamped to [0, 100]. A non-positive target means zero progress rather
// than a division error.
func goalPercentComplete(current, target Amount) int64 {
	if target.Sign() <= 0 {
		return 0
	}
	pct := current.Div(target.Decimal).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// buildProfileSnapshot renders a user's financial state as structured
// text for prompt grounding. The user lookup is mandatory; holdings,
// goals, and market data degrade to empty sections on failure.
func buildProfileSnapshot(store ProfileStore, userID int64, now time.Time) (string, error) {
	user, err := store.GetUser(userID)
	if err != nil {
		return "", WrapError(ErrCodeProfileUnavailable, "load user profile", err)
	}
	if user == nil {
		return "", NewError(ErrCodeProfileUnavailable, fmt.Sprintf("user %d not found", userID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Client profile for %s (user %d, %s)\n", user.FullName, user.ID, user.Email)
	fmt.Fprintf(&b, "Risk profile: %s\n", user.RiskProfile)
	fmt.Fprintf(&b, "Investment style: %s\n", user.InvestmentStyle)

	b.WriteString("\nPortfolio allocation:\n")
	assets, err := store.GetPortfolioAssets(userID)
	if err != nil || len(assets) == 0 {
		b.WriteString("(no portfolio data available)\n")
	} else {
		for _, asset := range assets {
			fmt.Fprintf(&b, "%s: %s%%\n", asset.AssetClass, asset.Percentage.String())
		}
	}

	b.WriteString("\nFinancial goals:\n")
	goals, err := store.GetFinancialGoals(userID)
	if err != nil || len(goals) == 0 {
		b.WriteString("(no goals set)\n")
	} else {
		for _, goal := range goals {
			date := "No date set"
			if goal.TargetDate != nil && *goal.TargetDate != "" {
				date = *goal.TargetDate
			}
			fmt.Fprintf(&b, "%s: %s of %s (%d%% complete, target date: %s)\n",
				goal.Name, goal.CurrentAmount.String(), goal.TargetAmount.String(),
				goalPercentComplete(goal.CurrentAmount, goal.TargetAmount), date)
		}
	}

	b.WriteString("\nMarket indicators:\n")
	indicators, err := store.GetAllMarketIndicators()
	if err != nil || len(indicators) == 0 {
		b.WriteString("(no market data available)\n")
	} else {
		for _, indicator := range indicators {
			fmt.Fprintf(&b, "%s: %s (%s%%)\n",
				indicator.Name, indicator.Value.String(), indicator.PercentChange.Signed())
		}
	}

	fmt.Fprintf(&b, "\nCurrent date: %s\n", now.Format("2006-01-02"))
	return b.String(), nil
}
