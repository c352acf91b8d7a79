package mobile

import (
	"context"
	"encoding/json"
	"fmt"

	"wealthdesk/pkg/wealthdesk"
)

// Core wraps the WealthDesk core for gomobile bindings. Methods return
// JSON strings because gomobile cannot bind slices of structs.
type Core struct {
	core    *wealthdesk.Core
	advisor *wealthdesk.Advisor
}

// Open initializes the core with a database path. The embedded advisor
// has no completion backend and answers from fallback responses; mobile
// hosts call ConfigureCompletion to attach one.
func Open(dbPath string) (*Core, error) {
	core, err := wealthdesk.Open(dbPath)
	if err != nil {
		return nil, err
	}
	advisor, err := wealthdesk.NewAdvisor(wealthdesk.AdvisorOptions{
		Store:  core,
		Logger: core.Logger(),
	})
	if err != nil {
		core.Close()
		return nil, err
	}
	return &Core{core: core, advisor: advisor}, nil
}

// Close releases resources.
func (c *Core) Close() error {
	if c == nil || c.core == nil {
		return nil
	}
	return c.core.Close()
}

// ConfigureCompletion attaches a completion backend to the advisor.
func (c *Core) ConfigureCompletion(provider, apiKey, model string) error {
	return c.advisor.SetCompletionConfig(wealthdesk.CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	})
}

// GetPortfolioJSON returns a user's portfolio assets as JSON.
func (c *Core) GetPortfolioJSON(userID int64) (string, error) {
	data, err := c.core.GetPortfolioAssets(userID)
	if err != nil {
		return "", err
	}
	return marshalJSON(data)
}

// GetGoalsJSON returns a user's financial goals as JSON.
func (c *Core) GetGoalsJSON(userID int64) (string, error) {
	data, err := c.core.GetFinancialGoals(userID)
	if err != nil {
		return "", err
	}
	return marshalJSON(data)
}

// GetMarketDataJSON returns all market indicators as JSON.
func (c *Core) GetMarketDataJSON() (string, error) {
	data, err := c.core.GetAllMarketIndicators()
	if err != nil {
		return "", err
	}
	return marshalJSON(data)
}

// GetChatHistoryJSON returns a user's chat history as JSON. A positive
// limit keeps only the most recent turns.
func (c *Core) GetChatHistoryJSON(userID int64, limit int) (string, error) {
	data, err := c.core.GetChatHistory(userID, limit)
	if err != nil {
		return "", err
	}
	return marshalJSON(data)
}

// GenerateReply runs one advisor turn and returns the saved assistant
// message as JSON. Both turns are persisted to the chat log.
func (c *Core) GenerateReply(userID int64, message string) (string, error) {
	if _, err := c.core.AddChatMessage(userID, true, message); err != nil {
		return "", err
	}
	reply, err := c.advisor.GenerateReply(context.Background(), userID, message)
	if err != nil {
		return "", err
	}
	saved, err := c.core.AddChatMessage(userID, false, reply)
	if err != nil {
		return "", err
	}
	return marshalJSON(saved)
}

func marshalJSON(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal response: %w", err)
	}
	return string(raw), nil
}
