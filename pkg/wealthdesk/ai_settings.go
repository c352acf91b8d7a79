package wealthdesk

import (
	"database/sql"
	"strings"
)

const defaultAIProvider = ProviderGemini

var validAIProviders = map[string]struct{}{
	ProviderGemini:    {},
	ProviderOpenAI:    {},
	ProviderAnthropic: {},
}

func defaultAISettings() AISettings {
	return AISettings{
		Provider: defaultAIProvider,
		Model:    "",
	}
}

func normalizeAISettings(settings AISettings) AISettings {
	normalized := settings
	normalized.Provider = strings.ToLower(strings.TrimSpace(normalized.Provider))
	normalized.Model = strings.TrimSpace(normalized.Model)
	if _, ok := validAIProviders[normalized.Provider]; !ok {
		normalized.Provider = defaultAIProvider
	}
	return normalized
}

// GetAISettings returns persisted advisor settings. The API key never
// touches the database; it is resolved from the environment.
func (c *Core) GetAISettings() (AISettings, error) {
	settings := defaultAISettings()

	err := c.db.QueryRow(`
		SELECT provider, model FROM ai_settings WHERE id = 1
	`).Scan(&settings.Provider, &settings.Model)
	if err == sql.ErrNoRows {
		return settings, nil
	}
	if err != nil {
		return AISettings{}, WrapError(ErrCodeDatabase, "query ai settings", err)
	}
	return normalizeAISettings(settings), nil
}

// SetAISettings persists advisor settings.
func (c *Core) SetAISettings(settings AISettings) (AISettings, error) {
	normalized := normalizeAISettings(settings)

	_, err := c.db.Exec(`
		INSERT INTO ai_settings (id, provider, model, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			provider = excluded.provider,
			model = excluded.model,
			updated_at = CURRENT_TIMESTAMP
	`, normalized.Provider, normalized.Model)
	if err != nil {
		return AISettings{}, WrapError(ErrCodeDatabase, "save ai settings", err)
	}
	return normalized, nil
}
