package wealthdesk

import "strings"

func strPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
