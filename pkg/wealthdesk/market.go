package wealthdesk

import (
	"database/sql"
	"strings"
)

const marketColumns = "id, name, value, change, percent_change, last_updated"

func scanIndicator(scanner interface{ Scan(...any) error }) (*MarketIndicator, error) {
	var m MarketIndicator
	err := scanner.Scan(&m.ID, &m.Name, &m.Value, &m.Change, &m.PercentChange, &m.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "scan market indicator", err)
	}
	return &m, nil
}

// GetAllMarketIndicators returns every tracked indicator.
func (c *Core) GetAllMarketIndicators() ([]MarketIndicator, error) {
	rows, err := c.db.Query("SELECT " + marketColumns + " FROM market_data ORDER BY id")
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "query market data", err)
	}
	defer rows.Close()

	indicators := []MarketIndicator{}
	for rows.Next() {
		indicator, err := scanIndicator(rows)
		if err != nil {
			return nil, err
		}
		indicators = append(indicators, *indicator)
	}
	return indicators, rows.Err()
}

func validateIndicatorRequest(req MarketIndicatorRequest) (Amount, Amount, Amount, error) {
	if strings.TrimSpace(req.Name) == "" {
		return Amount{}, Amount{}, Amount{}, NewError(ErrCodeInvalidInput, "name is required")
	}
	value, err := ParseAmount(strings.TrimSpace(req.Value))
	if err != nil {
		return Amount{}, Amount{}, Amount{}, WrapError(ErrCodeValidation, "invalid value", err)
	}
	change, err := ParseAmount(strings.TrimSpace(req.Change))
	if err != nil {
		return Amount{}, Amount{}, Amount{}, WrapError(ErrCodeValidation, "invalid change", err)
	}
	percentChange, err := ParseAmount(strings.TrimSpace(req.PercentChange))
	if err != nil {
		return Amount{}, Amount{}, Amount{}, WrapError(ErrCodeValidation, "invalid percent_change", err)
	}
	return value, change, percentChange, nil
}

// AddMarketIndicator inserts a new indicator.
func (c *Core) AddMarketIndicator(req MarketIndicatorRequest) (*MarketIndicator, error) {
	value, change, percentChange, err := validateIndicatorRequest(req)
	if err != nil {
		return nil, err
	}

	res, err := c.db.Exec(`
		INSERT INTO market_data (name, value, change, percent_change)
		VALUES (?, ?, ?, ?)
	`, strings.TrimSpace(req.Name), value, change, percentChange)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, WrapError(ErrCodeDuplicate, "indicator already exists", err)
		}
		return nil, WrapError(ErrCodeDatabase, "insert market indicator", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert market indicator", err)
	}
	return scanIndicator(c.db.QueryRow("SELECT "+marketColumns+" FROM market_data WHERE id = ?", id))
}

// UpdateMarketIndicator rewrites an indicator. Returns nil when it does
// not exist.
func (c *Core) UpdateMarketIndicator(id int64, req MarketIndicatorRequest) (*MarketIndicator, error) {
	existing, err := scanIndicator(c.db.QueryRow("SELECT "+marketColumns+" FROM market_data WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	value, change, percentChange, err := validateIndicatorRequest(req)
	if err != nil {
		return nil, err
	}

	_, err = c.db.Exec(`
		UPDATE market_data
		SET name = ?, value = ?, change = ?, percent_change = ?, last_updated = CURRENT_TIMESTAMP
		WHERE id = ?
	`, strings.TrimSpace(req.Name), value, change, percentChange, id)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "update market indicator", err)
	}
	return scanIndicator(c.db.QueryRow("SELECT "+marketColumns+" FROM market_data WHERE id = ?", id))
}
