package wealthdesk

import (
	"database/sql"
	"strings"
)

const assetColumns = "id, user_id, asset_class, asset_name, ticker, value, percentage, last_updated"

func scanAsset(scanner interface{ Scan(...any) error }) (*PortfolioAsset, error) {
	var a PortfolioAsset
	err := scanner.Scan(&a.ID, &a.UserID, &a.AssetClass, &a.AssetName, &a.Ticker,
		&a.Value, &a.Percentage, &a.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "scan portfolio asset", err)
	}
	return &a, nil
}

// GetPortfolioAssets returns all allocation rows for a user.
func (c *Core) GetPortfolioAssets(userID int64) ([]PortfolioAsset, error) {
	rows, err := c.db.Query("SELECT "+assetColumns+" FROM portfolio_assets WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "query portfolio assets", err)
	}
	defer rows.Close()

	assets := []PortfolioAsset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

// GetPortfolioAsset returns one asset by id, or nil when absent.
func (c *Core) GetPortfolioAsset(id int64) (*PortfolioAsset, error) {
	return scanAsset(c.db.QueryRow("SELECT "+assetColumns+" FROM portfolio_assets WHERE id = ?", id))
}

func validateAssetRequest(req PortfolioAssetRequest) (Amount, Amount, error) {
	if strings.TrimSpace(req.AssetClass) == "" {
		return Amount{}, Amount{}, NewError(ErrCodeInvalidInput, "asset_class is required")
	}
	if strings.TrimSpace(req.AssetName) == "" {
		return Amount{}, Amount{}, NewError(ErrCodeInvalidInput, "asset_name is required")
	}
	value, err := ParseAmount(strings.TrimSpace(req.Value))
	if err != nil {
		return Amount{}, Amount{}, WrapError(ErrCodeValidation, "invalid value", err)
	}
	percentage, err := ParseAmount(strings.TrimSpace(req.Percentage))
	if err != nil {
		return Amount{}, Amount{}, WrapError(ErrCodeValidation, "invalid percentage", err)
	}
	return value, percentage, nil
}

// AddPortfolioAsset inserts a new allocation row.
func (c *Core) AddPortfolioAsset(req PortfolioAssetRequest) (*PortfolioAsset, error) {
	value, percentage, err := validateAssetRequest(req)
	if err != nil {
		return nil, err
	}
	if user, err := c.GetUser(req.UserID); err != nil {
		return nil, err
	} else if user == nil {
		return nil, NewError(ErrCodeNotFound, "user not found")
	}

	res, err := c.db.Exec(`
		INSERT INTO portfolio_assets (user_id, asset_class, asset_name, ticker, value, percentage)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.UserID, strings.TrimSpace(req.AssetClass), strings.TrimSpace(req.AssetName), req.Ticker, value, percentage)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert portfolio asset", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert portfolio asset", err)
	}
	return c.GetPortfolioAsset(id)
}

// UpdatePortfolioAsset rewrites an allocation row. Returns nil when the
// asset does not exist.
func (c *Core) UpdatePortfolioAsset(id int64, req PortfolioAssetRequest) (*PortfolioAsset, error) {
	existing, err := c.GetPortfolioAsset(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	value, percentage, err := validateAssetRequest(req)
	if err != nil {
		return nil, err
	}

	_, err = c.db.Exec(`
		UPDATE portfolio_assets
		SET asset_class = ?, asset_name = ?, ticker = ?, value = ?, percentage = ?,
			last_updated = CURRENT_TIMESTAMP
		WHERE id = ?
	`, strings.TrimSpace(req.AssetClass), strings.TrimSpace(req.AssetName), req.Ticker, value, percentage, id)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "update portfolio asset", err)
	}
	return c.GetPortfolioAsset(id)
}

// DeletePortfolioAsset removes an allocation row and returns the deleted
// record, or nil when it did not exist.
func (c *Core) DeletePortfolioAsset(id int64) (*PortfolioAsset, error) {
	existing, err := c.GetPortfolioAsset(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if _, err := c.db.Exec("DELETE FROM portfolio_assets WHERE id = ?", id); err != nil {
		return nil, WrapError(ErrCodeDatabase, "delete portfolio asset", err)
	}
	return existing, nil
}
