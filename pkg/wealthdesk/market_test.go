package wealthdesk

import "testing"

func TestMarketDataSeeded(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	indicators, err := core.GetAllMarketIndicators()
	if err != nil {
		t.Fatalf("GetAllMarketIndicators: %v", err)
	}
	if len(indicators) != 3 {
		t.Fatalf("expected 3 seeded indicators, got %d", len(indicators))
	}

	byName := map[string]MarketIndicator{}
	for _, ind := range indicators {
		byName[ind.Name] = ind
	}
	sp, ok := byName["S&P 500"]
	if !ok {
		t.Fatalf("S&P 500 not seeded")
	}
	if sp.PercentChange.String() != "0.68" {
		t.Errorf("expected 0.68, got %s", sp.PercentChange)
	}
	treasury, ok := byName["10-YR TREASURY"]
	if !ok {
		t.Fatalf("10-YR TREASURY not seeded")
	}
	if treasury.Change.String() != "-0.05" {
		t.Errorf("expected -0.05, got %s", treasury.Change)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	// Reopening the same database must not duplicate seed rows.
	dbPath := core.DBPath()
	if err := core.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	indicators, err := reopened.GetAllMarketIndicators()
	if err != nil {
		t.Fatalf("GetAllMarketIndicators: %v", err)
	}
	if len(indicators) != 3 {
		t.Fatalf("expected 3 indicators after reopen, got %d", len(indicators))
	}
}

func TestAddMarketIndicator(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	ind, err := core.AddMarketIndicator(MarketIndicatorRequest{
		Name: "DOW JONES", Value: "37305.16", Change: "56.81", PercentChange: "0.15",
	})
	if err != nil {
		t.Fatalf("AddMarketIndicator: %v", err)
	}
	if ind.Value.String() != "37305.16" {
		t.Errorf("expected exact value, got %s", ind.Value)
	}

	_, err = core.AddMarketIndicator(MarketIndicatorRequest{
		Name: "DOW JONES", Value: "1", Change: "0", PercentChange: "0",
	})
	if !IsErrorCode(err, ErrCodeDuplicate) {
		t.Errorf("expected DUPLICATE for same name, got %v", err)
	}
}

func TestUpdateMarketIndicator(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	indicators, err := core.GetAllMarketIndicators()
	if err != nil {
		t.Fatalf("GetAllMarketIndicators: %v", err)
	}
	target := indicators[0]

	updated, err := core.UpdateMarketIndicator(target.ID, MarketIndicatorRequest{
		Name: target.Name, Value: "4800.00", Change: "17.55", PercentChange: "0.37",
	})
	if err != nil {
		t.Fatalf("UpdateMarketIndicator: %v", err)
	}
	if updated.Value.String() != "4800.00" {
		t.Errorf("expected 4800.00, got %s", updated.Value)
	}

	missing, err := core.UpdateMarketIndicator(999, MarketIndicatorRequest{
		Name: "X", Value: "1", Change: "0", PercentChange: "0",
	})
	if err != nil {
		t.Fatalf("UpdateMarketIndicator absent: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for absent indicator")
	}
}
