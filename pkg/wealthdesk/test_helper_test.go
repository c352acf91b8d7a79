package wealthdesk

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestDB creates a temporary database for testing and returns a Core instance.
// The caller should defer cleanup() to remove the temp file.
func setupTestDB(t *testing.T) (*Core, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "wealthdesk-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	core, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open test db: %v", err)
	}

	cleanup := func() {
		core.Close()
		os.RemoveAll(tmpDir)
	}

	return core, cleanup
}

// testUser registers a user and returns it.
func testUser(t *testing.T, core *Core, username string) *User {
	t.Helper()
	user, err := core.CreateUser(CreateUserRequest{
		Username: username,
		Password: "secret123",
		Email:    username + "@example.com",
		FullName: "Test " + username,
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// testAsset adds a portfolio asset for a user.
func testAsset(t *testing.T, core *Core, userID int64, assetClass, value, percentage string) *PortfolioAsset {
	t.Helper()
	asset, err := core.AddPortfolioAsset(PortfolioAssetRequest{
		UserID:     userID,
		AssetClass: assetClass,
		AssetName:  assetClass + " holdings",
		Value:      value,
		Percentage: percentage,
	})
	if err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// testGoal adds a financial goal for a user.
func testGoal(t *testing.T, core *Core, userID int64, name, target, current string) *FinancialGoal {
	t.Helper()
	goal, err := core.AddFinancialGoal(FinancialGoalRequest{
		UserID:        userID,
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current,
	})
	if err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
