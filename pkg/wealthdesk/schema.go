package wealthdesk

import (
	"database/sql"
	"fmt"
)

func initDatabase(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			risk_profile TEXT NOT NULL DEFAULT 'Moderate',
			investment_style TEXT NOT NULL DEFAULT 'Growth',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	// Monetary columns are TEXT so decimal values round-trip exactly.
	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS portfolio_assets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			asset_class TEXT NOT NULL,
			asset_name TEXT NOT NULL,
			ticker TEXT,
			value TEXT NOT NULL,
			percentage TEXT NOT NULL,
			last_updated DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS financial_goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			name TEXT NOT NULL,
			icon TEXT,
			target_amount TEXT NOT NULL,
			current_amount TEXT NOT NULL,
			target_date TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS chat_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			is_user_message INTEGER NOT NULL,
			content TEXT NOT NULL,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}
	if err := exec(tx, `
		CREATE INDEX IF NOT EXISTS idx_chat_messages_user ON chat_messages(user_id, id)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS market_data (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			value TEXT NOT NULL,
			change TEXT NOT NULL,
			percent_change TEXT NOT NULL,
			last_updated DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS crm_contacts (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			account_id TEXT NOT NULL,
			account_name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Active',
			sentiment TEXT NOT NULL DEFAULT 'Neutral',
			last_contact_date TEXT,
			next_contact_date TEXT,
			last_interaction TEXT,
			tags TEXT
		)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS crm_opportunities (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			account_id TEXT NOT NULL,
			account_name TEXT NOT NULL,
			stage TEXT NOT NULL,
			amount TEXT NOT NULL,
			probability INTEGER NOT NULL DEFAULT 0,
			close_date TEXT,
			opportunity_type TEXT NOT NULL,
			next_step TEXT
		)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS crm_tasks (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL,
			subject TEXT NOT NULL,
			related_to TEXT NOT NULL,
			related_to_name TEXT NOT NULL,
			due_date TEXT,
			status TEXT NOT NULL DEFAULT 'Not Started',
			priority TEXT NOT NULL DEFAULT 'Normal',
			description TEXT
		)
	`); err != nil {
		return err
	}

	if err := exec(tx, `
		CREATE TABLE IF NOT EXISTS ai_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			provider TEXT NOT NULL DEFAULT 'gemini',
			model TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	if err := seedMarketData(tx); err != nil {
		return err
	}
	if err := seedCRM(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func exec(tx *sql.Tx, query string, args ...any) error {
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("schema exec failed: %w", err)
	}
	return nil
}

// seedMarketData inserts the starter indicator rows on first run.
func seedMarketData(tx *sql.Tx) error {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM market_data").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := [][4]string{
		{"S&P 500", "4782.45", "32.21", "0.68"},
		{"NASDAQ", "15943.12", "161.23", "1.02"},
		{"10-YR TREASURY", "3.47", "-0.05", "-1.42"},
	}
	for _, row := range seed {
		if err := exec(tx, `
			INSERT INTO market_data (name, value, change, percent_change)
			VALUES (?, ?, ?, ?)
		`, row[0], row[1], row[2], row[3]); err != nil {
			return err
		}
	}
	return nil
}

// seedCRM inserts demo contacts, opportunities, and tasks on first run.
// User 1 owns the first book of business, user 2 the second.
func seedCRM(tx *sql.Tx) error {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM crm_contacts").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	contacts := []CRMContact{
		{ID: "SF001", UserID: 1, Name: "John Smith", Email: "john.smith@example.com", Phone: strPtr("(555) 123-4567"), AccountID: "ACC001", AccountName: "Smith Financial Group", Status: "Active", Sentiment: "Positive", LastContactDate: strPtr("2023-12-15"), NextContactDate: strPtr("2024-01-15"), LastInteraction: strPtr("Portfolio review meeting"), Tags: strPtr("High Value,Retirement Planning")},
		{ID: "SF002", UserID: 1, Name: "Jane Doe", Email: "jane.doe@example.com", Phone: strPtr("(555) 987-6543"), AccountID: "ACC002", AccountName: "Doe Investments LLC", Status: "Active", Sentiment: "Neutral", LastContactDate: strPtr("2023-12-10"), NextContactDate: strPtr("2024-01-10"), LastInteraction: strPtr("Investment strategy discussion"), Tags: strPtr("New Client,Growth Portfolio")},
		{ID: "SF003", UserID: 1, Name: "Robert Johnson", Email: "robert.j@example.com", Phone: strPtr("(555) 234-5678"), AccountID: "ACC003", AccountName: "Johnson Family Trust", Status: "Inactive", Sentiment: "Negative", LastContactDate: strPtr("2023-11-05"), NextContactDate: strPtr("2024-01-20"), LastInteraction: strPtr("Dispute resolution call"), Tags: strPtr("At Risk,Needs Follow-up")},
		{ID: "SF004", UserID: 2, Name: "Sarah Williams", Email: "s.williams@example.com", Phone: strPtr("(555) 345-6789"), AccountID: "ACC004", AccountName: "Williams Consulting", Status: "Active", Sentiment: "Positive", LastContactDate: strPtr("2023-12-20"), NextContactDate: strPtr("2024-01-25"), LastInteraction: strPtr("Tax planning session"), Tags: strPtr("Tax Strategy,Business Owner")},
		{ID: "SF005", UserID: 2, Name: "Michael Brown", Email: "m.brown@example.com", Phone: strPtr("(555) 456-7890"), AccountID: "ACC005", AccountName: "Brown Industries Pension", Status: "Active", Sentiment: "Neutral", LastContactDate: strPtr("2023-12-18"), NextContactDate: strPtr("2024-01-18"), LastInteraction: strPtr("Pension fund review"), Tags: strPtr("Institutional Client,Conservative")},
	}
	for _, c := range contacts {
		if err := exec(tx, `
			INSERT INTO crm_contacts
				(id, user_id, name, email, phone, account_id, account_name, status, sentiment,
				 last_contact_date, next_contact_date, last_interaction, tags)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, c.ID, c.UserID, c.Name, c.Email, c.Phone, c.AccountID, c.AccountName, c.Status,
			c.Sentiment, c.LastContactDate, c.NextContactDate, c.LastInteraction, c.Tags); err != nil {
			return err
		}
	}

	type oppSeed struct {
		id, name, accountID, accountName, stage, amount string
		probability                                     int
		closeDate, oppType, nextStep                    string
		userID                                          int64
	}
	opportunities := []oppSeed{
		{"OPP001", "Retirement Portfolio Expansion", "ACC001", "Smith Financial Group", "Qualification", "250000", 30, "2024-03-15", "Portfolio Expansion", "Follow-up meeting to discuss risk tolerance", 1},
		{"OPP002", "Tax-Advantaged Investment Strategy", "ACC002", "Doe Investments LLC", "Needs Analysis", "175000", 50, "2024-02-28", "New Investment", "Present investment options", 1},
		{"OPP003", "Estate Planning Services", "ACC003", "Johnson Family Trust", "Proposal", "120000", 70, "2024-02-15", "Estate Planning", "Review and sign proposal documents", 1},
		{"OPP004", "Business Succession Planning", "ACC004", "Williams Consulting", "Negotiation", "320000", 85, "2024-01-30", "Business Planning", "Finalize terms and timeline", 2},
		{"OPP005", "Pension Fund Restructuring", "ACC005", "Brown Industries Pension", "Closed Won", "500000", 100, "2023-12-20", "Fund Restructuring", "Implement new allocation strategy", 2},
	}
	for _, o := range opportunities {
		if err := exec(tx, `
			INSERT INTO crm_opportunities
				(id, user_id, name, account_id, account_name, stage, amount, probability,
				 close_date, opportunity_type, next_step)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, o.id, o.userID, o.name, o.accountID, o.accountName, o.stage, o.amount,
			o.probability, o.closeDate, o.oppType, o.nextStep); err != nil {
			return err
		}
	}

	type taskSeed struct {
		id, subject, relatedTo, relatedToName, dueDate, status, priority, description string
		userID                                                                        int64
	}
	tasks := []taskSeed{
		{"TASK001", "Follow-up call with John Smith", "SF001", "John Smith", "2024-01-10", "Not Started", "High", "Discuss portfolio performance and review new retirement options", 1},
		{"TASK002", "Prepare investment proposal for Jane Doe", "SF002", "Jane Doe", "2024-01-08", "In Progress", "Normal", "Create custom proposal for tax-advantaged growth portfolio", 1},
		{"TASK003", "Escalation call with Robert Johnson", "SF003", "Robert Johnson", "2024-01-05", "Not Started", "High", "Address concerns about recent market volatility and portfolio performance", 1},
		{"TASK004", "Tax planning document preparation", "SF004", "Sarah Williams", "2024-01-15", "Not Started", "Normal", "Prepare end-of-year tax planning documents", 2},
		{"TASK005", "Quarterly review meeting", "SF005", "Michael Brown", "2024-01-20", "Not Started", "Normal", "Conduct quarterly performance review for pension fund", 2},
		{"TASK006", "Send market update newsletter", "ALL", "All Clients", "2024-01-12", "Not Started", "Low", "Send the monthly market update newsletter to all active clients", 1},
	}
	for _, t := range tasks {
		if err := exec(tx, `
			INSERT INTO crm_tasks
				(id, user_id, subject, related_to, related_to_name, due_date, status, priority, description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.id, t.userID, t.subject, t.relatedTo, t.relatedToName, t.dueDate, t.status,
			t.priority, t.description); err != nil {
			return err
		}
	}
	return nil
}
