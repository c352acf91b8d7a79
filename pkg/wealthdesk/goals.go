package wealthdesk

import (
	"database/sql"
	"strings"
)

const goalColumns = "id, user_id, name, icon, target_amount, current_amount, target_date, created_at"

func scanGoal(scanner interface{ Scan(...any) error }) (*FinancialGoal, error) {
	var g FinancialGoal
	err := scanner.Scan(&g.ID, &g.UserID, &g.Name, &g.Icon, &g.TargetAmount,
		&g.CurrentAmount, &g.TargetDate, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "scan financial goal", err)
	}
	return &g, nil
}

// GetFinancialGoals returns all goals for a user.
func (c *Core) GetFinancialGoals(userID int64) ([]FinancialGoal, error) {
	rows, err := c.db.Query("SELECT "+goalColumns+" FROM financial_goals WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "query financial goals", err)
	}
	defer rows.Close()

	goals := []FinancialGoal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}
	return goals, rows.Err()
}

// GetFinancialGoal returns one goal by id, or nil when absent.
func (c *Core) GetFinancialGoal(id int64) (*FinancialGoal, error) {
	return scanGoal(c.db.QueryRow("SELECT "+goalColumns+" FROM financial_goals WHERE id = ?", id))
}

func validateGoalRequest(req FinancialGoalRequest) (Amount, Amount, error) {
	if strings.TrimSpace(req.Name) == "" {
		return Amount{}, Amount{}, NewError(ErrCodeInvalidInput, "name is required")
	}
	target, err := ParseAmount(strings.TrimSpace(req.TargetAmount))
	if err != nil {
		return Amount{}, Amount{}, WrapError(ErrCodeValidation, "invalid target_amount", err)
	}
	current, err := ParseAmount(strings.TrimSpace(req.CurrentAmount))
	if err != nil {
		return Amount{}, Amount{}, WrapError(ErrCodeValidation, "invalid current_amount", err)
	}
	return target, current, nil
}

// AddFinancialGoal inserts a new goal.
func (c *Core) AddFinancialGoal(req FinancialGoalRequest) (*FinancialGoal, error) {
	target, current, err := validateGoalRequest(req)
	if err != nil {
		return nil, err
	}
	if user, err := c.GetUser(req.UserID); err != nil {
		return nil, err
	} else if user == nil {
		return nil, NewError(ErrCodeNotFound, "user not found")
	}

	res, err := c.db.Exec(`
		INSERT INTO financial_goals (user_id, name, icon, target_amount, current_amount, target_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.UserID, strings.TrimSpace(req.Name), req.Icon, target, current, req.TargetDate)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert financial goal", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert financial goal", err)
	}
	return c.GetFinancialGoal(id)
}

// UpdateFinancialGoal rewrites a goal. Returns nil when it does not exist.
func (c *Core) UpdateFinancialGoal(id int64, req FinancialGoalRequest) (*FinancialGoal, error) {
	existing, err := c.GetFinancialGoal(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	target, current, err := validateGoalRequest(req)
	if err != nil {
		return nil, err
	}

	_, err = c.db.Exec(`
		UPDATE financial_goals
		SET name = ?, icon = ?, target_amount = ?, current_amount = ?, target_date = ?
		WHERE id = ?
	`, strings.TrimSpace(req.Name), req.Icon, target, current, req.TargetDate, id)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "update financial goal", err)
	}
	return c.GetFinancialGoal(id)
}

// DeleteFinancialGoal removes a goal and returns the deleted record, or
// nil when it did not exist.
func (c *Core) DeleteFinancialGoal(id int64) (*FinancialGoal, error) {
	existing, err := c.GetFinancialGoal(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if _, err := c.db.Exec("DELETE FROM financial_goals WHERE id = ?", id); err != nil {
		return nil, WrapError(ErrCodeDatabase, "delete financial goal", err)
	}
	return existing, nil
}
