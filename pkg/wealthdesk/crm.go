package wealthdesk

import (
	"fmt"
	"strings"
)

// adminUserID sees every CRM record regardless of ownership, mirroring
// the seeded book-of-business split.
const adminUserID int64 = 1

// GetCRMContacts returns the contacts visible to a user.
func (c *Core) GetCRMContacts(userID int64) ([]CRMContact, error) {
	rows, err := c.db.Query(`
		SELECT id, user_id, name, email, phone, account_id, account_name, status, sentiment,
			last_contact_date, next_contact_date, last_interaction, tags
		FROM crm_contacts
		WHERE user_id = ? OR ? = ?
		ORDER BY id
	`, userID, userID, adminUserID)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "query crm contacts", err)
	}
	defer rows.Close()

	contacts := []CRMContact{}
	for rows.Next() {
		var ct CRMContact
		if err := rows.Scan(&ct.ID, &ct.UserID, &ct.Name, &ct.Email, &ct.Phone, &ct.AccountID,
			&ct.AccountName, &ct.Status, &ct.Sentiment, &ct.LastContactDate, &ct.NextContactDate,
			&ct.LastInteraction, &ct.Tags); err != nil {
			return nil, WrapError(ErrCodeDatabase, "scan crm contact", err)
		}
		contacts = append(contacts, ct)
	}
	return contacts, rows.Err()
}

// GetCRMOpportunities returns the opportunities visible to a user.
func (c *Core) GetCRMOpportunities(userID int64) ([]CRMOpportunity, error) {
	rows, err := c.db.Query(`
		SELECT id, user_id, name, account_id, account_name, stage, amount, probability,
			close_date, opportunity_type, next_step
		FROM crm_opportunities
		WHERE user_id = ? OR ? = ?
		ORDER BY id
	`, userID, userID, adminUserID)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "query crm opportunities", err)
	}
	defer rows.Close()

	opportunities := []CRMOpportunity{}
	for rows.Next() {
		var op CRMOpportunity
		if err := rows.Scan(&op.ID, &op.UserID, &op.Name, &op.AccountID, &op.AccountName,
			&op.Stage, &op.Amount, &op.Probability, &op.CloseDate, &op.Type, &op.NextStep); err != nil {
			return nil, WrapError(ErrCodeDatabase, "scan crm opportunity", err)
		}
		opportunities = append(opportunities, op)
	}
	return opportunities, rows.Err()
}

// GetCRMTasks returns the tasks visible to a user.
func (c *Core) GetCRMTasks(userID int64) ([]CRMTask, error) {
	rows, err := c.db.Query(`
		SELECT id, user_id, subject, related_to, related_to_name, due_date, status, priority, description
		FROM crm_tasks
		WHERE user_id = ? OR ? = ?
		ORDER BY id
	`, userID, userID, adminUserID)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "query crm tasks", err)
	}
	defer rows.Close()

	tasks := []CRMTask{}
	for rows.Next() {
		var t CRMTask
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.RelatedTo, &t.RelatedToName,
			&t.DueDate, &t.Status, &t.Priority, &t.Description); err != nil {
			return nil, WrapError(ErrCodeDatabase, "scan crm task", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// AddCRMTask creates a follow-up task with a sequential TASKnnn id.
func (c *Core) AddCRMTask(req CRMTaskRequest) (*CRMTask, error) {
	if strings.TrimSpace(req.Subject) == "" {
		return nil, NewError(ErrCodeInvalidInput, "subject is required")
	}
	priority := strings.TrimSpace(req.Priority)
	switch priority {
	case "High", "Normal", "Low":
	case "":
		priority = "Normal"
	default:
		return nil, NewError(ErrCodeValidation, "priority must be High, Normal, or Low")
	}
	relatedTo := strings.TrimSpace(req.RelatedTo)
	if relatedTo == "" {
		relatedTo = "ALL"
	}
	relatedToName := strings.TrimSpace(req.RelatedToName)
	if relatedToName == "" {
		relatedToName = "All Clients"
	}

	// Allocate past the highest existing suffix, not COUNT(*)+1, so ids
	// stay unique even after rows are removed.
	var maxSeq int
	if err := c.db.QueryRow(
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM crm_tasks",
	).Scan(&maxSeq); err != nil {
		return nil, WrapError(ErrCodeDatabase, "next crm task id", err)
	}
	id := fmt.Sprintf("TASK%03d", maxSeq+1)

	_, err := c.db.Exec(`
		INSERT INTO crm_tasks (id, user_id, subject, related_to, related_to_name, due_date, status, priority, description)
		VALUES (?, ?, ?, ?, ?, ?, 'Not Started', ?, ?)
	`, id, req.UserID, strings.TrimSpace(req.Subject), relatedTo, relatedToName, req.DueDate, priority, req.Description)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert crm task", err)
	}

	var t CRMTask
	err = c.db.QueryRow(`
		SELECT id, user_id, subject, related_to, related_to_name, due_date, status, priority, description
		FROM crm_tasks WHERE id = ?
	`, id).Scan(&t.ID, &t.UserID, &t.Subject, &t.RelatedTo, &t.RelatedToName,
		&t.DueDate, &t.Status, &t.Priority, &t.Description)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "read crm task", err)
	}
	return &t, nil
}
