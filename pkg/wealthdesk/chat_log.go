package wealthdesk

import "strings"

// AddChatMessage appends one turn to the durable chat log. This log is
// the system of record for conversation history; the advisor's in-memory
// context window is a separate short-term cache.
func (c *Core) AddChatMessage(userID int64, isUserMessage bool, content string) (*ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewError(ErrCodeInvalidInput, "content is required")
	}
	flag := 0
	if isUserMessage {
		flag = 1
	}
	res, err := c.db.Exec(`
		INSERT INTO chat_messages (user_id, is_user_message, content)
		VALUES (?, ?, ?)
	`, userID, flag, content)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert chat message", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert chat message", err)
	}

	var msg ChatMessage
	var isUser int
	err = c.db.QueryRow(`
		SELECT id, user_id, is_user_message, content, timestamp
		FROM chat_messages WHERE id = ?
	`, id).Scan(&msg.ID, &msg.UserID, &isUser, &msg.Content, &msg.Timestamp)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "read chat message", err)
	}
	msg.IsUserMessage = isUser != 0
	return &msg, nil
}

// GetChatHistory returns a user's turns oldest-to-newest. A positive
// limit keeps only the most recent turns.
func (c *Core) GetChatHistory(userID int64, limit int) ([]ChatMessage, error) {
	query := `
		SELECT id, user_id, is_user_message, content, timestamp
		FROM chat_messages WHERE user_id = ? ORDER BY id DESC
	`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "query chat history", err)
	}
	defer rows.Close()

	messages := []ChatMessage{}
	for rows.Next() {
		var msg ChatMessage
		var isUser int
		if err := rows.Scan(&msg.ID, &msg.UserID, &isUser, &msg.Content, &msg.Timestamp); err != nil {
			return nil, WrapError(ErrCodeDatabase, "scan chat message", err)
		}
		msg.IsUserMessage = isUser != 0
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows come back newest-first; callers want chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
