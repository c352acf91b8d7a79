package wealthdesk

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
)

// hashPassword derives a salted SHA-256 digest stored as "salt$hash".
// The corpus carries no dedicated auth library; this keeps credentials
// out of the database in clear text without inventing a dependency.
func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	sum := sha256.Sum256(append(salt, []byte(password)...))
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(sum[:]), nil
}

func verifyPassword(stored, password string) bool {
	parts := strings.SplitN(stored, "$", 2)
	if len(parts) != 2 {
		return false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	sum := sha256.Sum256(append(salt, []byte(password)...))
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(parts[1])) == 1
}

// CreateUser registers a new user with default risk profile and
// investment style when unset.
func (c *Core) CreateUser(req CreateUserRequest) (*User, error) {
	username := normalizeUsername(req.Username)
	if username == "" {
		return nil, NewError(ErrCodeInvalidInput, "username is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, NewError(ErrCodeInvalidInput, "password is required")
	}
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, NewError(ErrCodeInvalidInput, "email is required")
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, NewError(ErrCodeInvalidInput, "full_name is required")
	}

	if existing, err := c.GetUserByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, NewError(ErrCodeDuplicate, "username already exists")
	}

	riskProfile := strings.TrimSpace(req.RiskProfile)
	if riskProfile == "" {
		riskProfile = DefaultRiskProfile
	}
	investmentStyle := strings.TrimSpace(req.InvestmentStyle)
	if investmentStyle == "" {
		investmentStyle = DefaultInvestmentStyle
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, WrapError(ErrCodeInternal, "hash password", err)
	}

	res, err := c.db.Exec(`
		INSERT INTO users (username, password_hash, email, full_name, risk_profile, investment_style)
		VALUES (?, ?, ?, ?, ?, ?)
	`, username, passwordHash, email, fullName, riskProfile, investmentStyle)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, WrapError(ErrCodeDuplicate, "username or email already exists", err)
		}
		return nil, WrapError(ErrCodeDatabase, "insert user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "insert user", err)
	}
	return c.GetUser(id)
}

const userColumns = "id, username, password_hash, email, full_name, risk_profile, investment_style, created_at"

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FullName,
		&u.RiskProfile, &u.InvestmentStyle, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "scan user", err)
	}
	return &u, nil
}

// GetUser returns the user with the given id, or nil when absent.
func (c *Core) GetUser(id int64) (*User, error) {
	row := c.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

// GetUserByUsername returns the user with the given username, or nil when absent.
func (c *Core) GetUserByUsername(username string) (*User, error) {
	row := c.db.QueryRow("SELECT "+userColumns+" FROM users WHERE username = ?", normalizeUsername(username))
	return scanUser(row)
}

// Authenticate checks credentials and returns the matching user.
func (c *Core) Authenticate(username, password string) (*User, error) {
	user, err := c.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !verifyPassword(user.PasswordHash, password) {
		return nil, NewError(ErrCodeUnauthorized, "invalid credentials")
	}
	return user, nil
}
