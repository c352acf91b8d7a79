package wealthdesk

import (
	"strings"
	"testing"
)

func TestCreateUserAndDefaults(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := core.CreateUser(CreateUserRequest{
		Username: "  Alice ",
		Password: "hunter2secret",
		Email:    "Alice@Example.com",
		FullName: "Alice Chen",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected normalized username alice, got %q", user.Username)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}
	if user.RiskProfile != DefaultRiskProfile {
		t.Errorf("expected default risk profile, got %q", user.RiskProfile)
	}
	if user.InvestmentStyle != DefaultInvestmentStyle {
		t.Errorf("expected default investment style, got %q", user.InvestmentStyle)
	}
	if user.PasswordHash == "" || strings.Contains(user.PasswordHash, "hunter2secret") {
		t.Errorf("password must be stored hashed")
	}
}

func TestCreateUserValidation(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	cases := []struct {
		name string
		req  CreateUserRequest
	}{
		{"missing username", CreateUserRequest{Password: "p", Email: "e@x.com", FullName: "N"}},
		{"missing password", CreateUserRequest{Username: "u", Email: "e@x.com", FullName: "N"}},
		{"missing email", CreateUserRequest{Username: "u", Password: "p", FullName: "N"}},
		{"missing full name", CreateUserRequest{Username: "u", Password: "p", Email: "e@x.com"}},
	}
	for _, tc := range cases {
		if _, err := core.CreateUser(tc.req); !IsErrorCode(err, ErrCodeInvalidInput) {
			t.Errorf("%s: expected INVALID_INPUT, got %v", tc.name, err)
		}
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	testUser(t, core, "bob")
	_, err := core.CreateUser(CreateUserRequest{
		Username: "BOB",
		Password: "another",
		Email:    "bob2@example.com",
		FullName: "Bob Two",
	})
	if !IsErrorCode(err, ErrCodeDuplicate) {
		t.Fatalf("expected DUPLICATE, got %v", err)
	}
}

func TestGetUserAbsent(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := core.GetUser(999)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil for absent user, got %+v", user)
	}
}

func TestAuthenticate(t *testing.T) {
	core, cleanup := setupTestDB(t)
	defer cleanup()

	created := testUser(t, core, "carol")

	user, err := core.Authenticate("carol", "secret123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, user.ID)
	}

	if _, err := core.Authenticate("carol", "wrong"); !IsErrorCode(err, ErrCodeUnauthorized) {
		t.Errorf("expected UNAUTHORIZED for wrong password, got %v", err)
	}
	if _, err := core.Authenticate("nobody", "secret123"); !IsErrorCode(err, ErrCodeUnauthorized) {
		t.Errorf("expected UNAUTHORIZED for unknown user, got %v", err)
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if verifyPassword("nodollar", "x") {
		t.Errorf("malformed hash must not verify")
	}
	if verifyPassword("zz$deadbeef", "x") {
		t.Errorf("invalid salt hex must not verify")
	}
}
