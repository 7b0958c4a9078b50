package auth

import (
	"testing"
	"time"

	"ceremonia/internal/model"
)

func TestIssueAndValidateToken(t *testing.T) {
	user := &model.User{ID: 12, Email: "a@example.com", Plan: "premium"}

	token, err := IssueToken("secret", user, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID returned error: %v", err)
	}
	if id != 12 || claims.Email != "a@example.com" || claims.Plan != "premium" {
		t.Fatalf("unexpected claims: id=%d email=%q plan=%q", id, claims.Email, claims.Plan)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &model.User{ID: 1, Email: "a@example.com", Plan: "free"}
	token, err := IssueToken("secret", user, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	if _, err := ValidateToken("other", token); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	user := &model.User{ID: 1, Email: "a@example.com", Plan: "free"}
	token, err := IssueToken("secret", user, -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	if _, err := ValidateToken("secret", token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-token"); err == nil {
		t.Fatal("expected a malformed token to be rejected")
	}
}
