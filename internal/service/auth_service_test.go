package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"ceremonia/internal/auth"
	"ceremonia/internal/model"
	"ceremonia/internal/repository"
	"ceremonia/internal/store"
)

const testSecret = "test-secret"

func newAuthService(db *store.Store) AuthService {
	return NewAuthService(repository.NewUserRepo(db), testSecret, 24*time.Hour, zerolog.Nop())
}

func TestRegisterIssuesTokenAndFreePlan(t *testing.T) {
	db := store.New()
	svc := newAuthService(db)

	user, token, err := svc.Register(context.Background(), RegisterParams{
		Email:    "new@example.com",
		Password: "s3cret-pass",
		Name:     "New User",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Plan != model.PlanFree {
		t.Fatalf("new accounts must start on the free plan, got %q", user.Plan)
	}
	if user.Password == "s3cret-pass" {
		t.Fatal("password must be stored hashed")
	}

	claims, err := auth.ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != user.ID {
		t.Fatalf("token subject %q does not match user %d", claims.Subject, user.ID)
	}
	if claims.Email != user.Email || claims.Plan != model.PlanFree {
		t.Fatalf("unexpected claims: email=%q plan=%q", claims.Email, claims.Plan)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := store.New()
	svc := newAuthService(db)

	if _, _, err := svc.Register(context.Background(), RegisterParams{Email: "dup@example.com", Password: "pw", Name: "A"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), RegisterParams{Email: "dup@example.com", Password: "pw", Name: "B"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	db := store.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("ceremonia2024"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	db.Users = append(db.Users, model.User{ID: 1, Email: "client@example.com", Password: string(hash), Plan: model.PlanPremium, Status: "active"})
	svc := newAuthService(db)

	if _, _, err := svc.Login(context.Background(), "unknown@example.com", "whatever"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "client@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	user, token, err := svc.Login(context.Background(), "client@example.com", "ceremonia2024")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	// Both the returned user and the stored row reflect the new login time.
	if user.LastLogin.IsZero() {
		t.Fatal("login must touch lastLogin on the returned user")
	}
	if db.Users[0].LastLogin.IsZero() {
		t.Fatal("login must touch lastLogin in the store")
	}
}
