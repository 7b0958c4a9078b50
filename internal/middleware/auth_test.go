package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ceremonia/internal/auth"
	"ceremonia/internal/model"
)

func TestAuthMiddleware(t *testing.T) {
	const secret = "mw-secret"
	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		if !ok {
			t.Fatal("user id missing from context")
		}
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(secret)(next)

	token, err := auth.IssueToken(secret, &model.User{ID: 7, Email: "a@example.com", Plan: "free"}, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || gotUserID != 7 {
		t.Fatalf("expected 200 with user 7, got %d user %d", rec.Code, gotUserID)
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	handler := AuthMiddleware("mw-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}
