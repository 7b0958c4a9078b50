package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
	"ceremonia/internal/store"
)

func newQRCodeService(db *store.Store) QRCodeService {
	return NewQRCodeService(repository.NewQRCodeRepo(db), repository.NewEventRepo(db), zerolog.Nop())
}

func seedEvent(db *store.Store, userID int, plan string) int {
	db.Events = append(db.Events, model.Event{
		ID:     len(db.Events) + 1,
		Name:   "Gala",
		Type:   "wedding",
		Date:   "2027-06-12",
		UserID: userID,
		Plan:   plan,
		Status: model.EventStatusDraft,
	})
	return db.Events[len(db.Events)-1].ID
}

func TestGenerateQRCodeUnknownEvent(t *testing.T) {
	svc := newQRCodeService(store.New())
	if _, _, err := svc.Generate(context.Background(), 1, 42, "", "", false); err != ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestGenerateQRCodeOtherUsersEvent(t *testing.T) {
	db := store.New()
	eventID := seedEvent(db, 1, model.PlanPremium)
	svc := newQRCodeService(db)

	if _, _, err := svc.Generate(context.Background(), 2, eventID, "", "", false); err != ErrEventNotFound {
		t.Fatalf("ownership must be enforced, got %v", err)
	}
}

func TestGenerateQRCodeFreePlanGated(t *testing.T) {
	db := store.New()
	eventID := seedEvent(db, 1, model.PlanFree)
	svc := newQRCodeService(db)

	if _, _, err := svc.Generate(context.Background(), 1, eventID, "", "", false); err != ErrPlanFeatureLimited {
		t.Fatalf("expected ErrPlanFeatureLimited, got %v", err)
	}
}

func TestGenerateQRCodeIsIdempotent(t *testing.T) {
	db := store.New()
	eventID := seedEvent(db, 1, model.PlanPremium)
	svc := newQRCodeService(db)

	first, existing, err := svc.Generate(context.Background(), 1, eventID, "event_access", "", false)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if existing {
		t.Fatal("first call must create a new code")
	}
	if first.Scans != 0 || first.Status != "active" {
		t.Fatalf("unexpected new code state: scans=%d status=%q", first.Scans, first.Status)
	}
	if first.ExpiresAt.Before(first.CreatedAt.AddDate(0, 11, 0)) {
		t.Fatalf("expected roughly one year of validity, got %v", first.ExpiresAt.Sub(first.CreatedAt))
	}

	second, existing, err := svc.Generate(context.Background(), 1, eventID, "event_access", "", false)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !existing || second.Code != first.Code {
		t.Fatalf("second call must return the existing code %q, got %q (existing=%v)", first.Code, second.Code, existing)
	}
	if len(db.QRCodes) != 1 {
		t.Fatalf("expected a single stored code, got %d", len(db.QRCodes))
	}
}

func TestGenerateQRCodeRegenerateReplaces(t *testing.T) {
	db := store.New()
	eventID := seedEvent(db, 1, model.PlanPremium)
	svc := newQRCodeService(db)

	first, _, err := svc.Generate(context.Background(), 1, eventID, "", "", false)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	replacement, existing, err := svc.Generate(context.Background(), 1, eventID, "", "", true)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if existing {
		t.Fatal("regenerate must create a new code")
	}
	if len(db.QRCodes) != 1 {
		t.Fatalf("regeneration must replace in place, got %d codes", len(db.QRCodes))
	}
	if db.QRCodes[0].Code == first.Code && replacement.Code == first.Code {
		t.Fatal("expected the stored code to change after regeneration")
	}
}

func TestGenerateQRCodeCustomCode(t *testing.T) {
	db := store.New()
	eventID := seedEvent(db, 1, model.PlanBusiness)
	svc := newQRCodeService(db)

	qr, _, err := svc.Generate(context.Background(), 1, eventID, "guest_checkin", "GALA2027", false)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if qr.Code != "GALA2027" || qr.Type != "guest_checkin" {
		t.Fatalf("unexpected code %q type %q", qr.Code, qr.Type)
	}
	if qr.URL != "https://ceremonia.com/e/GALA2027" {
		t.Fatalf("unexpected event URL %q", qr.URL)
	}
}
