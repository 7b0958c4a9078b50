package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
	"ceremonia/internal/store"
)

func newSubscriptionService(db *store.Store) SubscriptionService {
	return NewSubscriptionService(
		repository.NewSubscriptionRepo(db),
		repository.NewUserRepo(db),
		repository.NewPaymentRepo(db),
		zerolog.Nop(),
	)
}

func TestSubscriptionRejectsUnknownPlanAndCycle(t *testing.T) {
	db := store.New()
	userID := seedUser(db, model.PlanFree)
	svc := newSubscriptionService(db)

	if _, _, err := svc.Create(context.Background(), userID, "platinum", model.BillingCycleMonthly, ""); err != ErrInvalidPlan {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
	if _, _, err := svc.Create(context.Background(), userID, model.PlanPremium, "weekly", ""); err != ErrInvalidBillingCycle {
		t.Fatalf("expected ErrInvalidBillingCycle, got %v", err)
	}
	if len(db.Subscriptions) != 0 {
		t.Fatal("rejected requests must not create subscriptions")
	}
}

func TestSubscriptionActivationUpgradesUser(t *testing.T) {
	db := store.New()
	userID := seedUser(db, model.PlanFree)
	svc := newSubscriptionService(db)

	sub, payment, err := svc.Create(context.Background(), userID, model.PlanPremium, model.BillingCycleMonthly, "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sub.Amount != 79.99 {
		t.Fatalf("expected monthly premium price 79.99, got %v", sub.Amount)
	}
	if !strings.HasPrefix(sub.SubscriptionID, "SUB-PREM-") {
		t.Fatalf("unexpected subscription id %q", sub.SubscriptionID)
	}
	if sub.Status != "active" || !sub.AutoRenew {
		t.Fatalf("unexpected subscription state: status=%q autoRenew=%v", sub.Status, sub.AutoRenew)
	}

	wantExpiry := sub.StartDate.AddDate(0, 1, 0)
	if !sub.ExpiryDate.Equal(wantExpiry) {
		t.Fatalf("expected monthly expiry %v, got %v", wantExpiry, sub.ExpiryDate)
	}

	if db.Users[0].Plan != model.PlanPremium {
		t.Fatalf("user plan must be upgraded immediately, got %q", db.Users[0].Plan)
	}

	if !payment.Successful() || payment.Amount != sub.Amount {
		t.Fatalf("expected a successful payment for %v, got status=%q amount=%v", sub.Amount, payment.Status, payment.Amount)
	}
	if len(db.Invoices) != 1 {
		t.Fatalf("activation must record exactly one invoice, got %d", len(db.Invoices))
	}
	if db.Invoices[0].SubscriptionID != sub.SubscriptionID {
		t.Fatalf("invoice is not linked to subscription %q", sub.SubscriptionID)
	}
}

func TestSubscriptionAnnualExpiry(t *testing.T) {
	db := store.New()
	userID := seedUser(db, model.PlanFree)
	svc := newSubscriptionService(db)

	sub, _, err := svc.Create(context.Background(), userID, model.PlanBasic, model.BillingCycleAnnual, "pm_123")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sub.Amount != 299.99 {
		t.Fatalf("expected annual basic price 299.99, got %v", sub.Amount)
	}
	if sub.ExpiryDate.Sub(sub.StartDate) < 360*24*time.Hour {
		t.Fatalf("expected roughly one year of validity, got %v", sub.ExpiryDate.Sub(sub.StartDate))
	}
	if sub.PaymentMethod != "pm_123" {
		t.Fatalf("expected supplied payment method, got %q", sub.PaymentMethod)
	}
}

func TestSubscriptionFeaturesAndLimitsMatchPlan(t *testing.T) {
	db := store.New()
	userID := seedUser(db, model.PlanFree)
	svc := newSubscriptionService(db)

	sub, _, err := svc.Create(context.Background(), userID, model.PlanBusiness, model.BillingCycleMonthly, "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(sub.Features) == 0 {
		t.Fatal("expected a non-empty feature list")
	}
	if sub.Limits != model.LimitsForPlan(model.PlanBusiness) {
		t.Fatalf("unexpected limits %+v", sub.Limits)
	}
}
