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

func newDashboardService(db *store.Store) DashboardService {
	return NewDashboardService(
		repository.NewUserRepo(db),
		repository.NewEventRepo(db),
		repository.NewPaymentRepo(db),
		repository.NewSubscriptionRepo(db),
		repository.NewMediaRepo(db),
		repository.NewQRCodeRepo(db),
		zerolog.Nop(),
	)
}

func TestDashboardUnknownUser(t *testing.T) {
	svc := newDashboardService(store.New())
	if _, err := svc.Summary(context.Background(), 99); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDashboardAggregation(t *testing.T) {
	db := store.New()
	userID := seedUser(db, model.PlanPremium)
	nowTime := time.Now().UTC()
	future := nowTime.AddDate(0, 1, 0).Format("2006-01-02")
	past := nowTime.AddDate(0, -1, 0).Format("2006-01-02")

	db.Events = append(db.Events,
		model.Event{ID: 1, Name: "Upcoming", Type: "wedding", Date: future, UserID: userID, Plan: model.PlanPremium, Status: model.EventStatusConfirmed, CreatedAt: nowTime.Add(-2 * time.Hour)},
		model.Event{ID: 2, Name: "Done", Type: "corporate", Date: past, UserID: userID, Plan: model.PlanPremium, Status: model.EventStatusConfirmed, CreatedAt: nowTime.Add(-1 * time.Hour)},
		model.Event{ID: 3, Name: "Draft", Type: "party", Date: future, UserID: userID, Plan: model.PlanPremium, Status: model.EventStatusDraft, CreatedAt: nowTime},
	)
	db.Payments = append(db.Payments,
		model.Payment{ID: 1, TransactionID: "PAY-1", Amount: 100, Currency: "USD", Status: model.PaymentStatusSucceeded, UserID: userID, Timestamp: nowTime.Add(-3 * time.Hour), Description: "Deposit"},
		model.Payment{ID: 2, TransactionID: "PAY-2", Amount: 999, Currency: "USD", Status: "failed", UserID: userID, Timestamp: nowTime.Add(-30 * time.Minute), Description: "Declined"},
		model.Payment{ID: 3, TransactionID: "PAY-3", Amount: 50, Currency: "USD", Status: model.PaymentStatusCompleted, UserID: userID, Timestamp: nowTime, Description: "Balance"},
	)
	db.QRCodes = append(db.QRCodes, model.QRCode{ID: 1, EventID: 1, Code: "WED1"})
	db.Media = append(db.Media, model.Media{ID: 1, EventID: 1, UserID: userID, Type: "photo"})

	svc := newDashboardService(db)
	data, err := svc.Summary(context.Background(), userID)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	if data.Summary.TotalEvents != 3 || data.Summary.ActiveEvents != 2 {
		t.Fatalf("unexpected event counts: total=%d active=%d", data.Summary.TotalEvents, data.Summary.ActiveEvents)
	}
	// Only succeeded and completed payments count toward spend.
	if data.Summary.TotalSpent != 150 {
		t.Fatalf("expected totalSpent 150, got %v", data.Summary.TotalSpent)
	}
	if data.Summary.MediaCount != 1 || data.Summary.QRCodes != 1 {
		t.Fatalf("unexpected media/QR counts: %d/%d", data.Summary.MediaCount, data.Summary.QRCodes)
	}

	if len(data.UpcomingEvents) != 1 || data.UpcomingEvents[0].Name != "Upcoming" {
		t.Fatalf("unexpected upcoming events %+v", data.UpcomingEvents)
	}

	if len(data.RecentActivity) != 5 {
		t.Fatalf("expected 3 payments and 2 events in the feed, got %d entries", len(data.RecentActivity))
	}
	for i := 1; i < len(data.RecentActivity); i++ {
		if data.RecentActivity[i].Timestamp.After(data.RecentActivity[i-1].Timestamp) {
			t.Fatal("recent activity must be sorted newest first")
		}
	}

	if len(data.QuickActions) == 0 {
		t.Fatal("expected a non-empty quick action list")
	}
	if data.Subscription != nil {
		t.Fatal("no subscription was seeded")
	}
}
