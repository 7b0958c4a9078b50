package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"ceremonia/internal/model"
)

// SeedPassword is the password of the seeded demo account.
const SeedPassword = "ceremonia2024"

// Seeded returns a store preloaded with the demo dataset: one premium user,
// three events, two payments, an active subscription with its invoice and
// one QR code. The media table starts empty.
func Seeded() *Store {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("store: seed password hash: " + err.Error())
	}

	confirmedWedding := mustTime("2024-01-20T11:45:30Z")
	confirmedCorporate := mustTime("2024-02-15T16:20:45Z")

	return &Store{
		Users: []model.User{
			{
				ID:        1,
				Email:     "client@ceremonia.com",
				Name:      "Client Premium",
				Password:  string(hash),
				Plan:      model.PlanPremium,
				Phone:     "+33612345678",
				Company:   "Événements Prestige SARL",
				Address:   "123 Avenue des Champs-Élysées, 75008 Paris",
				TaxID:     "FR12345678901",
				CreatedAt: mustTime("2024-01-15T10:30:00Z"),
				LastLogin: mustTime("2024-03-20T09:15:22Z"),
				Status:    "active",
			},
		},
		Events: []model.Event{
			{
				ID:          1,
				Name:        "Mariage Sophie & Thomas",
				Type:        "wedding",
				Date:        "2024-06-15",
				Time:        "14:00",
				UserID:      1,
				Plan:        model.PlanPremium,
				Location:    "Château de Versailles, France",
				Coordinates: model.Coordinates{Lat: 48.8049, Lng: 2.1204},
				Theme:       "royal-gold",
				Guests:      150,
				Budget:      35000,
				Currency:    "USD",
				Status:      model.EventStatusConfirmed,
				ConfirmedAt: &confirmedWedding,
				AccessCode:  "WED2024VIP",
			},
			{
				ID:          2,
				Name:        "Anniversaire Professionnel TechCorp",
				Type:        "corporate",
				Date:        "2024-07-20",
				Time:        "19:00",
				UserID:      1,
				Plan:        model.PlanBusiness,
				Location:    "Paris Marriott Opera Ambassador Hotel",
				Coordinates: model.Coordinates{Lat: 48.8721, Lng: 2.3320},
				Theme:       "modern-blue",
				Guests:      80,
				Budget:      12000,
				Currency:    "USD",
				Status:      model.EventStatusConfirmed,
				ConfirmedAt: &confirmedCorporate,
				AccessCode:  "CORP2024EXEC",
			},
			{
				ID:          3,
				Name:        "Conférence Innovation Digitale",
				Type:        "conference",
				Date:        "2024-09-10",
				Time:        "09:00",
				UserID:      1,
				Plan:        model.PlanEnterprise,
				Location:    "Palais des Congrès, Paris",
				Coordinates: model.Coordinates{Lat: 48.8765, Lng: 2.2846},
				Theme:       "tech-purple",
				Guests:      300,
				Budget:      50000,
				Currency:    "USD",
				Status:      model.EventStatusDraft,
				AccessCode:  "CONF2024INNO",
			},
		},
		Payments: []model.Payment{
			{
				ID:            1,
				TransactionID: "PAY-20240120-789012345678",
				Reference:     "INV-2024-001",
				Method:        "credit_card",
				Provider:      "stripe",
				Amount:        299.99,
				Currency:      "USD",
				Status:        model.PaymentStatusSucceeded,
				UserID:        1,
				EventID:       1,
				Timestamp:     mustTime("2024-01-20T14:22:10Z"),
				CardLast4:     "4242",
				CardBrand:     "visa",
				CardCountry:   "US",
				Description:   "Abonnement Premium - Mariage Sophie & Thomas",
				ReceiptURL:    "https://receipts.ceremonia.com/PAY-20240120-789012345678",
				Metadata: map[string]any{
					"subscriptionId": "SUB-PREM-2024-001",
					"plan":           model.PlanPremium,
					"billingCycle":   model.BillingCycleAnnual,
				},
			},
			{
				ID:            2,
				TransactionID: "PAY-20240215-123456789012",
				Reference:     "INV-2024-002",
				Method:        "bank_transfer",
				Provider:      "transferwise",
				Amount:        1200.00,
				Currency:      "USD",
				Status:        model.PaymentStatusCompleted,
				UserID:        1,
				EventID:       2,
				Timestamp:     mustTime("2024-02-15T11:30:45Z"),
				Description:   "Acompte événement corporate - TechCorp",
				ReceiptURL:    "https://receipts.ceremonia.com/PAY-20240215-123456789012",
				Metadata: map[string]any{
					"deposit":    true,
					"percentage": 10,
					"remaining":  10800.00,
				},
			},
		},
		Subscriptions: []model.Subscription{
			{
				ID:              1,
				SubscriptionID:  "SUB-PREM-2024-001",
				UserID:          1,
				Plan:            model.PlanPremium,
				Name:            "Plan Premium Événements",
				Amount:          299.99,
				Currency:        "USD",
				BillingCycle:    model.BillingCycleAnnual,
				StartDate:       mustTime("2024-01-20T00:00:00Z"),
				ExpiryDate:      mustTime("2025-01-20T00:00:00Z"),
				NextBillingDate: mustTime("2025-01-20T00:00:00Z"),
				Status:          "active",
				AutoRenew:       true,
				PaymentMethod:   "card_ending_in_4242",
				Features:        model.FeaturesForPlan(model.PlanPremium),
				Limits:          model.LimitsForPlan(model.PlanPremium),
			},
		},
		Invoices: []model.Invoice{
			{
				ID:             1,
				InvoiceID:      "INV-2024-001",
				SubscriptionID: "SUB-PREM-2024-001",
				UserID:         1,
				Amount:         299.99,
				Currency:       "USD",
				Status:         "paid",
				IssuedDate:     mustTime("2024-01-20T00:00:00Z"),
				DueDate:        mustTime("2024-01-20T00:00:00Z"),
				PaidDate:       mustTime("2024-01-20T14:22:10Z"),
				Items: []model.InvoiceItem{
					{
						Description: "Abonnement Premium CÉRÉMONIA (Annuel)",
						Quantity:    1,
						UnitPrice:   299.99,
						Total:       299.99,
					},
				},
				Tax:    0,
				Total:  299.99,
				PDFURL: "https://invoices.ceremonia.com/INV-2024-001.pdf",
			},
		},
		QRCodes: []model.QRCode{
			{
				ID:        1,
				EventID:   1,
				Code:      "WED2024VIP",
				Type:      "event_access",
				URL:       "https://ceremonia.com/e/WED2024VIP",
				ShortURL:  "https://ce.re/WED2024",
				QRImage:   "https://qr.ceremonia.com/WED2024VIP.png",
				Scans:     47,
				CreatedAt: mustTime("2024-01-25T10:15:30Z"),
				ExpiresAt: mustTime("2024-06-30T23:59:59Z"),
				Status:    "active",
			},
		},
	}
}

func mustTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic("store: bad seed timestamp: " + v)
	}
	return t
}
