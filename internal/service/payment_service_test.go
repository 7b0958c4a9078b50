package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"ceremonia/internal/repository"
	"ceremonia/internal/store"
)

func newPaymentService(outcome OutcomeFunc) (PaymentService, *store.Store) {
	db := store.New()
	return NewPaymentService(repository.NewPaymentRepo(db), outcome, zerolog.Nop()), db
}

func TestProcessRejectsInvalidAmountBeforeOutcomeDraw(t *testing.T) {
	drawn := false
	svc, _ := newPaymentService(func() bool {
		drawn = true
		return true
	})

	for _, amount := range []float64{0, -10} {
		_, _, err := svc.Process(context.Background(), 1, ProcessPaymentParams{Method: "credit_card", Amount: amount})
		if err != ErrInvalidAmount {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if drawn {
		t.Fatal("outcome must not be drawn for an invalid amount")
	}
}

func TestProcessValidatesCardDetails(t *testing.T) {
	svc, _ := newPaymentService(func() bool { return true })

	// Expiry years are two-digit, matching what card forms send.
	cases := []struct {
		name string
		card *CardInfo
		want error
	}{
		{"missing cvc", &CardInfo{Number: "4242424242424242", ExpMonth: 12, ExpYear: 30}, ErrInvalidCardDetails},
		{"bad month", &CardInfo{Number: "4242424242424242", ExpMonth: 13, ExpYear: 30, CVC: "123"}, ErrInvalidExpiryMonth},
		{"expired", &CardInfo{Number: "4242424242424242", ExpMonth: 1, ExpYear: 20, CVC: "123"}, ErrCardExpired},
	}
	for _, tc := range cases {
		_, _, err := svc.Process(context.Background(), 1, ProcessPaymentParams{
			Method: "credit_card",
			Amount: 100,
			Card:   tc.card,
		})
		if err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestProcessDeclined(t *testing.T) {
	svc, db := newPaymentService(func() bool { return false })

	_, _, err := svc.Process(context.Background(), 1, ProcessPaymentParams{Method: "paypal", Amount: 50})
	if err != ErrPaymentDeclined {
		t.Fatalf("expected ErrPaymentDeclined, got %v", err)
	}
	if len(db.Payments) != 0 || len(db.Invoices) != 0 {
		t.Fatal("a declined payment must not be recorded")
	}
}

func TestProcessSuccessCreatesMatchingInvoice(t *testing.T) {
	svc, db := newPaymentService(func() bool { return true })

	payment, invoice, err := svc.Process(context.Background(), 7, ProcessPaymentParams{
		Method:   "credit_card",
		Amount:   250.50,
		Currency: "EUR",
		Card:     &CardInfo{Number: "4242424242424242", ExpMonth: 12, ExpYear: 99, CVC: "123"},
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !strings.HasPrefix(payment.TransactionID, "PAY-") {
		t.Fatalf("unexpected transaction id %q", payment.TransactionID)
	}
	if payment.Provider != "stripe" {
		t.Fatalf("expected stripe provider for credit_card, got %q", payment.Provider)
	}
	if payment.CardLast4 != "4242" || payment.CardBrand != "visa" {
		t.Fatalf("unexpected card summary %q/%q", payment.CardLast4, payment.CardBrand)
	}
	if invoice.Amount != payment.Amount || invoice.Currency != payment.Currency {
		t.Fatalf("invoice %v %s does not match payment %v %s", invoice.Amount, invoice.Currency, payment.Amount, payment.Currency)
	}
	if invoice.Status != "paid" || invoice.PaymentID != payment.ID {
		t.Fatalf("unexpected invoice linkage: status=%q paymentId=%d", invoice.Status, invoice.PaymentID)
	}
	if len(db.Payments) != 1 || len(db.Invoices) != 1 {
		t.Fatalf("expected 1 payment and 1 invoice, got %d/%d", len(db.Payments), len(db.Invoices))
	}
}

func TestVerifyUnknownTransaction(t *testing.T) {
	svc, _ := newPaymentService(func() bool { return true })

	if _, err := svc.Verify(context.Background(), "PAY-DOES-NOT-EXIST"); err != ErrTransactionNotFound {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestVerifyKnownTransaction(t *testing.T) {
	svc, _ := newPaymentService(func() bool { return true })

	created, _, err := svc.Process(context.Background(), 1, ProcessPaymentParams{Method: "bank_transfer", Amount: 80})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	found, err := svc.Verify(context.Background(), created.TransactionID)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !found.Successful() {
		t.Fatalf("expected a successful payment, got status %q", found.Status)
	}
	if found.Provider != "transferwise" {
		t.Fatalf("expected transferwise provider for bank_transfer, got %q", found.Provider)
	}
}
