package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
)

var (
	ErrInvalidAmount       = errors.New("amount must be greater than 0")
	ErrInvalidCardDetails  = errors.New("incomplete card details")
	ErrInvalidExpiryMonth  = errors.New("invalid expiry month")
	ErrCardExpired         = errors.New("card expired")
	ErrPaymentDeclined     = errors.New("payment declined")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// OutcomeFunc decides whether a simulated payment succeeds. The default
// draws against a configured success rate; tests inject a constant.
type OutcomeFunc func() bool

// SuccessRateOutcome returns an OutcomeFunc that succeeds with the given
// probability.
func SuccessRateOutcome(rate float64) OutcomeFunc {
	return func() bool { return rand.Float64() < rate }
}

// CardInfo is the optional card block of a payment.
type CardInfo struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
}

// ProcessPaymentParams are the fields accepted by payment processing.
type ProcessPaymentParams struct {
	Method      string
	Amount      float64
	Currency    string
	Card        *CardInfo
	EventID     int
	Description string
	ClientIP    string
	UserAgent   string
}

// PaymentService simulates a payment gateway: validation is real, the
// outcome is a random draw. Every successful payment yields exactly one
// invoice with matching amount and currency.
type PaymentService interface {
	Process(ctx context.Context, userID int, p ProcessPaymentParams) (*model.Payment, *model.Invoice, error)
	Verify(ctx context.Context, transactionID string) (*model.Payment, error)
}

type paymentService struct {
	payments repository.PaymentRepository
	outcome  OutcomeFunc
	logger   zerolog.Logger
}

// NewPaymentService creates a new PaymentService with a scoped logger.
func NewPaymentService(payments repository.PaymentRepository, outcome OutcomeFunc, logger zerolog.Logger) PaymentService {
	return &paymentService{
		payments: payments,
		outcome:  outcome,
		logger:   logger.With().Str("service", "PaymentService").Logger(),
	}
}

func (s *paymentService) Process(ctx context.Context, userID int, p ProcessPaymentParams) (*model.Payment, *model.Invoice, error) {
	// Amount validity is checked before any outcome draw.
	if p.Amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	if p.Method == "credit_card" && p.Card != nil {
		if err := validateCard(p.Card); err != nil {
			return nil, nil, err
		}
	}

	if !s.outcome() {
		s.logger.Info().Int("user_id", userID).Float64("amount", p.Amount).Msg("Payment declined (simulated)")
		return nil, nil, ErrPaymentDeclined
	}

	nowTime := time.Now().UTC()
	count, err := s.payments.Count(ctx)
	if err != nil {
		return nil, nil, err
	}
	transactionID := newTransactionID(nowTime)
	reference := newReference(nowTime.Year(), count+1)

	payment := &model.Payment{
		TransactionID: transactionID,
		Reference:     reference,
		Method:        p.Method,
		Provider:      providerForMethod(p.Method),
		Amount:        p.Amount,
		Currency:      orDefault(p.Currency, "USD"),
		Status:        model.PaymentStatusSucceeded,
		UserID:        userID,
		EventID:       p.EventID,
		Timestamp:     nowTime,
		CardCountry:   "US",
		Description:   orDefault(p.Description, "CÉRÉMONIA payment"),
		ReceiptURL:    "https://receipts.ceremonia.com/" + transactionID,
		Metadata: map[string]any{
			"ipAddress": p.ClientIP,
			"userAgent": p.UserAgent,
			"riskScore": rand.Intn(20),
		},
	}
	if p.Method == "credit_card" && p.Card != nil {
		payment.CardLast4 = cardLast4(p.Card.Number)
		payment.CardBrand = cardBrand(p.Card.Number)
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, nil, err
	}

	invoice := &model.Invoice{
		InvoiceID:  reference,
		PaymentID:  payment.ID,
		UserID:     userID,
		Amount:     payment.Amount,
		Currency:   payment.Currency,
		Status:     "paid",
		IssuedDate: nowTime,
		DueDate:    nowTime,
		PaidDate:   nowTime,
		Items: []model.InvoiceItem{
			{
				Description: payment.Description,
				Quantity:    1,
				UnitPrice:   payment.Amount,
				Total:       payment.Amount,
			},
		},
		Tax:    0,
		Total:  payment.Amount,
		PDFURL: "https://invoices.ceremonia.com/" + reference + ".pdf",
	}
	if err := s.payments.CreateInvoice(ctx, invoice); err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("transaction_id", transactionID).Float64("amount", payment.Amount).Msg("Payment processed")
	return payment, invoice, nil
}

func (s *paymentService) Verify(ctx context.Context, transactionID string) (*model.Payment, error) {
	payment, err := s.payments.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrTransactionNotFound
	}
	return payment, nil
}

func validateCard(c *CardInfo) error {
	if c.Number == "" || c.ExpMonth == 0 || c.ExpYear == 0 || c.CVC == "" {
		return ErrInvalidCardDetails
	}
	if c.ExpMonth < 1 || c.ExpMonth > 12 {
		return ErrInvalidExpiryMonth
	}
	currentYear := time.Now().Year() % 100
	currentMonth := int(time.Now().Month())
	if c.ExpYear < currentYear || (c.ExpYear == currentYear && c.ExpMonth < currentMonth) {
		return ErrCardExpired
	}
	return nil
}

func providerForMethod(method string) string {
	switch method {
	case "credit_card":
		return "stripe"
	case "paypal":
		return "paypal"
	case "bank_transfer":
		return "transferwise"
	default:
		return "manual"
	}
}

func cardLast4(number string) string {
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}

func cardBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "visa"
	case strings.HasPrefix(number, "5"):
		return "mastercard"
	case strings.HasPrefix(number, "3"):
		return "amex"
	default:
		return "other"
	}
}
