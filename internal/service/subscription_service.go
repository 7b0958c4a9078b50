package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
)

var (
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrInvalidBillingCycle = errors.New("invalid billing cycle")
)

// planPrices is the static price table keyed by plan, then billing cycle.
// The free plan is absent and resolves to 0.
var planPrices = map[string]map[string]float64{
	model.PlanBasic:      {model.BillingCycleMonthly: 29.99, model.BillingCycleAnnual: 299.99},
	model.PlanPremium:    {model.BillingCycleMonthly: 79.99, model.BillingCycleAnnual: 799.99},
	model.PlanBusiness:   {model.BillingCycleMonthly: 199.99, model.BillingCycleAnnual: 1999.99},
	model.PlanEnterprise: {model.BillingCycleMonthly: 499.99, model.BillingCycleAnnual: 4999.99},
}

// SubscriptionService activates plan subscriptions. Activation mutates the
// owning user's plan and records an always-successful payment plus its
// invoice (no random draw on this path).
type SubscriptionService interface {
	Create(ctx context.Context, userID int, plan, billingCycle, paymentMethodID string) (*model.Subscription, *model.Payment, error)
	GetByUser(ctx context.Context, userID int) (*model.Subscription, error)
}

type subscriptionService struct {
	subs     repository.SubscriptionRepository
	users    repository.UserRepository
	payments repository.PaymentRepository
	logger   zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionService with a scoped logger.
func NewSubscriptionService(subs repository.SubscriptionRepository, users repository.UserRepository, payments repository.PaymentRepository, logger zerolog.Logger) SubscriptionService {
	return &subscriptionService{
		subs:     subs,
		users:    users,
		payments: payments,
		logger:   logger.With().Str("service", "SubscriptionService").Logger(),
	}
}

func (s *subscriptionService) Create(ctx context.Context, userID int, plan, billingCycle, paymentMethodID string) (*model.Subscription, *model.Payment, error) {
	if !model.IsValidPlan(plan) {
		return nil, nil, ErrInvalidPlan
	}
	if billingCycle != model.BillingCycleMonthly && billingCycle != model.BillingCycleAnnual {
		return nil, nil, ErrInvalidBillingCycle
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	amount := 0.0
	if cycles, ok := planPrices[plan]; ok {
		amount = cycles[billingCycle]
	}

	nowTime := time.Now().UTC()
	expiry := nowTime.AddDate(0, 1, 0)
	if billingCycle == model.BillingCycleAnnual {
		expiry = nowTime.AddDate(1, 0, 0)
	}

	subCount, err := s.subs.Count(ctx)
	if err != nil {
		return nil, nil, err
	}
	planPrefix := strings.ToUpper(plan)
	if len(planPrefix) > 4 {
		planPrefix = planPrefix[:4]
	}
	subscriptionID := fmt.Sprintf("SUB-%s-%d-%03d", planPrefix, nowTime.Year(), subCount+1)

	sub := &model.Subscription{
		SubscriptionID:  subscriptionID,
		UserID:          userID,
		Plan:            plan,
		Name:            fmt.Sprintf("Plan %s CÉRÉMONIA", titleCase(plan)),
		Amount:          amount,
		Currency:        "USD",
		BillingCycle:    billingCycle,
		StartDate:       nowTime,
		ExpiryDate:      expiry,
		NextBillingDate: expiry,
		Status:          "active",
		AutoRenew:       true,
		PaymentMethod:   orDefault(paymentMethodID, "card_ending_in_4242"),
		Features:        model.FeaturesForPlan(plan),
		Limits:          model.LimitsForPlan(plan),
		CreatedAt:       nowTime,
		UpdatedAt:       nowTime,
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, nil, err
	}

	if err := s.users.UpdatePlan(ctx, userID, plan); err != nil {
		return nil, nil, err
	}

	invoiceCount, err := s.payments.InvoiceCount(ctx)
	if err != nil {
		return nil, nil, err
	}
	reference := newReference(nowTime.Year(), invoiceCount+1)
	transactionID := newTransactionID(nowTime)

	cycleLabel := "Monthly"
	if billingCycle == model.BillingCycleAnnual {
		cycleLabel = "Annual"
	}
	payment := &model.Payment{
		TransactionID: transactionID,
		Reference:     reference,
		Method:        "credit_card",
		Provider:      "stripe",
		Amount:        amount,
		Currency:      "USD",
		Status:        model.PaymentStatusSucceeded,
		UserID:        userID,
		Timestamp:     nowTime,
		CardLast4:     "4242",
		CardBrand:     "visa",
		CardCountry:   "US",
		Description:   fmt.Sprintf("Subscription %s - %s", plan, cycleLabel),
		ReceiptURL:    "https://receipts.ceremonia.com/" + transactionID,
		Metadata: map[string]any{
			"subscriptionId": subscriptionID,
			"plan":           plan,
			"billingCycle":   billingCycle,
		},
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, nil, err
	}

	invoice := &model.Invoice{
		InvoiceID:      reference,
		PaymentID:      payment.ID,
		SubscriptionID: subscriptionID,
		UserID:         userID,
		Amount:         amount,
		Currency:       "USD",
		Status:         "paid",
		IssuedDate:     nowTime,
		DueDate:        nowTime,
		PaidDate:       nowTime,
		Items: []model.InvoiceItem{
			{
				Description: fmt.Sprintf("Subscription %s CÉRÉMONIA (%s)", titleCase(plan), cycleLabel),
				Quantity:    1,
				UnitPrice:   amount,
				Total:       amount,
			},
		},
		Tax:    0,
		Total:  amount,
		PDFURL: "https://invoices.ceremonia.com/" + reference + ".pdf",
	}
	if err := s.payments.CreateInvoice(ctx, invoice); err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int("user_id", userID).Str("plan", plan).Str("subscription_id", subscriptionID).Msg("Subscription activated")
	return sub, payment, nil
}

func (s *subscriptionService) GetByUser(ctx context.Context, userID int) (*model.Subscription, error) {
	return s.subs.GetByUser(ctx, userID)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
