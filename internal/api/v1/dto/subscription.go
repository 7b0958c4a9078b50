package dto

import "ceremonia/internal/model"

// SubscriptionCreateRequest is the body of POST /subscriptions/create.
type SubscriptionCreateRequest struct {
	Plan            string `json:"plan" validate:"required"`
	BillingCycle    string `json:"billingCycle" validate:"required"`
	PaymentMethodID string `json:"paymentMethodId"`
}

// PaymentSummary is the trimmed payment attached to a subscription response.
type PaymentSummary struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
}

// SubscriptionCreateResponse is the data payload of a successful activation.
type SubscriptionCreateResponse struct {
	Subscription model.Subscription `json:"subscription"`
	Payment      PaymentSummary     `json:"payment"`
	Message      string             `json:"message"`
}
