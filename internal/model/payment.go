package model

import "time"

// Payment represents a processed (simulated) transaction.
type Payment struct {
	ID            int            `json:"id"`
	TransactionID string         `json:"transactionId"`
	Reference     string         `json:"reference"`
	Method        string         `json:"method"`
	Provider      string         `json:"provider"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	Status        string         `json:"status"`
	UserID        int            `json:"userId"`
	EventID       int            `json:"eventId,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
	CardLast4     string         `json:"cardLast4,omitempty"`
	CardBrand     string         `json:"cardBrand,omitempty"`
	CardCountry   string         `json:"cardCountry,omitempty"`
	Description   string         `json:"description"`
	ReceiptURL    string         `json:"receiptUrl"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Payment statuses. Both values count as successful for aggregation.
const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusCompleted = "completed"
)

// Successful reports whether the payment went through.
func (p Payment) Successful() bool {
	return p.Status == PaymentStatusSucceeded || p.Status == PaymentStatusCompleted
}
