package dto

import "time"

// CardDetails is the optional card block of a payment request.
type CardDetails struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
	CVC      string `json:"cvc"`
}

// PaymentProcessRequest is the body of POST /payments/process.
type PaymentProcessRequest struct {
	Method      string       `json:"method" validate:"required"`
	Amount      float64      `json:"amount" validate:"required"`
	Currency    string       `json:"currency"`
	CardDetails *CardDetails `json:"cardDetails"`
	EventID     int          `json:"eventId"`
	Description string       `json:"description"`
}

// PaymentReceiptResponse is the data payload of a successful payment.
type PaymentReceiptResponse struct {
	TransactionID string    `json:"transactionId"`
	Reference     string    `json:"reference"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	ReceiptURL    string    `json:"receiptUrl"`
	InvoiceURL    string    `json:"invoiceUrl"`
	NextSteps     []string  `json:"nextSteps"`
}

// DeclineDetails explains a simulated decline.
type DeclineDetails struct {
	Reason          string `json:"reason"`
	SuggestedAction string `json:"suggestedAction"`
}

// PaymentVerifyRequest is the body of POST /payments/verify.
type PaymentVerifyRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

// PaymentVerifyResponse is the status snapshot of a known transaction.
type PaymentVerifyResponse struct {
	TransactionID string    `json:"transactionId"`
	Reference     string    `json:"reference"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Method        string    `json:"method"`
	Timestamp     time.Time `json:"timestamp"`
	Verified      bool      `json:"verified"`
	CardLast4     string    `json:"cardLast4,omitempty"`
	CardBrand     string    `json:"cardBrand,omitempty"`
	ReceiptURL    string    `json:"receiptUrl"`
}
