package model

import "time"

// InvoiceItem is a single line on an invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Invoice is generated 1:1 with every successful payment.
type Invoice struct {
	ID             int           `json:"id"`
	InvoiceID      string        `json:"invoiceId"`
	PaymentID      int           `json:"paymentId,omitempty"`
	SubscriptionID string        `json:"subscriptionId,omitempty"`
	UserID         int           `json:"userId"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	Status         string        `json:"status"`
	IssuedDate     time.Time     `json:"issuedDate"`
	DueDate        time.Time     `json:"dueDate"`
	PaidDate       time.Time     `json:"paidDate"`
	Items          []InvoiceItem `json:"items"`
	Tax            float64       `json:"tax"`
	Total          float64       `json:"total"`
	PDFURL         string        `json:"pdfUrl"`
}
