package model

import "time"

// Subscription represents a user's plan subscription. Creating one mutates
// the owning user's plan in place.
type Subscription struct {
	ID              int        `json:"id"`
	SubscriptionID  string     `json:"subscriptionId"`
	UserID          int        `json:"userId"`
	Plan            string     `json:"plan"`
	Name            string     `json:"name"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	BillingCycle    string     `json:"billingCycle"`
	StartDate       time.Time  `json:"startDate"`
	ExpiryDate      time.Time  `json:"expiryDate"`
	NextBillingDate time.Time  `json:"nextBillingDate"`
	Status          string     `json:"status"`
	AutoRenew       bool       `json:"autoRenew"`
	PaymentMethod   string     `json:"paymentMethod"`
	Features        []string   `json:"features"`
	Limits          PlanLimits `json:"limits"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Billing cycles accepted by subscription creation.
const (
	BillingCycleMonthly = "monthly"
	BillingCycleAnnual  = "annual"
)
