package model

import "time"

// Coordinates is a lat/lng pair attached to an event location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Event represents a single event owned by a user. Plan is a snapshot of the
// owner's plan at creation time and drives feature gating (QR codes).
type Event struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	UserID      int         `json:"userId"`
	Plan        string      `json:"plan"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
	Theme       string      `json:"theme"`
	Guests      int         `json:"guests"`
	Budget      float64     `json:"budget"`
	Currency    string      `json:"currency"`
	Status      string      `json:"status"`
	ConfirmedAt *time.Time  `json:"confirmedAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	AccessCode  string      `json:"accessCode"`
}

// Event statuses.
const (
	EventStatusDraft     = "draft"
	EventStatusConfirmed = "confirmed"
)
