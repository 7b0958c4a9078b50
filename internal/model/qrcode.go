package model

import "time"

// QRCodeMetadata carries display context for a generated code.
type QRCodeMetadata struct {
	EventName   string `json:"eventName"`
	EventDate   string `json:"eventDate"`
	Plan        string `json:"plan"`
	GeneratedBy int    `json:"generatedBy"`
}

// QRCode is the access code record for an event. At most one per event; a
// regeneration replaces the previous record in place.
type QRCode struct {
	ID         int             `json:"id"`
	EventID    int             `json:"eventId"`
	Code       string          `json:"code"`
	Type       string          `json:"type"`
	URL        string          `json:"url"`
	ShortURL   string          `json:"shortUrl"`
	QRImage    string          `json:"qrImage"`
	DynamicURL string          `json:"dynamicUrl,omitempty"`
	Scans      int             `json:"scans"`
	CreatedAt  time.Time       `json:"createdAt"`
	ExpiresAt  time.Time       `json:"expiresAt"`
	Status     string          `json:"status"`
	Metadata   *QRCodeMetadata `json:"metadata,omitempty"`
}
