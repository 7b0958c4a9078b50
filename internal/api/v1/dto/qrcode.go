package dto

import "ceremonia/internal/model"

// QRCodeRequest is the optional body of POST /events/{eventId}/qrcode.
type QRCodeRequest struct {
	Type       string `json:"type"`
	CustomCode string `json:"customCode"`
}

// QRCodeResponse is the data payload of a QR code request.
type QRCodeResponse struct {
	QRCode            model.QRCode `json:"qrCode"`
	Message           string       `json:"message"`
	UsageInstructions []string     `json:"usageInstructions,omitempty"`
}
