package dto

import "ceremonia/internal/model"

// EventCreateRequest is the body of POST /events.
type EventCreateRequest struct {
	Name     string  `json:"name" validate:"required"`
	Type     string  `json:"type" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Time     string  `json:"time"`
	Location string  `json:"location"`
	Theme    string  `json:"theme"`
	Guests   int     `json:"guests"`
	Budget   float64 `json:"budget"`
}

// EventCreateResponse is the data payload of a successful event creation.
type EventCreateResponse struct {
	Event   model.Event `json:"event"`
	Message string      `json:"message"`
}

// EventListResponse is the data payload of GET /events.
type EventListResponse struct {
	Events      []model.Event `json:"events"`
	Count       int           `json:"count"`
	TotalBudget float64       `json:"totalBudget"`
	Currency    string        `json:"currency"`
}
