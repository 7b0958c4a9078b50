package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ceremonia/internal/api/v1/dto"
	"ceremonia/internal/service"
)

// EventHandler handles event creation, listing and per-event QR codes.
type EventHandler struct {
	eventService  service.EventService
	qrCodeService service.QRCodeService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService service.EventService, qrCodeService service.QRCodeService, v *validator.Validate, logger zerolog.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, qrCodeService: qrCodeService, validate: v, logger: logger}
}

// RegisterRoutes mounts the event endpoints behind the auth middleware.
func (h *EventHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/events", authMw(http.HandlerFunc(h.handleEvents)))
	mux.Handle("/events/", authMw(http.HandlerFunc(h.handleEventSubroute)))
}

func (h *EventHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	}
}

// handleEventSubroute dispatches /events/{eventId}/qrcode.
func (h *EventHandler) handleEventSubroute(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/events/")
	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	if len(parts) == 2 && parts[1] == "qrcode" {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
			return
		}
		h.generateQRCode(w, r, parts[0])
		return
	}
	writeError(w, http.StatusNotFound, "Route not found", "NOT_FOUND")
}

// create godoc
// @Summary Create an event
// @Description Creates a draft event with defaults applied. Free-plan
// @Description accounts are capped at one event.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.EventCreateRequest true "New event"
// @Security BearerAuth
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "missing fields"
// @Failure 403 {object} dto.Envelope "plan limit reached"
// @Router /events [post]
func (h *EventHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}
	var req dto.EventCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	event, err := h.eventService.Create(r.Context(), userID, service.CreateEventParams{
		Name:     req.Name,
		Type:     req.Type,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Theme:    req.Theme,
		Guests:   req.Guests,
		Budget:   req.Budget,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanLimitReached):
			writeError(w, http.StatusForbidden, "Event limit reached for the free plan. Please upgrade.", "PLAN_LIMIT_REACHED")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found", "USER_NOT_FOUND")
		default:
			h.logger.Error().Err(err).Msg("Event creation failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	writeData(w, http.StatusCreated, dto.EventCreateResponse{
		Event:   *event,
		Message: "Event created successfully",
	})
}

// list godoc
// @Summary List events
// @Description Lists the caller's events with an aggregate budget. A
// @Description userId query parameter overrides the token's user; status
// @Description filters by event status.
// @Tags events
// @Produce json
// @Param userId query int false "Owner override"
// @Param status query string false "Status filter"
// @Security BearerAuth
// @Success 200 {object} dto.Envelope
// @Router /events [get]
func (h *EventHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}
	if q := r.URL.Query().Get("userId"); q != "" {
		if id, err := strconv.Atoi(q); err == nil {
			userID = id
		}
	}

	events, totalBudget, err := h.eventService.List(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Error().Err(err).Msg("Event listing failed")
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}

	writeData(w, http.StatusOK, dto.EventListResponse{
		Events:      events,
		Count:       len(events),
		TotalBudget: totalBudget,
		Currency:    "USD",
	})
}

// generateQRCode godoc
// @Summary Generate an event QR code
// @Description Returns the event's QR code, creating one on first call.
// @Description With ?regenerate set, replaces the existing code. Paid
// @Description plans only.
// @Tags events
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param regenerate query string false "Force a new code"
// @Param options body dto.QRCodeRequest false "Generation options"
// @Security BearerAuth
// @Success 200 {object} dto.Envelope "existing code"
// @Success 201 {object} dto.Envelope "new code"
// @Failure 403 {object} dto.Envelope "free plan"
// @Failure 404 {object} dto.Envelope "event not found"
// @Router /events/{eventId}/qrcode [post]
func (h *EventHandler) generateQRCode(w http.ResponseWriter, r *http.Request, rawID string) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}
	eventID, err := strconv.Atoi(rawID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Event not found or access denied", "EVENT_NOT_FOUND")
		return
	}

	// The body is optional here, but a malformed one is still rejected.
	var req dto.QRCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Missing or invalid request body", "MISSING_BODY")
		return
	}
	regenerate := r.URL.Query().Get("regenerate") != ""

	qr, existing, err := h.qrCodeService.Generate(r.Context(), userID, eventID, req.Type, req.CustomCode, regenerate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			writeError(w, http.StatusNotFound, "Event not found or access denied", "EVENT_NOT_FOUND")
		case errors.Is(err, service.ErrPlanFeatureLimited):
			writeError(w, http.StatusForbidden, "QR code generation is only available on paid plans", "PLAN_FEATURE_LIMITED")
		default:
			h.logger.Error().Err(err).Msg("QR code generation failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	if existing {
		writeData(w, http.StatusOK, dto.QRCodeResponse{
			QRCode:  *qr,
			Message: "Existing QR code retrieved",
		})
		return
	}
	writeData(w, http.StatusCreated, dto.QRCodeResponse{
		QRCode:  *qr,
		Message: "QR code generated successfully",
		UsageInstructions: []string{
			"Print the QR code on your invitations",
			"Guests scan it to access the event page",
			"Track scans from your dashboard",
		},
	})
}
