package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ceremonia/internal/api/v1/dto"
	"ceremonia/internal/model"
	"ceremonia/internal/service"
)

// SubscriptionHandler handles plan subscription activation.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
	validate            *validator.Validate
	logger              zerolog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService, v *validator.Validate, logger zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, validate: v, logger: logger}
}

// RegisterRoutes mounts the subscription endpoints behind the auth middleware.
func (h *SubscriptionHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/subscriptions/create", authMw(http.HandlerFunc(h.create)))
}

// create godoc
// @Summary Activate a subscription
// @Description Subscribes the caller to a plan, charges an always-successful
// @Description payment and upgrades the account immediately.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body dto.SubscriptionCreateRequest true "Plan choice"
// @Security BearerAuth
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "unknown plan or cycle"
// @Router /subscriptions/create [post]
func (h *SubscriptionHandler) create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}
	var req dto.SubscriptionCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	sub, payment, err := h.subscriptionService.Create(r.Context(), userID, req.Plan, req.BillingCycle, req.PaymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlan):
			writeErrorDetails(w, http.StatusBadRequest, "Unknown plan", "INVALID_PLAN",
				map[string]any{"validPlans": model.ValidPlans})
		case errors.Is(err, service.ErrInvalidBillingCycle):
			writeErrorDetails(w, http.StatusBadRequest, "Unknown billing cycle", "INVALID_BILLING_CYCLE",
				map[string]any{"validCycles": []string{model.BillingCycleMonthly, model.BillingCycleAnnual}})
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found", "USER_NOT_FOUND")
		default:
			h.logger.Error().Err(err).Msg("Subscription activation failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	writeData(w, http.StatusCreated, dto.SubscriptionCreateResponse{
		Subscription: *sub,
		Payment: dto.PaymentSummary{
			TransactionID: payment.TransactionID,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			Status:        payment.Status,
		},
		Message: "Subscription activated successfully",
	})
}
