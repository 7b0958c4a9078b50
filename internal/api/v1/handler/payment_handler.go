package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ceremonia/internal/api/v1/dto"
	"ceremonia/internal/service"
)

// PaymentHandler handles simulated payment processing and verification.
type PaymentHandler struct {
	paymentService service.PaymentService
	validate       *validator.Validate
	logger         zerolog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService, v *validator.Validate, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validate: v, logger: logger}
}

// RegisterRoutes mounts the payment endpoints behind the auth middleware.
func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/payments/process", authMw(http.HandlerFunc(h.process)))
	mux.Handle("/payments/verify", authMw(http.HandlerFunc(h.verify)))
}

// process godoc
// @Summary Process a payment
// @Description Validates the request, then draws a simulated gateway
// @Description outcome. A successful payment records a matching invoice.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.PaymentProcessRequest true "Payment"
// @Security BearerAuth
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "invalid amount or card"
// @Failure 402 {object} dto.Envelope "declined"
// @Router /payments/process [post]
func (h *PaymentHandler) process(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}
	var req dto.PaymentProcessRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	params := service.ProcessPaymentParams{
		Method:      req.Method,
		Amount:      req.Amount,
		Currency:    req.Currency,
		EventID:     req.EventID,
		Description: req.Description,
		ClientIP:    r.RemoteAddr,
		UserAgent:   r.UserAgent(),
	}
	if req.CardDetails != nil {
		params.Card = &service.CardInfo{
			Number:   req.CardDetails.Number,
			ExpMonth: req.CardDetails.ExpMonth,
			ExpYear:  req.CardDetails.ExpYear,
			CVC:      req.CardDetails.CVC,
		}
	}

	payment, invoice, err := h.paymentService.Process(r.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "Amount must be greater than 0", "INVALID_AMOUNT")
		case errors.Is(err, service.ErrInvalidCardDetails):
			writeError(w, http.StatusBadRequest, "Card details are required for credit card payments", "INVALID_CARD_DETAILS")
		case errors.Is(err, service.ErrInvalidExpiryMonth):
			writeError(w, http.StatusBadRequest, "Card expiry month must be between 1 and 12", "INVALID_EXPIRY_MONTH")
		case errors.Is(err, service.ErrCardExpired):
			writeError(w, http.StatusBadRequest, "Card has expired", "CARD_EXPIRED")
		case errors.Is(err, service.ErrPaymentDeclined):
			writeErrorDetails(w, http.StatusPaymentRequired,
				"Payment declined. Please check your details or contact your bank.",
				"PAYMENT_DECLINED",
				dto.DeclineDetails{
					Reason:          "Insufficient funds or card limit exceeded",
					SuggestedAction: "Check your account balance or use another payment method",
				})
		default:
			h.logger.Error().Err(err).Msg("Payment processing failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	writeData(w, http.StatusOK, dto.PaymentReceiptResponse{
		TransactionID: payment.TransactionID,
		Reference:     payment.Reference,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Status:        payment.Status,
		Timestamp:     payment.Timestamp,
		ReceiptURL:    payment.ReceiptURL,
		InvoiceURL:    invoice.PDFURL,
		NextSteps: []string{
			"Your payment was processed successfully",
			"A receipt has been sent to your email",
			"Your service is now active",
		},
	})
}

// verify godoc
// @Summary Verify a transaction
// @Description Looks up a transaction by its id and returns its status.
// @Tags payments
// @Accept json
// @Produce json
// @Param lookup body dto.PaymentVerifyRequest true "Transaction id"
// @Security BearerAuth
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "unknown transaction"
// @Router /payments/verify [post]
func (h *PaymentHandler) verify(w http.ResponseWriter, r *http.Request) {
	if _, ok := userFromContext(w, r); !ok {
		return
	}
	var req dto.PaymentVerifyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	payment, err := h.paymentService.Verify(r.Context(), req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			writeError(w, http.StatusNotFound, "Transaction not found", "TRANSACTION_NOT_FOUND")
		default:
			h.logger.Error().Err(err).Msg("Payment verification failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	writeData(w, http.StatusOK, dto.PaymentVerifyResponse{
		TransactionID: payment.TransactionID,
		Reference:     payment.Reference,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Status:        payment.Status,
		Method:        payment.Method,
		Timestamp:     payment.Timestamp,
		Verified:      payment.Successful(),
		CardLast4:     payment.CardLast4,
		CardBrand:     payment.CardBrand,
		ReceiptURL:    payment.ReceiptURL,
	})
}
