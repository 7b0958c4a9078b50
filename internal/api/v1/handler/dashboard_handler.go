package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"ceremonia/internal/service"
)

// DashboardHandler serves the aggregated account dashboard.
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

// RegisterRoutes mounts the dashboard endpoint behind the auth middleware.
func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/dashboard", authMw(http.HandlerFunc(h.summary)))
}

// summary godoc
// @Summary Account dashboard
// @Description Aggregates the caller's events, spend, media, QR codes and
// @Description recent activity into a single payload.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	data, err := h.dashboardService.Summary(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found", "USER_NOT_FOUND")
		default:
			h.logger.Error().Err(err).Msg("Dashboard aggregation failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	writeData(w, http.StatusOK, data)
}
