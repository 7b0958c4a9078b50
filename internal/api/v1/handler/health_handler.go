package handler

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/api/v1/dto"
	"ceremonia/internal/store"
)

var apiEndpoints = []dto.HealthEndpoint{
	{Path: "/api/v1/auth/login", Method: "POST", Description: "Authenticate and obtain a token"},
	{Path: "/api/v1/auth/register", Method: "POST", Description: "Create a new account"},
	{Path: "/api/v1/events", Method: "POST", Description: "Create an event"},
	{Path: "/api/v1/events", Method: "GET", Description: "List events"},
	{Path: "/api/v1/events/{eventId}/qrcode", Method: "POST", Description: "Generate an event QR code"},
	{Path: "/api/v1/payments/process", Method: "POST", Description: "Process a payment"},
	{Path: "/api/v1/payments/verify", Method: "POST", Description: "Verify a transaction"},
	{Path: "/api/v1/subscriptions/create", Method: "POST", Description: "Activate a subscription"},
	{Path: "/api/v1/media/upload", Method: "POST", Description: "Upload a media item"},
	{Path: "/api/v1/dashboard", Method: "GET", Description: "Account dashboard"},
	{Path: "/api/v1/health", Method: "GET", Description: "Service health"},
}

// HealthHandler reports liveness, store row counts and the route listing.
type HealthHandler struct {
	db          *store.Store
	environment string
	startTime   time.Time
	logger      zerolog.Logger
}

// NewHealthHandler creates a new HealthHandler anchored at the current time.
func NewHealthHandler(db *store.Store, environment string, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: db, environment: environment, startTime: time.Now(), logger: logger}
}

// RegisterRoutes mounts the health endpoint. It is not authenticated.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/health", http.HandlerFunc(h.health))
}

// health godoc
// @Summary Service health
// @Description Reports uptime, heap usage, store row counts and the full
// @Description endpoint listing.
// @Tags health
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /health [get]
func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	writeData(w, http.StatusOK, dto.HealthResponse{
		Service:     "CÉRÉMONIA API",
		Version:     "1.0.0",
		Environment: h.environment,
		Timestamp:   time.Now().UTC(),
		Uptime:      formatUptime(time.Since(h.startTime)),
		Memory: dto.MemoryInfo{
			Used:  fmt.Sprintf("%d MB", mem.HeapAlloc/1024/1024),
			Total: fmt.Sprintf("%d MB", mem.HeapSys/1024/1024),
		},
		Database:  h.db.Counts(),
		Endpoints: apiEndpoints,
	})
}

func formatUptime(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%dh %dm %ds", secs/3600, (secs%3600)/60, secs%60)
}
