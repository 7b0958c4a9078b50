package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"ceremonia/internal/api/v1/handler"
	"ceremonia/internal/config"
	"ceremonia/internal/middleware"
	"ceremonia/internal/repository"
	"ceremonia/internal/service"
	"ceremonia/internal/store"
)

// New wires repositories, services and handlers into the HTTP surface and
// returns the fully middleware-wrapped root handler.
func New(cfg *config.Config, logger zerolog.Logger, db *store.Store) http.Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepo(db)
	eventRepo := repository.NewEventRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	subscriptionRepo := repository.NewSubscriptionRepo(db)
	qrCodeRepo := repository.NewQRCodeRepo(db)
	mediaRepo := repository.NewMediaRepo(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL(), logger)
	eventService := service.NewEventService(eventRepo, userRepo, logger)
	paymentService := service.NewPaymentService(paymentRepo, service.SuccessRateOutcome(cfg.PaymentSuccessRate), logger)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, paymentRepo, logger)
	qrCodeService := service.NewQRCodeService(qrCodeRepo, eventRepo, logger)
	mediaService := service.NewMediaService(mediaRepo, eventRepo, subscriptionRepo, cfg.MediaProcessingDelay(), logger)
	dashboardService := service.NewDashboardService(userRepo, eventRepo, paymentRepo, subscriptionRepo, mediaRepo, qrCodeRepo, logger)

	authMw := middleware.AuthMiddleware(cfg.JWTSecret)

	// Auth and health stay outside the auth middleware.
	v1 := http.NewServeMux()
	handler.NewAuthHandler(authService, validate, logger).RegisterRoutes(v1)
	handler.NewHealthHandler(db, cfg.Environment, logger).RegisterRoutes(v1)
	handler.NewEventHandler(eventService, qrCodeService, validate, logger).RegisterRoutes(v1, authMw)
	handler.NewPaymentHandler(paymentService, validate, logger).RegisterRoutes(v1, authMw)
	handler.NewSubscriptionHandler(subscriptionService, validate, logger).RegisterRoutes(v1, authMw)
	handler.NewMediaHandler(mediaService, validate, logger).RegisterRoutes(v1, authMw)
	handler.NewDashboardHandler(dashboardService, logger).RegisterRoutes(v1, authMw)

	root := http.NewServeMux()
	root.Handle("/api/v1/", http.StripPrefix("/api/v1", v1))

	corsWrapped := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(root)

	return middleware.LoggerMiddleware(corsWrapped)
}
