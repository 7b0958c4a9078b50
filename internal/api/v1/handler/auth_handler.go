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

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService service.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts the auth endpoints. They are the only routes not
// behind the auth middleware.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/auth/login", http.HandlerFunc(h.login))
	mux.Handle("/auth/register", http.HandlerFunc(h.register))
}

// login godoc
// @Summary Authenticate a user
// @Description Checks credentials and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "missing fields"
// @Failure 401 {object} dto.Envelope "wrong password"
// @Failure 404 {object} dto.Envelope "unknown email"
// @Router /auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	var req dto.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required", "VALIDATION_ERROR")
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "No account found with this email", "USER_NOT_FOUND")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Incorrect password", "INVALID_CREDENTIALS")
		default:
			h.logger.Error().Err(err).Msg("Login failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	writeData(w, http.StatusOK, dto.AuthResponse{
		Token:     token,
		User:      userSummary(user),
		ExpiresIn: int(h.authService.TokenTTL().Seconds()),
	})
}

// register godoc
// @Summary Register a new account
// @Description Creates a free-plan account and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "New account"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "missing fields"
// @Failure 409 {object} dto.Envelope "email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	var req dto.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, token, err := h.authService.Register(r.Context(), service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Company:  req.Company,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			writeError(w, http.StatusConflict, "An account already exists with this email address", "EMAIL_EXISTS")
		default:
			h.logger.Error().Err(err).Msg("Registration failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	writeData(w, http.StatusCreated, dto.AuthResponse{
		Token:     token,
		User:      userSummary(user),
		ExpiresIn: int(h.authService.TokenTTL().Seconds()),
		Message:   "Account created successfully",
	})
}

func userSummary(u *model.User) dto.UserSummary {
	return dto.UserSummary{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Plan:    u.Plan,
		Company: u.Company,
		Phone:   u.Phone,
	}
}
