package dto

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the trimmed user representation returned with tokens.
type UserSummary struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Plan    string `json:"plan"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

// AuthResponse is the data payload of successful login/register calls.
type AuthResponse struct {
	Token     string      `json:"token"`
	User      UserSummary `json:"user"`
	ExpiresIn int         `json:"expiresIn"`
	Message   string      `json:"message,omitempty"`
}
