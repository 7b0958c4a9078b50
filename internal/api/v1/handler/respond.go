package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"ceremonia/internal/api/v1/dto"
	"ceremonia/internal/middleware"
)

// writeData writes a successful envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.Envelope{Success: true, Data: data})
}

// writeError writes a failed envelope with a machine-readable code.
func writeError(w http.ResponseWriter, status int, msg, code string) {
	writeErrorDetails(w, status, msg, code, nil)
}

func writeErrorDetails(w http.ResponseWriter, status int, msg, code string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.Envelope{Success: false, Error: msg, Code: code, Details: details})
}

// writeValidationError maps validator failures onto the API's error codes:
// a failed "required" tag reports MISSING_FIELD with the field name.
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			writeError(w, http.StatusBadRequest, "The field "+fieldName(fe)+" is required", "MISSING_FIELD")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid value for field "+fieldName(fe), "VALIDATION_ERROR")
		return
	}
	writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error(), "VALIDATION_ERROR")
}

// fieldName lowercases the struct field's first letter to match the JSON
// casing used on the wire.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// decodeBody decodes the JSON body into dst, rejecting absent or malformed
// bodies. Returns false when a response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Missing or invalid request body", "MISSING_BODY")
		return false
	}
	return true
}

// userFromContext extracts the authenticated user id placed by the auth
// middleware. Returns false when a response has already been written.
func userFromContext(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in request context", "TOKEN_INVALID")
		return 0, false
	}
	return userID, true
}
