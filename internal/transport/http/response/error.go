package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/baechuer/user-account-service/internal/domain"
)

// ErrorBody is the flat failure shape clients parse. The same field
// carries "Invalid username/password", "User not found", and so on.
type ErrorBody struct {
	Message string `json:"message"`
}

// WriteError normalizes any error into a (message, status) pair.
// Non-domain errors become a 500 without leaking details.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		message = de.Message
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorBody{Message: message})
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindInvalidCredential:
		// Yes, 200. Existing clients expect failed logins as a 200
		// with the uniform message.
		return http.StatusOK
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		// Duplicate unique fields surface as a plain 400, not 409;
		// the registration contract fixes the status.
		return http.StatusBadRequest
	case domain.KindInfrastructure:
		return http.StatusServiceUnavailable
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
