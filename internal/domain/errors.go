package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation ErrKind = "validation" // 400
	// Bad login. The lineage of this API returns these with HTTP 200,
	// so the transport layer maps this kind separately from KindAuth.
	KindInvalidCredential ErrKind = "invalid_credential" // 200
	KindAuth              ErrKind = "auth"               // 401
	KindForbidden         ErrKind = "forbidden"          // 403
	KindNotFound          ErrKind = "not_found"          // 404
	KindConflict          ErrKind = "conflict"           // 400, duplicate unique field
	KindInfrastructure    ErrKind = "infrastructure"     // 503
	KindInternal          ErrKind = "internal"           // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return New(KindValidation, "missing_field", fmt.Sprintf("missing required field: %s", field))
}

// ErrValidationFailed carries the full per-field message list, the
// same "msg: field, msg: field" shape clients already parse.
func ErrValidationFailed(messages string) *Error {
	return New(KindValidation, "validation_failed", messages)
}

// ----------------------
// Credential / token errors
// ----------------------

// IMPORTANT: use this for every login failure, whether the email was
// unknown or the password wrong, to avoid user enumeration.
func ErrInvalidCredentials() *Error {
	return New(KindInvalidCredential, "invalid_credentials", "Invalid username/password")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "no token provided")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", "invalid token")
}

func ErrTokenExpired() *Error {
	return New(KindAuth, "token_expired", "token is expired")
}

// The check-token endpoint answers 403 with this exact message when
// the token's user no longer exists.
func ErrTokenNotValid() *Error {
	return New(KindForbidden, "token_not_valid", "token not valid")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "User not found")
}

// ----------------------
// Conflict (duplicate unique field)
// ----------------------

func ErrEmailAlreadyExists() *Error {
	return New(KindConflict, "email_already_exists", "email already registered")
}

func ErrUsernameAlreadyExists() *Error {
	return New(KindConflict, "username_already_exists", "username already registered")
}

// ----------------------
// Infrastructure / internal (5xx)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "database unavailable", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "token signing failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
