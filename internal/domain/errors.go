package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindAuth           ErrKind = "auth"           // 401
	KindForbidden      ErrKind = "forbidden"      // 403
	KindNotFound       ErrKind = "not_found"      // 404
	KindConflict       ErrKind = "conflict"       // 409
	KindRateLimited    ErrKind = "rate_limited"   // 429
	KindInfrastructure ErrKind = "infrastructure" // 503
	KindInternal       ErrKind = "internal"       // 500
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
	return New(KindValidation, "missing_field", field+" is required")
}

func ErrInvalidField(field, reason string) *Error {
	return New(KindValidation, "invalid_field", fmt.Sprintf("%s: %s", field, reason))
}

func ErrOTPRequired() *Error {
	return New(KindValidation, "otp_required", "OTP required")
}

func ErrTotpAlreadyConfigured() *Error {
	return New(KindValidation, "totp_already_configured", "TOTP already configured")
}

// ----------------------
// Auth errors (401)
// ----------------------

func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "invalid credentials")
}

func ErrInvalidOTP() *Error {
	return New(KindAuth, "invalid_otp", "invalid OTP")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "missing token")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", "invalid token")
}

func ErrTokenExpired() *Error {
	return New(KindAuth, "token_expired", "token is expired")
}

// ----------------------
// Forbidden (403)
// ----------------------

func ErrForbidden() *Error {
	return New(KindForbidden, "forbidden", "forbidden")
}

func ErrNotVerified() *Error {
	return New(KindForbidden, "not_verified", "user not verified")
}

// ErrProfileRejected is the explicit rejection signal for provider logins.
// A rejected account must never look like a missing or pending one.
func ErrProfileRejected() *Error {
	return New(KindForbidden, "profile_rejected", "profile rejected")
}

func ErrNotRequestTarget() *Error {
	return New(KindForbidden, "not_request_target", "request is not assigned to this user")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "user not found")
}

func ErrAccountNotFound(role Role) *Error {
	return New(KindNotFound, "account_not_found", string(role)+" not found")
}

func ErrRequestNotFound() *Error {
	return New(KindNotFound, "request_not_found", "request not found")
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrIdentifierTaken(field string) *Error {
	return New(KindConflict, "identifier_taken", field+" already registered")
}

func ErrDuplicateRequest() *Error {
	return New(KindConflict, "duplicate_request", "an open request to this target already exists")
}

func ErrRequestAlreadyResolved() *Error {
	return New(KindConflict, "request_already_resolved", "request has already been resolved")
}

// ----------------------
// Rate limit (429)
// ----------------------

func ErrRateLimited() *Error {
	return New(KindRateLimited, "rate_limited", "too many requests")
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

func ErrTotpGenerateFailed(cause error) *Error {
	return Wrap(KindInternal, "totp_generate_failed", "TOTP secret generation failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
