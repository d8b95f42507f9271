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

// ErrorSource points at the part of the request that caused a failure.
// Validation errors carry one entry per violated field.
type ErrorSource struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Sources: per-field details for validation failures
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Sources []ErrorSource
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

func WithSources(err *Error, sources ...ErrorSource) *Error {
	err.Sources = append(err.Sources, sources...)
	return err
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Code returns the stable machine code of a domain error, or
// "non_domain_error" for anything else.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "non_domain_error"
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return WithSources(New(KindValidation, "missing_field", "missing required field"), ErrorSource{
		Path:    field,
		Message: field + " is required",
	})
}

func ErrInvalidField(field, reason string) *Error {
	return WithSources(New(KindValidation, "invalid_field", "invalid field"), ErrorSource{
		Path:    field,
		Message: reason,
	})
}

// ErrValidation carries the full set of schema violations for a request.
func ErrValidation(sources []ErrorSource) *Error {
	return WithSources(New(KindValidation, "validation_error", "validation error"), sources...)
}

// ErrInvalidID reports a malformed identifier in a path parameter.
func ErrInvalidID(field string) *Error {
	return WithSources(New(KindValidation, "invalid_id", "invalid identifier"), ErrorSource{
		Path:    field,
		Message: field + " is not a valid identifier",
	})
}

// ----------------------
// Auth errors (401)
// ----------------------

// IMPORTANT: use this for login failures to avoid leaking which part was wrong.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "invalid email or password")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "you are not authorized")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", "invalid token")
}

func ErrTokenExpired() *Error {
	return New(KindAuth, "token_expired", "token is expired")
}

// Blocked accounts are rejected with 401 both at login and on token auth.
func ErrAccountBlocked() *Error {
	return New(KindAuth, "account_blocked", "your account is blocked")
}

func ErrInsufficientRole(required string) *Error {
	return New(KindAuth, "insufficient_role", "you are not authorized to perform this action")
}

// ----------------------
// Forbidden (403)
// ----------------------

func ErrForbidden() *Error {
	return New(KindForbidden, "forbidden", "forbidden")
}

// Author-only mutation rule: only the blog's author (or an admin) may touch it.
func ErrNotBlogAuthor() *Error {
	return New(KindForbidden, "not_blog_author", "only the author can modify this blog")
}

// A user cannot block themselves.
func ErrCannotBlockSelf() *Error {
	return New(KindForbidden, "cannot_block_self", "cannot block own account")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "user not found")
}

func ErrBlogNotFound() *Error {
	return New(KindNotFound, "blog_not_found", "blog not found")
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrEmailAlreadyExists() *Error {
	return New(KindConflict, "email_already_exists", "email already registered")
}

func ErrAlreadyBlocked() *Error {
	return New(KindValidation, "already_blocked", "user is already blocked")
}

func ErrInvalidRole(role string) *Error {
	return WithSources(New(KindValidation, "invalid_role", "invalid role"), ErrorSource{
		Path:    "role",
		Message: fmt.Sprintf("%q is not a valid role", role),
	})
}

// ----------------------
// Rate limit (429)
// ----------------------

func ErrRateLimited(scope string) *Error {
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

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
