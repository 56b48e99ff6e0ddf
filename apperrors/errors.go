package apperrors

import "fmt"

// The four user-visible failure classes. Handlers map each to an HTTP
// status; nothing here is allowed to crash a request.

// AuthError codes, surfaced to the client so it can react distinctly
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeEmailNotVerified   = "email_not_verified"
	CodeDuplicateEmail     = "duplicate_email"
	CodeInvalidToken       = "invalid_token"
)

// ValidationError signals a missing or invalid form field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed on '" + e.Field + "': " + e.Reason
}

// AuthError signals an authentication failure; session state is unchanged
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// BackendError wraps a storage failure; the operation is abandoned
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: backend failure: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// InvalidStateError signals an illegal reservation mutation, rejected
// before any write
type InvalidStateError struct {
	Current string
	Reason  string
}

func (e *InvalidStateError) Error() string {
	return "invalid state (" + e.Current + "): " + e.Reason
}
