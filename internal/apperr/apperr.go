// Package apperr defines the domain error type shared by all services.
//
// Every domain failure carries a kind (used by the HTTP layer for status
// mapping), the field it relates to and a user-facing message. Handlers
// extract it with errors.As and render it as {"field": ..., "message": ...}.
package apperr

import "fmt"

// Kind classifies a domain error for HTTP status mapping.
type Kind int

const (
	// KindValidation marks malformed or missing input.
	KindValidation Kind = iota
	// KindNotFound marks an absent entity.
	KindNotFound
	// KindAuthorization marks a requester that is not the owner.
	KindAuthorization
	// KindAuthentication marks a bad, missing or expired credential.
	KindAuthentication
	// KindDomainRule marks a violated business rule, e.g. generating
	// from a generator without options.
	KindDomainRule
)

// Error is a domain error with a field/message pair for the API error body.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation returns a KindValidation error.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NotFound returns a KindNotFound error.
func NotFound(field, message string) *Error {
	return &Error{Kind: KindNotFound, Field: field, Message: message}
}

// Authorization returns a KindAuthorization error.
func Authorization(field, message string) *Error {
	return &Error{Kind: KindAuthorization, Field: field, Message: message}
}

// Authentication returns a KindAuthentication error.
func Authentication(field, message string) *Error {
	return &Error{Kind: KindAuthentication, Field: field, Message: message}
}

// DomainRule returns a KindDomainRule error.
func DomainRule(field, message string) *Error {
	return &Error{Kind: KindDomainRule, Field: field, Message: message}
}
