// Package errors defines stable error codes for doclink failure modes.
package errors

import "fmt"

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// SymbolNotFound indicates the symbol is not a known identifier
	SymbolNotFound ErrorCode = "SYMBOL_NOT_FOUND"
	// DefinitionNotFound indicates no defining file could be located
	DefinitionNotFound ErrorCode = "DEFINITION_NOT_FOUND"
	// IndexMissing indicates a configured symbol index file was not found
	IndexMissing ErrorCode = "INDEX_MISSING"
	// RegistryUnavailable indicates the symbol registry store could not be opened
	RegistryUnavailable ErrorCode = "REGISTRY_UNAVAILABLE"
	// CategoryUnknown indicates an activation for an unregistered category
	CategoryUnknown ErrorCode = "CATEGORY_UNKNOWN"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// LinkError is an error with a stable code and an optional cause.
type LinkError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error
}

// New creates a new LinkError
func New(code ErrorCode, message string, cause error) *LinkError {
	return &LinkError{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *LinkError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *LinkError) Unwrap() error {
	return e.cause
}

// WithDetails attaches structured details to the error
func (e *LinkError) WithDetails(details interface{}) *LinkError {
	e.Details = details
	return e
}

// CodeOf returns the ErrorCode of err if it is a LinkError, or InternalError.
func CodeOf(err error) ErrorCode {
	if le, ok := err.(*LinkError); ok {
		return le.Code
	}
	return InternalError
}
