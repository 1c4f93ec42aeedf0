package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodePaymentNotFound  = "PAYMENT_NOT_FOUND"
	ErrCodeInvalidPaymentID = "INVALID_PAYMENT_ID"
	ErrCodeInvalidBody      = "INVALID_REQUEST_BODY"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

func NewPaymentNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment with ID %s not found", id),
	}
}

func NewInvalidPaymentIDError(id string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidPaymentID,
		Message: fmt.Sprintf("invalid payment ID %q", id),
		Err:     err,
	}
}

func NewInvalidBodyError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidBody,
		Message: "request body could not be decoded",
		Err:     err,
	}
}

func NewStoreUnavailableError(op string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeStoreUnavailable,
		Message: fmt.Sprintf("payment store %s failed", op),
		Err:     err,
	}
}

func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "an internal error occurred",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsNotFound reports whether err means the requested payment does not exist.
// An unparseable ID can never match a stored payment, so it counts as a miss.
func IsNotFound(err error) bool {
	return IsErrorCode(err, ErrCodePaymentNotFound) || IsErrorCode(err, ErrCodeInvalidPaymentID)
}
