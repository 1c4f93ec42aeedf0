package bank

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// BankError describes a response the bank sent with a non-success status.
type BankError struct {
	StatusCode int
	Body       string
}

func (e *BankError) Error() string {
	return fmt.Sprintf("bank returned status %d: %s", e.StatusCode, e.Body)
}

func IsBankError(err error) (*BankError, bool) {
	var bankErr *BankError
	ok := errors.As(err, &bankErr)
	return bankErr, ok
}

// FailureCategory labels why a call ended as unreachable, for logs and metrics.
type FailureCategory string

const (
	CategoryTimeout   FailureCategory = "timeout"
	CategoryCanceled  FailureCategory = "canceled"
	CategoryNetwork   FailureCategory = "network"
	CategoryMalformed FailureCategory = "malformed_response"
	CategoryRequest   FailureCategory = "request"
)

type malformedResponseError struct {
	err error
}

func (e *malformedResponseError) Error() string {
	return fmt.Sprintf("error decoding json response: %v", e.err)
}

func (e *malformedResponseError) Unwrap() error {
	return e.err
}

type requestError struct {
	err error
}

func (e *requestError) Error() string {
	return fmt.Sprintf("error building request: %v", e.err)
}

func (e *requestError) Unwrap() error {
	return e.err
}

func categorize(err error) FailureCategory {
	var malformed *malformedResponseError
	if errors.As(err, &malformed) {
		return CategoryMalformed
	}

	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return CategoryRequest
	}

	if errors.Is(err, context.Canceled) {
		return CategoryCanceled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}

	return CategoryNetwork
}
