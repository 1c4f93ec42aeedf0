package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/goccy/go-json"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPStatus maps a DomainError code to a status. Unknown errors are 500.
func ToHTTPStatus(err error) int {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case domain.ErrCodePaymentNotFound, domain.ErrCodeInvalidPaymentID:
		return http.StatusNotFound
	case domain.ErrCodeInvalidBody:
		return http.StatusBadRequest
	case domain.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func ToErrorCode(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return domain.ErrCodeInternal
}

// WriteError writes the error envelope. Only the DomainError message reaches
// the client; wrapped causes are logged.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := ToHTTPStatus(err)

	message := "an internal error occurred"
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", "status", statusCode, "error", err)
	}

	WriteJSON(w, statusCode, ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    ToErrorCode(err),
			Message: message,
		},
	}, logger)
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
