package rest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.NewPaymentNotFoundError("x"), http.StatusNotFound, domain.ErrCodePaymentNotFound},
		{domain.NewInvalidPaymentIDError("x", cause), http.StatusNotFound, domain.ErrCodeInvalidPaymentID},
		{domain.NewInvalidBodyError(cause), http.StatusBadRequest, domain.ErrCodeInvalidBody},
		{domain.NewStoreUnavailableError("get", cause), http.StatusServiceUnavailable, domain.ErrCodeStoreUnavailable},
		{domain.NewInternalError(cause), http.StatusInternalServerError, domain.ErrCodeInternal},
		{cause, http.StatusInternalServerError, domain.ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, ToHTTPStatus(tt.err), tt.err.Error())
		assert.Equal(t, tt.code, ToErrorCode(tt.err), tt.err.Error())
	}
}

func TestWriteError_HidesWrappedCause(t *testing.T) {
	rec := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	WriteError(rec, domain.NewStoreUnavailableError("get", errors.New("password authentication failed")), logger)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"STORE_UNAVAILABLE","message":"payment store get failed"}}`, rec.Body.String())
}
