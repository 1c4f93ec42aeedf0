package bank_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/config"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/bank"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(url string, timeout time.Duration) *bank.HTTPBankClient {
	return bank.NewBankClient(config.BankConfig{URL: url, Timeout: timeout}, testLogger())
}

func sampleRequest() application.BankAuthorizationRequest {
	return application.NewBankAuthorizationRequest(domain.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2025,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	})
}

func respondWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestHTTPBankClient_Authorize_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		expect  domain.BankOutcome
	}{
		{
			name:    "authorized",
			handler: respondWith(http.StatusOK, `{"authorized":true,"authorization_code":"0bb07405-6d44-4b50-a14f-7ae0beff13ad"}`),
			expect:  domain.BankApproved,
		},
		{
			name:    "explicitly declined",
			handler: respondWith(http.StatusOK, `{"authorized":false,"authorization_code":""}`),
			expect:  domain.BankDeclined,
		},
		{
			name:    "created status counts as success",
			handler: respondWith(http.StatusCreated, `{"authorized":true}`),
			expect:  domain.BankApproved,
		},
		{
			name:    "null body is declined",
			handler: respondWith(http.StatusOK, `null`),
			expect:  domain.BankDeclined,
		},
		{
			name:    "empty body is declined",
			handler: respondWith(http.StatusOK, ``),
			expect:  domain.BankDeclined,
		},
		{
			name:    "not found is declined",
			handler: respondWith(http.StatusNotFound, `{"error":"no route"}`),
			expect:  domain.BankDeclined,
		},
		{
			name:    "bad request is declined",
			handler: respondWith(http.StatusBadRequest, ``),
			expect:  domain.BankDeclined,
		},
		{
			name:    "service unavailable is declined",
			handler: respondWith(http.StatusServiceUnavailable, `{"error":"down"}`),
			expect:  domain.BankDeclined,
		},
		{
			name:    "invalid json on success is unreachable",
			handler: respondWith(http.StatusOK, `{"authorized":`),
			expect:  domain.BankUnreachable,
		},
		{
			name:    "wrong field type on success is unreachable",
			handler: respondWith(http.StatusOK, `{"authorized":"yes"}`),
			expect:  domain.BankUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newClient(server.URL, time.Second)

			assert.Equal(t, tt.expect, client.Authorize(context.Background(), sampleRequest()))
		})
	}
}

func TestHTTPBankClient_Authorize_RequestFormat(t *testing.T) {
	var received map[string]any
	var method, contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&received)
		respondWith(http.StatusOK, `{"authorized":true}`)(w, r)
	}))
	defer server.Close()

	client := newClient(server.URL, time.Second)
	client.Authorize(context.Background(), sampleRequest())

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, map[string]any{
		"card_number": "2222405343248877",
		"expiry_date": "04/2025",
		"currency":    "GBP",
		"amount":      float64(100),
		"cvv":         "123",
	}, received)
}

func TestHTTPBankClient_Authorize_CallsBankOnce(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		respondWith(http.StatusInternalServerError, ``)(w, r)
	}))
	defer server.Close()

	client := newClient(server.URL, time.Second)

	assert.Equal(t, domain.BankDeclined, client.Authorize(context.Background(), sampleRequest()))
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPBankClient_Authorize_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		respondWith(http.StatusOK, `{"authorized":true}`)(w, r)
	}))
	defer server.Close()

	client := newClient(server.URL, 50*time.Millisecond)

	start := time.Now()
	outcome := client.Authorize(context.Background(), sampleRequest())

	assert.Equal(t, domain.BankUnreachable, outcome)
	assert.Less(t, time.Since(start), time.Second)
}

func TestHTTPBankClient_Authorize_CallerCanceled(t *testing.T) {
	server := httptest.NewServer(respondWith(http.StatusOK, `{"authorized":true}`))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newClient(server.URL, time.Second)

	assert.Equal(t, domain.BankUnreachable, client.Authorize(ctx, sampleRequest()))
}

func TestHTTPBankClient_Authorize_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(respondWith(http.StatusOK, `{"authorized":true}`))
	url := server.URL
	server.Close()

	client := newClient(url, time.Second)

	assert.Equal(t, domain.BankUnreachable, client.Authorize(context.Background(), sampleRequest()))
}

func TestHTTPBankClient_Authorize_InvalidURL(t *testing.T) {
	client := newClient("http://[::1", time.Second)

	require.NotPanics(t, func() {
		assert.Equal(t, domain.BankUnreachable, client.Authorize(context.Background(), sampleRequest()))
	})
}

// truncatedBody declares a longer body than it sends, so the client's body
// read fails after the status line arrived.
func truncatedBody(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"au`))
	}
}

func TestHTTPBankClient_Authorize_UnreadableBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   domain.BankOutcome
	}{
		{"error status is still a refusal", http.StatusServiceUnavailable, domain.BankDeclined},
		{"success status cannot be trusted", http.StatusOK, domain.BankUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(truncatedBody(tt.status))
			defer server.Close()

			got := newClient(server.URL, time.Second).Authorize(context.Background(), sampleRequest())
			assert.Equal(t, tt.want, got)
		})
	}
}
