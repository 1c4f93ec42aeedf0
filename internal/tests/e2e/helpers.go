package e2e

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type PaymentBody struct {
	CardNumber  string `json:"cardNumber"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

type Payment struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	CardNumberLastFour string `json:"cardNumberLastFour"`
	ExpiryMonth        int    `json:"expiryMonth"`
	ExpiryYear         int    `json:"expiryYear"`
	Currency           string `json:"currency"`
	Amount             int64  `json:"amount"`
}

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Submit posts body to path and decodes the recorded payment.
func (c *TestClient) Submit(t *testing.T, path string, body any) (int, *Payment) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(t, httpReq)
}

func (c *TestClient) Get(t *testing.T, path string) (int, *Payment) {
	t.Helper()

	httpReq, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	require.NoError(t, err)

	return c.do(t, httpReq)
}

func (c *TestClient) do(t *testing.T, req *http.Request) (int, *Payment) {
	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	var payment *Payment
	require.NoError(t, json.Unmarshal(bodyBytes, &payment))
	return resp.StatusCode, payment
}

// BankSimulator stands in for the acquiring bank. By default it answers by
// the card's last digit; Override replaces that for the next requests.
type BankSimulator struct {
	mu       sync.Mutex
	override http.HandlerFunc
	calls    atomic.Int32
}

func (b *BankSimulator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.calls.Add(1)

	b.mu.Lock()
	override := b.override
	b.mu.Unlock()

	if override != nil {
		override(w, r)
		return
	}

	var req struct {
		CardNumber string `json:"card_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardNumber == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	last := req.CardNumber[len(req.CardNumber)-1]
	switch {
	case last == '0':
		w.WriteHeader(http.StatusServiceUnavailable)
	case (last-'0')%2 == 1:
		writeBankJSON(w, `{"authorized":true,"authorization_code":"0bb07405-6d44-4b50-a14f-7ae0beff13ad"}`)
	default:
		writeBankJSON(w, `{"authorized":false,"authorization_code":""}`)
	}
}

func (b *BankSimulator) Override(h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.override = h
}

func (b *BankSimulator) Reset() {
	b.Override(nil)
	b.calls.Store(0)
}

func (b *BankSimulator) Calls() int {
	return int(b.calls.Load())
}

func writeBankJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}
