package bank

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/config"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/goccy/go-json"
)

// maxResponseBytes caps how much of a bank response is read.
const maxResponseBytes = 1 << 20

type HTTPBankClient struct {
	url        string
	httpClient *http.Client
	config     config.BankConfig
	logger     *slog.Logger
}

func NewBankClient(cfg config.BankConfig, logger *slog.Logger) *HTTPBankClient {
	return &HTTPBankClient{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}
}

var _ application.BankClient = (*HTTPBankClient)(nil)

// Authorize forwards req to the bank once. Any failure to get a readable
// answer is reported as domain.BankUnreachable.
func (c *HTTPBankClient) Authorize(ctx context.Context, req application.BankAuthorizationRequest) domain.BankOutcome {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	resp, err := c.send(ctx, toAuthorizationRequest(req))
	if err != nil {
		if bankErr, ok := IsBankError(err); ok {
			c.logger.Warn("bank refused request",
				"status_code", bankErr.StatusCode,
			)
			return domain.BankDeclined
		}

		c.logger.Error("bank unreachable",
			"category", categorize(err),
			"error", err,
		)
		return domain.BankUnreachable
	}

	if resp == nil {
		c.logger.Info("bank returned empty authorization response")
		return domain.BankDeclined
	}

	if !resp.Authorized {
		return domain.BankDeclined
	}

	c.logger.Info("bank authorized payment",
		"authorization_code", resp.AuthorizationCode,
	)
	return domain.BankApproved
}

// send returns a nil response without error when the bank answered 2xx with
// an empty body or a JSON null.
func (c *HTTPBankClient) send(ctx context.Context, reqBody authorizationRequest) (*AuthorizationResponse, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &requestError{err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, &requestError{err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// body is diagnostic only; a failed read still counts as a refusal
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &BankError{
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var bankResp *AuthorizationResponse
	if err := json.Unmarshal(body, &bankResp); err != nil {
		return nil, &malformedResponseError{err: err}
	}

	return bankResp, nil
}
