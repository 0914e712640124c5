// internal/ledger/client.go
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"walletgate/internal/domain"
	"walletgate/internal/util"
)

// DefaultTimeout bounds every outbound ledger call.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an upstream error body is kept for detail.
const maxErrorBody = 512

// Client is the external double-entry ledger service, consumed as an opaque
// transactional oracle. Responses are passed through unparsed.
type Client interface {
	// ExecuteTransaction submits a ledger transaction. No retry is performed;
	// the caller-supplied reference is the ledger's idempotency anchor.
	ExecuteTransaction(ctx context.Context, req domain.LedgerTransactionRequest) (json.RawMessage, error)
	// GetWalletBalance fetches the balance payload for a wallet.
	GetWalletBalance(ctx context.Context, projectID, walletID uuid.UUID) (json.RawMessage, error)
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a ledger client. A non-positive timeout falls back to
// DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ExecuteTransaction submits a transaction via POST /transactions.
func (c *HTTPClient) ExecuteTransaction(ctx context.Context, req domain.LedgerTransactionRequest) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger transaction: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build ledger transaction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq)
}

// GetWalletBalance fetches a balance via GET /wallets/{walletID}/balance.
func (c *HTTPClient) GetWalletBalance(ctx context.Context, projectID, walletID uuid.UUID) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/wallets/%s/balance?%s",
		c.baseURL, walletID, url.Values{"projectId": {projectID.String()}}.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build ledger balance request: %w", err)
	}

	return c.do(httpReq)
}

// do executes the request and translates any transport failure or non-2xx
// response into a single LedgerError kind.
func (c *HTTPClient) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &util.LedgerError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &util.LedgerError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := string(payload)
		if len(detail) > maxErrorBody {
			detail = detail[:maxErrorBody]
		}
		return nil, &util.LedgerError{StatusCode: resp.StatusCode, Detail: detail}
	}

	return json.RawMessage(payload), nil
}
