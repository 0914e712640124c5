// internal/provider/adapter.go
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"walletgate/internal/util"
)

// DefaultTimeout bounds every outbound provider call.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an upstream error body is kept for detail.
const maxErrorBody = 512

// Payload is the provider-agnostic request body handed to an adapter.
// Each adapter owns its own wire format beyond this.
type Payload map[string]any

// Adapter is the uniform wallet-operation interface every payment provider
// implements. Each call is a single external HTTP round trip with no local
// retry; the credential is the tenant's provider API key.
type Adapter interface {
	CreateWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error)
	FetchWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error)
	ListWallets(ctx context.Context, credential string, payload Payload) (json.RawMessage, error)
	Deposit(ctx context.Context, credential string, payload Payload) (json.RawMessage, error)
	Withdraw(ctx context.Context, credential string, payload Payload) (json.RawMessage, error)
}

// httpCaller is the shared HTTP plumbing for the concrete adapters: JSON
// bodies, bearer credential, bounded timeout, non-2xx mapped to ProviderError.
type httpCaller struct {
	name   string
	client *http.Client
}

func newHTTPCaller(name string, timeout time.Duration) httpCaller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return httpCaller{
		name:   name,
		client: &http.Client{Timeout: timeout},
	}
}

func (h httpCaller) postJSON(ctx context.Context, credential, endpoint string, payload Payload) (json.RawMessage, error) {
	if payload == nil {
		payload = Payload{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", h.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", h.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)

	return h.do(req)
}

func (h httpCaller) getJSON(ctx context.Context, credential, endpoint string, query Payload) (json.RawMessage, error) {
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, fmt.Sprint(v))
		}
		endpoint += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", h.name, err)
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	return h.do(req)
}

func (h httpCaller) do(req *http.Request) (json.RawMessage, error) {
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &util.ProviderError{Provider: h.name, Detail: err.Error()}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &util.ProviderError{Provider: h.name, StatusCode: resp.StatusCode, Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := string(payload)
		if len(detail) > maxErrorBody {
			detail = detail[:maxErrorBody]
		}
		return nil, &util.ProviderError{Provider: h.name, StatusCode: resp.StatusCode, Detail: detail}
	}

	return json.RawMessage(payload), nil
}

// requireString pulls a mandatory string field out of a payload.
func requireString(payload Payload, field string) (string, error) {
	v, ok := payload[field].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s is required", util.ErrInvalidInput, field)
	}
	return v, nil
}
