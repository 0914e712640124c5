// internal/provider/paystack.go
package provider

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// DefaultPaystackBaseURL is Paystack's production API host.
const DefaultPaystackBaseURL = "https://api.paystack.co"

// Paystack adapts Paystack's customer and transaction APIs to the uniform
// wallet-operation interface. Wallets map to Paystack customers.
type Paystack struct {
	baseURL string
	httpCaller
}

// NewPaystack creates a Paystack adapter.
func NewPaystack(baseURL string, timeout time.Duration) *Paystack {
	if baseURL == "" {
		baseURL = DefaultPaystackBaseURL
	}
	return &Paystack{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpCaller: newHTTPCaller("paystack", timeout),
	}
}

func (p *Paystack) CreateWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.postJSON(ctx, credential, p.baseURL+"/customer", payload)
}

func (p *Paystack) FetchWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	customerCode, err := requireString(payload, "customerCode")
	if err != nil {
		return nil, err
	}
	return p.getJSON(ctx, credential, p.baseURL+"/customer/"+customerCode, nil)
}

func (p *Paystack) ListWallets(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.getJSON(ctx, credential, p.baseURL+"/customer", payload)
}

func (p *Paystack) Deposit(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.postJSON(ctx, credential, p.baseURL+"/transaction/initialize", payload)
}

func (p *Paystack) Withdraw(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.postJSON(ctx, credential, p.baseURL+"/transfer", payload)
}
