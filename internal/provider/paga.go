// internal/provider/paga.go
package provider

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// DefaultPagaBaseURL is Paga's production API host.
const DefaultPagaBaseURL = "https://api.mypaga.com"

const pagaWalletPath = "/paga-webservices/business-rest/secured/v1/wallet"

// Paga adapts Paga's business wallet API to the uniform wallet-operation
// interface. Paga is POST-only, reads included.
type Paga struct {
	baseURL string
	httpCaller
}

// NewPaga creates a Paga adapter.
func NewPaga(baseURL string, timeout time.Duration) *Paga {
	if baseURL == "" {
		baseURL = DefaultPagaBaseURL
	}
	return &Paga{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpCaller: newHTTPCaller("paga", timeout),
	}
}

func (p *Paga) CreateWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.postJSON(ctx, credential, p.baseURL+pagaWalletPath+"/create", payload)
}

func (p *Paga) FetchWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.postJSON(ctx, credential, p.baseURL+pagaWalletPath+"/get", payload)
}

func (p *Paga) ListWallets(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.postJSON(ctx, credential, p.baseURL+pagaWalletPath+"/list", payload)
}

func (p *Paga) Deposit(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.postJSON(ctx, credential, p.baseURL+pagaWalletPath+"/fund", payload)
}

func (p *Paga) Withdraw(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return p.postJSON(ctx, credential, p.baseURL+pagaWalletPath+"/withdraw", payload)
}
