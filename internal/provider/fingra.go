// internal/provider/fingra.go
package provider

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// DefaultFingraBaseURL is Fingra's production API host.
const DefaultFingraBaseURL = "https://api.fingra.com"

// Fingra adapts Fingra's wallet API to the uniform wallet-operation interface.
type Fingra struct {
	baseURL string
	httpCaller
}

// NewFingra creates a Fingra adapter.
func NewFingra(baseURL string, timeout time.Duration) *Fingra {
	if baseURL == "" {
		baseURL = DefaultFingraBaseURL
	}
	return &Fingra{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpCaller: newHTTPCaller("fingra", timeout),
	}
}

func (f *Fingra) CreateWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return f.postJSON(ctx, credential, f.baseURL+"/wallets", payload)
}

func (f *Fingra) FetchWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	walletID, err := requireString(payload, "walletId")
	if err != nil {
		return nil, err
	}
	return f.getJSON(ctx, credential, f.baseURL+"/wallets/"+walletID, nil)
}

func (f *Fingra) ListWallets(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return f.getJSON(ctx, credential, f.baseURL+"/wallets", payload)
}

func (f *Fingra) Deposit(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return f.postJSON(ctx, credential, f.baseURL+"/wallets/deposit", payload)
}

func (f *Fingra) Withdraw(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return f.postJSON(ctx, credential, f.baseURL+"/wallets/withdraw", payload)
}
