// internal/provider/flutterwave.go
package provider

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// DefaultFlutterwaveBaseURL is Flutterwave's production API host.
const DefaultFlutterwaveBaseURL = "https://api.flutterwave.com"

// Flutterwave adapts Flutterwave's virtual-account, charge and transfer APIs
// to the uniform wallet-operation interface. Wallets map to virtual account
// numbers.
type Flutterwave struct {
	baseURL string
	httpCaller
}

// NewFlutterwave creates a Flutterwave adapter.
func NewFlutterwave(baseURL string, timeout time.Duration) *Flutterwave {
	if baseURL == "" {
		baseURL = DefaultFlutterwaveBaseURL
	}
	return &Flutterwave{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpCaller: newHTTPCaller("flutterwave", timeout),
	}
}

func (f *Flutterwave) CreateWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return f.postJSON(ctx, credential, f.baseURL+"/v3/virtual-account-numbers", payload)
}

func (f *Flutterwave) FetchWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	accountReference, err := requireString(payload, "accountReference")
	if err != nil {
		return nil, err
	}
	return f.getJSON(ctx, credential, f.baseURL+"/v3/virtual-account-numbers/"+accountReference, nil)
}

func (f *Flutterwave) ListWallets(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return f.getJSON(ctx, credential, f.baseURL+"/v3/virtual-account-numbers", payload)
}

func (f *Flutterwave) Deposit(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return f.postJSON(ctx, credential, f.baseURL+"/v3/charges", payload)
}

func (f *Flutterwave) Withdraw(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return f.postJSON(ctx, credential, f.baseURL+"/v3/transfers", payload)
}
