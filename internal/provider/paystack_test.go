// internal/provider/paystack_test.go
package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgate/internal/util"
)

func TestPaystackAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("DepositPostsWithBearerCredential", func(t *testing.T) {
		var gotPath, gotAuth, gotContentType string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":true,"data":{"reference":"ps-1"}}`))
		}))
		defer server.Close()

		adapter := NewPaystack(server.URL, time.Second)
		result, err := adapter.Deposit(ctx, "sk_test_abc", Payload{"email": "a@b.com", "amount": "5000"})

		require.NoError(t, err)
		assert.Equal(t, "/transaction/initialize", gotPath)
		assert.Equal(t, "Bearer sk_test_abc", gotAuth)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "a@b.com", gotBody["email"])
		assert.JSONEq(t, `{"status":true,"data":{"reference":"ps-1"}}`, string(result))
	})

	t.Run("FetchWalletRequiresCustomerCode", func(t *testing.T) {
		adapter := NewPaystack("http://unused", time.Second)

		result, err := adapter.FetchWallet(ctx, "sk_test_abc", Payload{})

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, result)
	})

	t.Run("FetchWalletGetsByCustomerCode", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`{"status":true}`))
		}))
		defer server.Close()

		adapter := NewPaystack(server.URL, time.Second)
		_, err := adapter.FetchWallet(ctx, "sk_test_abc", Payload{"customerCode": "CUS_123"})

		require.NoError(t, err)
		assert.Equal(t, "/customer/CUS_123", gotPath)
	})

	t.Run("UpstreamErrorBecomesProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
		}))
		defer server.Close()

		adapter := NewPaystack(server.URL, time.Second)
		result, err := adapter.Withdraw(ctx, "sk_bad", Payload{"amount": "100"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, util.ErrProviderFailure)

		var providerErr *util.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "paystack", providerErr.Provider)
		assert.Equal(t, http.StatusUnauthorized, providerErr.StatusCode)
		assert.Contains(t, providerErr.Detail, "Invalid key")
	})

	t.Run("TransportFailureBecomesProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // closed before use

		adapter := NewPaystack(server.URL, time.Second)
		result, err := adapter.Deposit(ctx, "sk_test_abc", nil)

		assert.ErrorIs(t, err, util.ErrProviderFailure)
		assert.Nil(t, result)
	})
}
