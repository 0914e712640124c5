// internal/provider/registry_test.go
package provider

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgate/internal/domain"
	"walletgate/internal/util"
)

// stubAdapter records which operation was dispatched to it.
type stubAdapter struct {
	lastOp         Operation
	lastCredential string
	lastPayload    Payload
	result         json.RawMessage
	err            error
}

func (s *stubAdapter) record(op Operation, credential string, payload Payload) (json.RawMessage, error) {
	s.lastOp = op
	s.lastCredential = credential
	s.lastPayload = payload
	return s.result, s.err
}

func (s *stubAdapter) CreateWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return s.record(OpCreateWallet, credential, payload)
}

func (s *stubAdapter) FetchWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return s.record(OpFetchWallet, credential, payload)
}

func (s *stubAdapter) ListWallets(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return s.record(OpListWallets, credential, payload)
}

func (s *stubAdapter) Deposit(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return s.record(OpDeposit, credential, payload)
}

func (s *stubAdapter) Withdraw(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return s.record(OpWithdraw, credential, payload)
}

// noopAdapter is safe for concurrent dispatch.
type noopAdapter struct{}

func (noopAdapter) CreateWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return nil, nil
}

func (noopAdapter) FetchWallet(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return nil, nil
}

func (noopAdapter) ListWallets(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return nil, nil
}

func (noopAdapter) Deposit(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return nil, nil
}

func (noopAdapter) Withdraw(ctx context.Context, credential string, payload Payload) (json.RawMessage, error) {
	return nil, nil
}

func TestRegistryDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("RoutesEachOperation", func(t *testing.T) {
		registry := NewRegistry()
		adapter := &stubAdapter{result: json.RawMessage(`{"ok":true}`)}
		registry.Register(domain.ProviderPaystack, adapter)

		for _, op := range []Operation{OpCreateWallet, OpFetchWallet, OpListWallets, OpDeposit, OpWithdraw} {
			result, err := registry.Dispatch(ctx, domain.ProviderPaystack, op, "sk_test", Payload{"k": "v"})
			require.NoError(t, err, op)
			assert.Equal(t, adapter.result, result, op)
			assert.Equal(t, op, adapter.lastOp)
			assert.Equal(t, "sk_test", adapter.lastCredential)
		}
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		registry := NewRegistry()

		result, err := registry.Dispatch(ctx, domain.ProviderFingra, OpDeposit, "sk_test", Payload{})

		assert.ErrorIs(t, err, util.ErrUnsupportedProvider)
		assert.Nil(t, result)
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(domain.ProviderPaga, &stubAdapter{})

		result, err := registry.Dispatch(ctx, domain.ProviderPaga, Operation("refund"), "sk_test", Payload{})

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, result)
	})

	t.Run("DisabledDirectoryEntryStillDispatches", func(t *testing.T) {
		registry := NewRegistry()
		adapter := &stubAdapter{result: json.RawMessage(`{}`)}
		registry.Register(domain.ProviderFlutterwave, adapter)
		registry.RemoveProvider(domain.ProviderFlutterwave)

		// The directory is advisory metadata; dispatch consults the adapter table.
		_, err := registry.Dispatch(ctx, domain.ProviderFlutterwave, OpDeposit, "sk_test", Payload{})
		assert.NoError(t, err)
	})
}

func TestRegistryDirectory(t *testing.T) {
	t.Run("RegisterEnablesEntry", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(domain.ProviderPaystack, &stubAdapter{})
		registry.Register(domain.ProviderFingra, &stubAdapter{})

		entries := registry.AvailableProviders()
		require.Len(t, entries, 2)
		// Sorted by type.
		assert.Equal(t, domain.ProviderFingra, entries[0].Type)
		assert.Equal(t, "Fingra", entries[0].Name)
		assert.Equal(t, domain.ProviderPaystack, entries[1].Type)
		assert.True(t, entries[0].Enabled)
	})

	t.Run("RemoveHidesEntry", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(domain.ProviderPaystack, &stubAdapter{})
		registry.RemoveProvider(domain.ProviderPaystack)

		assert.Empty(t, registry.AvailableProviders())
	})

	t.Run("AddReenablesEntry", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(domain.ProviderPaystack, &stubAdapter{})
		registry.RemoveProvider(domain.ProviderPaystack)

		entry := registry.AddProvider(domain.ProviderPaystack)

		assert.True(t, entry.Enabled)
		assert.Equal(t, "Paystack", entry.Name)
		require.Len(t, registry.AvailableProviders(), 1)
	})

	t.Run("ConcurrentReadsAndToggles", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(domain.ProviderPaystack, noopAdapter{})

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				registry.AddProvider(domain.ProviderPaga)
				registry.RemoveProvider(domain.ProviderPaga)
			}()
			go func() {
				defer wg.Done()
				_ = registry.AvailableProviders()
				_, _ = registry.Dispatch(context.Background(), domain.ProviderPaystack, OpListWallets, "sk", Payload{})
			}()
		}
		wg.Wait()
	})
}
