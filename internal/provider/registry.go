// internal/provider/registry.go
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"walletgate/internal/domain"
	"walletgate/internal/util"
)

// Operation names a capability of the uniform adapter interface.
type Operation string

const (
	OpCreateWallet Operation = "createWallet"
	OpFetchWallet  Operation = "fetchWallet"
	OpListWallets  Operation = "listWallets"
	OpDeposit      Operation = "deposit"
	OpWithdraw     Operation = "withdraw"
)

// DirectoryEntry is advisory platform-wide metadata about a provider type.
// It is not authorization: dispatch consults the adapter table, not this.
type DirectoryEntry struct {
	Type    domain.ProviderType `json:"type"`
	Name    string              `json:"name"`
	Enabled bool                `json:"enabled"`
}

// Registry maps provider types to adapters and owns the toggle-enabled
// provider directory. Adapters are registered once at startup; the directory
// is mutated by administrative calls and read concurrently by requests.
type Registry struct {
	mu        sync.RWMutex
	adapters  map[domain.ProviderType]Adapter
	directory map[domain.ProviderType]DirectoryEntry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters:  make(map[domain.ProviderType]Adapter),
		directory: make(map[domain.ProviderType]DirectoryEntry),
	}
}

// Register installs an adapter for a provider type and enables its directory
// entry. Adding a provider to the platform is exactly one Register call.
func (r *Registry) Register(providerType domain.ProviderType, adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[providerType] = adapter
	r.directory[providerType] = DirectoryEntry{
		Type:    providerType,
		Name:    displayName(providerType),
		Enabled: true,
	}
}

// Dispatch routes a wallet operation to the adapter registered for the
// provider type. Adapter results and failures propagate unchanged.
func (r *Registry) Dispatch(ctx context.Context, providerType domain.ProviderType, op Operation, credential string, payload Payload) (json.RawMessage, error) {
	r.mu.RLock()
	adapter, ok := r.adapters[providerType]
	r.mu.RUnlock()
	if !ok {
		return nil, util.ErrUnsupportedProvider
	}

	switch op {
	case OpCreateWallet:
		return adapter.CreateWallet(ctx, credential, payload)
	case OpFetchWallet:
		return adapter.FetchWallet(ctx, credential, payload)
	case OpListWallets:
		return adapter.ListWallets(ctx, credential, payload)
	case OpDeposit:
		return adapter.Deposit(ctx, credential, payload)
	case OpWithdraw:
		return adapter.Withdraw(ctx, credential, payload)
	}
	return nil, fmt.Errorf("%w: unknown operation %q", util.ErrInvalidInput, op)
}

// AddProvider enables a provider type in the directory.
func (r *Registry) AddProvider(providerType domain.ProviderType) DirectoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := DirectoryEntry{
		Type:    providerType,
		Name:    displayName(providerType),
		Enabled: true,
	}
	r.directory[providerType] = entry
	return entry
}

// RemoveProvider disables a provider type in the directory. The adapter stays
// registered; the directory is advisory only.
func (r *Registry) RemoveProvider(providerType domain.ProviderType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.directory[providerType]; ok {
		entry.Enabled = false
		r.directory[providerType] = entry
	}
}

// AvailableProviders returns the enabled directory entries, sorted by type.
func (r *Registry) AvailableProviders() []DirectoryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]DirectoryEntry, 0, len(r.directory))
	for _, entry := range r.directory {
		if entry.Enabled {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Type < entries[j].Type })
	return entries
}

func displayName(providerType domain.ProviderType) string {
	s := string(providerType)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
