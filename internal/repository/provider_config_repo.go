// internal/repository/provider_config_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"walletgate/internal/domain"
)

// ProviderConfigRepository defines the interface for provider-config data operations.
type ProviderConfigRepository interface {
	// CreateProviderConfig adds a new provider-config record.
	CreateProviderConfig(ctx context.Context, q DBExecutor, cfg *domain.ProviderConfig) error
	// UpdateProviderConfig overwrites the config bag and active flag of an existing record.
	UpdateProviderConfig(ctx context.Context, q DBExecutor, cfg *domain.ProviderConfig) error
	// GetProviderConfig retrieves the record for a (tenant, provider type) pair.
	GetProviderConfig(ctx context.Context, q DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType) (*domain.ProviderConfig, error)
	// GetActiveProviderConfig retrieves the record only if it is active.
	GetActiveProviderConfig(ctx context.Context, q DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType) (*domain.ProviderConfig, error)
	// ListProviderConfigsByTenant retrieves all configs owned by a tenant.
	ListProviderConfigsByTenant(ctx context.Context, q DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.ProviderConfig, error)
}
