// internal/repository/apikey_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"walletgate/internal/domain"
)

// APIKeyRepository defines the interface for API-key data operations.
type APIKeyRepository interface {
	// CreateAPIKey adds a new API-key record.
	CreateAPIKey(ctx context.Context, q DBExecutor, key *domain.APIKey) error
	// GetAPIKeyByID retrieves a key record by its ID.
	GetAPIKeyByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.APIKey, error)
	// GetAPIKeyByTenantAndScope retrieves the key for a (tenant, scope) pair.
	GetAPIKeyByTenantAndScope(ctx context.Context, q DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID, scope domain.KeyScope) (*domain.APIKey, error)
	// ListAPIKeysByTenant retrieves all key records owned by a tenant.
	ListAPIKeysByTenant(ctx context.Context, q DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.APIKey, error)
	// DeleteAPIKey hard-deletes a key record.
	DeleteAPIKey(ctx context.Context, q DBExecutor, id uuid.UUID) error
}
