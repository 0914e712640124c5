// internal/repository/postgres/provider_config_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"walletgate/internal/domain"
	"walletgate/internal/repository"
	"walletgate/internal/util"
)

// ProviderConfigRepository implements repository.ProviderConfigRepository for PostgreSQL.
type ProviderConfigRepository struct{}

// NewProviderConfigRepository creates a new ProviderConfigRepository.
func NewProviderConfigRepository(db *sqlx.DB) repository.ProviderConfigRepository {
	return &ProviderConfigRepository{}
}

// CreateProviderConfig inserts a new provider-config record using the provided DBExecutor.
func (r *ProviderConfigRepository) CreateProviderConfig(ctx context.Context, q repository.DBExecutor, cfg *domain.ProviderConfig) error {
	query := `INSERT INTO provider_configs (id, tenant_type, tenant_id, provider_type, config, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.ExecContext(ctx, query,
		cfg.ID, cfg.TenantType, cfg.TenantID, cfg.Type, cfg.Config, cfg.IsActive, cfg.CreatedAt, cfg.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrConflict
		}
		return fmt.Errorf("failed to create provider config: %w", err)
	}
	return nil
}

// UpdateProviderConfig overwrites the config bag and active flag of an existing record.
func (r *ProviderConfigRepository) UpdateProviderConfig(ctx context.Context, q repository.DBExecutor, cfg *domain.ProviderConfig) error {
	query := `UPDATE provider_configs SET config = $1, is_active = $2, updated_at = $3 WHERE id = $4`
	result, err := q.ExecContext(ctx, query, cfg.Config, cfg.IsActive, cfg.UpdatedAt, cfg.ID)
	if err != nil {
		return fmt.Errorf("failed to update provider config %s: %w", cfg.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating provider config %s: %w", cfg.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// GetProviderConfig retrieves the record for a (tenant, provider type) pair.
func (r *ProviderConfigRepository) GetProviderConfig(ctx context.Context, q repository.DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType) (*domain.ProviderConfig, error) {
	var cfg domain.ProviderConfig
	query := `SELECT id, tenant_type, tenant_id, provider_type, config, is_active, created_at, updated_at
              FROM provider_configs WHERE tenant_type = $1 AND tenant_id = $2 AND provider_type = $3`
	err := q.GetContext(ctx, &cfg, query, tenantType, tenantID, providerType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get provider config for tenant %s type %s: %w", tenantID, providerType, err)
	}
	return &cfg, nil
}

// GetActiveProviderConfig retrieves the record only if it is active.
func (r *ProviderConfigRepository) GetActiveProviderConfig(ctx context.Context, q repository.DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType) (*domain.ProviderConfig, error) {
	var cfg domain.ProviderConfig
	query := `SELECT id, tenant_type, tenant_id, provider_type, config, is_active, created_at, updated_at
              FROM provider_configs WHERE tenant_type = $1 AND tenant_id = $2 AND provider_type = $3 AND is_active = TRUE`
	err := q.GetContext(ctx, &cfg, query, tenantType, tenantID, providerType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active provider config for tenant %s type %s: %w", tenantID, providerType, err)
	}
	return &cfg, nil
}

// ListProviderConfigsByTenant retrieves all configs owned by a tenant.
func (r *ProviderConfigRepository) ListProviderConfigsByTenant(ctx context.Context, q repository.DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.ProviderConfig, error) {
	configs := []domain.ProviderConfig{}
	query := `SELECT id, tenant_type, tenant_id, provider_type, config, is_active, created_at, updated_at
              FROM provider_configs WHERE tenant_type = $1 AND tenant_id = $2 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &configs, query, tenantType, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list provider configs for tenant %s: %w", tenantID, err)
	}
	return configs, nil
}
