// internal/repository/postgres/apikey_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"walletgate/internal/domain"
	"walletgate/internal/repository"
	"walletgate/internal/util"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint violations.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// APIKeyRepository implements repository.APIKeyRepository for PostgreSQL.
type APIKeyRepository struct{}

// NewAPIKeyRepository creates a new APIKeyRepository.
func NewAPIKeyRepository(db *sqlx.DB) repository.APIKeyRepository {
	return &APIKeyRepository{}
}

// CreateAPIKey inserts a new API-key record using the provided DBExecutor.
func (r *APIKeyRepository) CreateAPIKey(ctx context.Context, q repository.DBExecutor, key *domain.APIKey) error {
	query := `INSERT INTO api_keys (id, tenant_type, tenant_id, scope, description, hashed_secret, quota, used, expires_at, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := q.ExecContext(ctx, query,
		key.ID, key.TenantType, key.TenantID, key.Scope, key.Description,
		key.HashedSecret, key.Quota, key.Used, key.ExpiresAt, key.CreatedAt, key.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrConflict
		}
		return fmt.Errorf("failed to create api key: %w", err)
	}
	return nil
}

// GetAPIKeyByID retrieves an API-key record by its ID using the provided DBExecutor.
func (r *APIKeyRepository) GetAPIKeyByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.APIKey, error) {
	var key domain.APIKey
	query := `SELECT id, tenant_type, tenant_id, scope, description, hashed_secret, quota, used, expires_at, created_at, updated_at
              FROM api_keys WHERE id = $1`
	err := q.GetContext(ctx, &key, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get api key by ID %s: %w", id, err)
	}
	return &key, nil
}

// GetAPIKeyByTenantAndScope retrieves the key record for a (tenant, scope) pair.
func (r *APIKeyRepository) GetAPIKeyByTenantAndScope(ctx context.Context, q repository.DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID, scope domain.KeyScope) (*domain.APIKey, error) {
	var key domain.APIKey
	query := `SELECT id, tenant_type, tenant_id, scope, description, hashed_secret, quota, used, expires_at, created_at, updated_at
              FROM api_keys WHERE tenant_type = $1 AND tenant_id = $2 AND scope = $3`
	err := q.GetContext(ctx, &key, query, tenantType, tenantID, scope)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get api key for tenant %s scope %s: %w", tenantID, scope, err)
	}
	return &key, nil
}

// ListAPIKeysByTenant retrieves all key records owned by a tenant.
func (r *APIKeyRepository) ListAPIKeysByTenant(ctx context.Context, q repository.DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.APIKey, error) {
	keys := []domain.APIKey{}
	query := `SELECT id, tenant_type, tenant_id, scope, description, hashed_secret, quota, used, expires_at, created_at, updated_at
              FROM api_keys WHERE tenant_type = $1 AND tenant_id = $2 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &keys, query, tenantType, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list api keys for tenant %s: %w", tenantID, err)
	}
	return keys, nil
}

// DeleteAPIKey hard-deletes a key record.
func (r *APIKeyRepository) DeleteAPIKey(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	result, err := q.ExecContext(ctx, `DELETE FROM api_keys WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete api key %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting api key %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
