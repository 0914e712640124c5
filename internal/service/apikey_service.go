// internal/service/apikey_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"walletgate/internal/domain"
	"walletgate/internal/repository"
	"walletgate/internal/util"
	"walletgate/pkg/keycodec"
)

// IssueKeyInput carries the optional fields of a key issuance request.
type IssueKeyInput struct {
	Scope       domain.KeyScope
	Description *string
	ExpiresAt   *time.Time
	Quota       *int
}

// IssuedKey is returned exactly once, at creation: the only time the raw key
// is ever visible.
type IssuedKey struct {
	ID          uuid.UUID       `json:"id"`
	RawKey      string          `json:"raw_key"`
	Scope       domain.KeyScope `json:"scope"`
	Description *string         `json:"description,omitempty"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// APIKeyService owns per-tenant API-key records: issuance, verification,
// revocation, and listing.
type APIKeyService interface {
	Issue(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID, input IssueKeyInput) (*IssuedKey, error)
	Verify(ctx context.Context, presentedKey string) (*domain.APIKey, error)
	Revoke(ctx context.Context, tenantType domain.TenantType, tenantID, keyID uuid.UUID) error
	ListForTenant(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.APIKey, error)
}

// apiKeyService implements the APIKeyService interface.
type apiKeyService struct {
	dbExecutor repository.DBExecutor
	keyRepo    repository.APIKeyRepository
}

// NewAPIKeyService creates a new instance of APIKeyService.
func NewAPIKeyService(dbExecutor repository.DBExecutor, keyRepo repository.APIKeyRepository) APIKeyService {
	return &apiKeyService{
		dbExecutor: dbExecutor,
		keyRepo:    keyRepo,
	}
}

// Issue creates a new key for the tenant. At most one key exists per
// (tenant, scope); a live duplicate fails with ErrConflict.
func (s *apiKeyService) Issue(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID, input IssueKeyInput) (*IssuedKey, error) {
	if !domain.ValidScopeFor(tenantType, input.Scope) {
		return nil, fmt.Errorf("%w: scope %q is not valid for %s keys", util.ErrInvalidInput, input.Scope, tenantType)
	}

	existing, err := s.keyRepo.GetAPIKeyByTenantAndScope(ctx, s.dbExecutor, tenantType, tenantID, input.Scope)
	if err != nil && !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("issue: failed to check existing key: %w", err)
	}
	if existing != nil {
		return nil, util.ErrConflict
	}

	material, err := keycodec.Generate(keycodec.DefaultSecretLength)
	if err != nil {
		return nil, fmt.Errorf("issue: failed to generate key material: %w", err)
	}

	key := domain.NewAPIKey(tenantType, tenantID, input.Scope, material.HashedSecret, input.Description, input.ExpiresAt, input.Quota)
	if err := s.keyRepo.CreateAPIKey(ctx, s.dbExecutor, key); err != nil {
		return nil, fmt.Errorf("issue: failed to persist key: %w", err)
	}

	return &IssuedKey{
		ID:          key.ID,
		RawKey:      keycodec.Encode(key.ID.String(), material.Secret),
		Scope:       key.Scope,
		Description: key.Description,
		ExpiresAt:   key.ExpiresAt,
		CreatedAt:   key.CreatedAt,
	}, nil
}

// Verify resolves a presented key to its stored record. Every failure mode
// surfaces as the same ErrUnauthorized so a caller cannot probe which record
// identifiers exist.
func (s *apiKeyService) Verify(ctx context.Context, presentedKey string) (*domain.APIKey, error) {
	recordID, secret, err := keycodec.Decode(presentedKey)
	if err != nil {
		return nil, util.ErrUnauthorized
	}

	id, err := uuid.Parse(recordID)
	if err != nil {
		return nil, util.ErrUnauthorized
	}

	key, err := s.keyRepo.GetAPIKeyByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUnauthorized
		}
		return nil, fmt.Errorf("verify: failed to look up key: %w", err)
	}

	if !keycodec.Verify(secret, key.HashedSecret) {
		return nil, util.ErrUnauthorized
	}

	if key.Expired(time.Now().UTC()) {
		return nil, util.ErrUnauthorized
	}

	return key, nil
}

// Revoke hard-deletes a key. A key owned by a different tenant surfaces as
// ErrNotFound, the same as a key that never existed.
func (s *apiKeyService) Revoke(ctx context.Context, tenantType domain.TenantType, tenantID, keyID uuid.UUID) error {
	key, err := s.keyRepo.GetAPIKeyByID(ctx, s.dbExecutor, keyID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("revoke: failed to look up key %s: %w", keyID, err)
	}

	if key.TenantType != tenantType || key.TenantID != tenantID {
		return util.ErrNotFound
	}

	if err := s.keyRepo.DeleteAPIKey(ctx, s.dbExecutor, keyID); err != nil {
		return fmt.Errorf("revoke: failed to delete key %s: %w", keyID, err)
	}
	return nil
}

// ListForTenant returns the tenant's key records. Hashed secrets carry a
// json:"-" tag and never leave through any read path.
func (s *apiKeyService) ListForTenant(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.APIKey, error) {
	keys, err := s.keyRepo.ListAPIKeysByTenant(ctx, s.dbExecutor, tenantType, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}
