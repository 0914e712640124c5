// internal/service/provider_config_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"walletgate/internal/domain"
	"walletgate/internal/repository"
	"walletgate/internal/util"
)

// ProviderConfigService owns per-tenant provider credentials. Configure is an
// idempotent upsert; ResolveActiveCredential is the single choke point every
// money-moving dispatch passes through.
type ProviderConfigService interface {
	Configure(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType, config domain.ConfigBag, isActive *bool) (*domain.ProviderConfig, error)
	ListForTenant(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.ProviderConfig, error)
	ResolveActiveCredential(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType) (string, error)
}

// providerConfigService implements the ProviderConfigService interface.
type providerConfigService struct {
	dbExecutor repository.DBExecutor
	configRepo repository.ProviderConfigRepository
}

// NewProviderConfigService creates a new instance of ProviderConfigService.
func NewProviderConfigService(dbExecutor repository.DBExecutor, configRepo repository.ProviderConfigRepository) ProviderConfigService {
	return &providerConfigService{
		dbExecutor: dbExecutor,
		configRepo: configRepo,
	}
}

// Configure creates the (tenant, provider type) record if absent, otherwise
// overwrites its config bag and active flag. isActive defaults to true.
func (s *providerConfigService) Configure(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType, config domain.ConfigBag, isActive *bool) (*domain.ProviderConfig, error) {
	if !domain.ValidProviderType(providerType) {
		return nil, fmt.Errorf("%w: unknown provider type %q", util.ErrInvalidInput, providerType)
	}

	active := true
	if isActive != nil {
		active = *isActive
	}

	existing, err := s.configRepo.GetProviderConfig(ctx, s.dbExecutor, tenantType, tenantID, providerType)
	if err != nil && !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("configure: failed to check existing config: %w", err)
	}

	if existing != nil {
		existing.Config = config
		existing.IsActive = active
		existing.UpdatedAt = time.Now().UTC()
		if err := s.configRepo.UpdateProviderConfig(ctx, s.dbExecutor, existing); err != nil {
			return nil, fmt.Errorf("configure: failed to update config: %w", err)
		}
		return existing, nil
	}

	cfg := domain.NewProviderConfig(tenantType, tenantID, providerType, config, active)
	if err := s.configRepo.CreateProviderConfig(ctx, s.dbExecutor, cfg); err != nil {
		return nil, fmt.Errorf("configure: failed to create config: %w", err)
	}
	return cfg, nil
}

// ListForTenant returns all provider configs owned by the tenant.
func (s *providerConfigService) ListForTenant(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.ProviderConfig, error) {
	configs, err := s.configRepo.ListProviderConfigsByTenant(ctx, s.dbExecutor, tenantType, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list provider configs: %w", err)
	}
	return configs, nil
}

// ResolveActiveCredential returns the apiKey credential of the tenant's
// active config for the provider type. No active config is ErrNotFound; an
// active config without a usable apiKey string is ErrUnauthorized.
func (s *providerConfigService) ResolveActiveCredential(ctx context.Context, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType) (string, error) {
	cfg, err := s.configRepo.GetActiveProviderConfig(ctx, s.dbExecutor, tenantType, tenantID, providerType)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", util.ErrNotFound
		}
		return "", fmt.Errorf("resolve credential: %w", err)
	}

	apiKey, ok := cfg.Config.APIKey()
	if !ok {
		return "", util.ErrUnauthorized
	}
	return apiKey, nil
}
