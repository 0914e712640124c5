// internal/service/provider_config_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"walletgate/internal/domain"
	"walletgate/internal/repository"
	"walletgate/internal/util"
)

// MockProviderConfigRepository is a mock implementation of repository.ProviderConfigRepository.
type MockProviderConfigRepository struct {
	mock.Mock
}

func (m *MockProviderConfigRepository) CreateProviderConfig(ctx context.Context, q repository.DBExecutor, cfg *domain.ProviderConfig) error {
	args := m.Called(ctx, q, cfg)
	return args.Error(0)
}

func (m *MockProviderConfigRepository) UpdateProviderConfig(ctx context.Context, q repository.DBExecutor, cfg *domain.ProviderConfig) error {
	args := m.Called(ctx, q, cfg)
	return args.Error(0)
}

func (m *MockProviderConfigRepository) GetProviderConfig(ctx context.Context, q repository.DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType) (*domain.ProviderConfig, error) {
	args := m.Called(ctx, q, tenantType, tenantID, providerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderConfig), args.Error(1)
}

func (m *MockProviderConfigRepository) GetActiveProviderConfig(ctx context.Context, q repository.DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID, providerType domain.ProviderType) (*domain.ProviderConfig, error) {
	args := m.Called(ctx, q, tenantType, tenantID, providerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderConfig), args.Error(1)
}

func (m *MockProviderConfigRepository) ListProviderConfigsByTenant(ctx context.Context, q repository.DBExecutor, tenantType domain.TenantType, tenantID uuid.UUID) ([]domain.ProviderConfig, error) {
	args := m.Called(ctx, q, tenantType, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProviderConfig), args.Error(1)
}

func TestConfigureProvider(t *testing.T) {
	projectID := uuid.New()

	t.Run("CreatesWhenAbsent", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockConfigRepo := new(MockProviderConfigRepository)
		svc := NewProviderConfigService(mockExecutor, mockConfigRepo)

		mockConfigRepo.On("GetProviderConfig", ctx, mockExecutor, domain.TenantProject, projectID, domain.ProviderPaystack).
			Return(nil, util.ErrNotFound).Once()
		mockConfigRepo.On("CreateProviderConfig", ctx, mockExecutor, mock.AnythingOfType("*domain.ProviderConfig")).
			Return(nil).Once()

		cfg, err := svc.Configure(ctx, domain.TenantProject, projectID, domain.ProviderPaystack,
			domain.ConfigBag{"apiKey": "sk_test_abc"}, nil)

		require.NoError(t, err)
		assert.True(t, cfg.IsActive)
		assert.Equal(t, domain.ProviderPaystack, cfg.Type)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockConfigRepo)
	})

	t.Run("UpdatesWhenPresent", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockConfigRepo := new(MockProviderConfigRepository)
		svc := NewProviderConfigService(mockExecutor, mockConfigRepo)

		existing := domain.NewProviderConfig(domain.TenantProject, projectID, domain.ProviderFingra,
			domain.ConfigBag{"apiKey": "old"}, true)
		mockConfigRepo.On("GetProviderConfig", ctx, mockExecutor, domain.TenantProject, projectID, domain.ProviderFingra).
			Return(existing, nil).Once()
		mockConfigRepo.On("UpdateProviderConfig", ctx, mockExecutor, existing).Return(nil).Once()

		inactive := false
		cfg, err := svc.Configure(ctx, domain.TenantProject, projectID, domain.ProviderFingra,
			domain.ConfigBag{"apiKey": "new"}, &inactive)

		require.NoError(t, err)
		assert.Equal(t, existing.ID, cfg.ID)
		assert.False(t, cfg.IsActive)
		apiKey, ok := cfg.Config.APIKey()
		require.True(t, ok)
		assert.Equal(t, "new", apiKey)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockConfigRepo)
	})

	t.Run("UnknownProviderType", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockConfigRepo := new(MockProviderConfigRepository)
		svc := NewProviderConfigService(mockExecutor, mockConfigRepo)

		cfg, err := svc.Configure(ctx, domain.TenantProject, projectID, "stripe", domain.ConfigBag{}, nil)

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, cfg)
		mockConfigRepo.AssertNotCalled(t, "CreateProviderConfig", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResolveActiveCredential(t *testing.T) {
	projectID := uuid.New()

	t.Run("ReturnsAPIKey", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockConfigRepo := new(MockProviderConfigRepository)
		svc := NewProviderConfigService(mockExecutor, mockConfigRepo)

		cfg := domain.NewProviderConfig(domain.TenantProject, projectID, domain.ProviderFlutterwave,
			domain.ConfigBag{"apiKey": "FLWSECK-xyz", "environment": "sandbox"}, true)
		mockConfigRepo.On("GetActiveProviderConfig", ctx, mockExecutor, domain.TenantProject, projectID, domain.ProviderFlutterwave).
			Return(cfg, nil).Once()

		credential, err := svc.ResolveActiveCredential(ctx, domain.TenantProject, projectID, domain.ProviderFlutterwave)

		require.NoError(t, err)
		assert.Equal(t, "FLWSECK-xyz", credential)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockConfigRepo)
	})

	t.Run("NoActiveConfig", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockConfigRepo := new(MockProviderConfigRepository)
		svc := NewProviderConfigService(mockExecutor, mockConfigRepo)

		// A deactivated config resolves the same as an absent one.
		mockConfigRepo.On("GetActiveProviderConfig", ctx, mockExecutor, domain.TenantProject, projectID, domain.ProviderPaga).
			Return(nil, util.ErrNotFound).Once()

		credential, err := svc.ResolveActiveCredential(ctx, domain.TenantProject, projectID, domain.ProviderPaga)

		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.Empty(t, credential)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockConfigRepo)
	})

	t.Run("MissingAPIKeyField", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockConfigRepo := new(MockProviderConfigRepository)
		svc := NewProviderConfigService(mockExecutor, mockConfigRepo)

		cfg := domain.NewProviderConfig(domain.TenantProject, projectID, domain.ProviderPaystack,
			domain.ConfigBag{"environment": "sandbox"}, true)
		mockConfigRepo.On("GetActiveProviderConfig", ctx, mockExecutor, domain.TenantProject, projectID, domain.ProviderPaystack).
			Return(cfg, nil).Once()

		credential, err := svc.ResolveActiveCredential(ctx, domain.TenantProject, projectID, domain.ProviderPaystack)

		assert.ErrorIs(t, err, util.ErrUnauthorized)
		assert.Empty(t, credential)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockConfigRepo)
	})
}
