// internal/api/handler/wallet_test.go
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"walletgate/internal/domain"
	"walletgate/internal/service"
	"walletgate/internal/util"
)

// MockWalletService is a mock implementation of service.WalletService.
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) CreateWallet(ctx context.Context, presentedKey string, input service.CreateWalletInput) (*domain.Wallet, error) {
	args := m.Called(ctx, presentedKey, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) GetWallet(ctx context.Context, presentedKey string, walletID uuid.UUID) (*service.WalletWithBalance, error) {
	args := m.Called(ctx, presentedKey, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WalletWithBalance), args.Error(1)
}

func (m *MockWalletService) ListWallets(ctx context.Context, presentedKey string) ([]domain.Wallet, error) {
	args := m.Called(ctx, presentedKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletService) Transfer(ctx context.Context, presentedKey string, input service.TransferInput) (json.RawMessage, error) {
	args := m.Called(ctx, presentedKey, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockWalletService) Credit(ctx context.Context, presentedKey string, input service.MoneyMovementInput) (*service.MoneyMovementResult, error) {
	args := m.Called(ctx, presentedKey, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MoneyMovementResult), args.Error(1)
}

func (m *MockWalletService) Debit(ctx context.Context, presentedKey string, input service.MoneyMovementInput) (*service.MoneyMovementResult, error) {
	args := m.Called(ctx, presentedKey, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MoneyMovementResult), args.Error(1)
}

func TestWalletHandler(t *testing.T) {
	util.InitLogger()
	logger := util.GetLogger()

	t.Run("MissingAPIKeyHeader", func(t *testing.T) {
		mockService := new(MockWalletService)
		h := NewWalletHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewBufferString(`{"currency":"NGN"}`))
		rec := httptest.NewRecorder()
		h.CreateWallet(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockService.AssertNotCalled(t, "CreateWallet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreateWalletReturns201", func(t *testing.T) {
		mockService := new(MockWalletService)
		h := NewWalletHandler(mockService, logger)

		projectID := uuid.New()
		wallet := domain.NewWallet(projectID, nil, "NGN")
		mockService.On("CreateWallet", mock.Anything, "wg_id_secret", service.CreateWalletInput{Currency: "NGN"}).
			Return(wallet, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewBufferString(`{"currency":"NGN"}`))
		req.Header.Set(apiKeyHeader, "wg_id_secret")
		rec := httptest.NewRecorder()
		h.CreateWallet(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, wallet.ID.String(), body["id"])
		assert.Equal(t, "NGN", body["currency"])
		mock.AssertExpectationsForObjects(t, mockService)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		mockService := new(MockWalletService)
		h := NewWalletHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewBufferString(`{not json`))
		req.Header.Set(apiKeyHeader, "wg_id_secret")
		rec := httptest.NewRecorder()
		h.CreateWallet(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("CurrencyMismatchMapsTo401", func(t *testing.T) {
		mockService := new(MockWalletService)
		h := NewWalletHandler(mockService, logger)

		mockService.On("Credit", mock.Anything, "wg_id_secret", mock.AnythingOfType("service.MoneyMovementInput")).
			Return(nil, util.ErrCurrencyMismatch).Once()

		body := `{"wallet_id":"` + uuid.NewString() + `","amount":"50","currency":"USD","reference":"ref-12345"}`
		req := httptest.NewRequest(http.MethodPost, "/wallets/credit", bytes.NewBufferString(body))
		req.Header.Set(apiKeyHeader, "wg_id_secret")
		rec := httptest.NewRecorder()
		h.Credit(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Wallet currency mismatch")
		mock.AssertExpectationsForObjects(t, mockService)
	})

	t.Run("UnknownProviderRejectedBeforeService", func(t *testing.T) {
		mockService := new(MockWalletService)
		h := NewWalletHandler(mockService, logger)

		body := `{"wallet_id":"` + uuid.NewString() + `","amount":"50","currency":"NGN","reference":"ref-12345","provider":"stripe"}`
		req := httptest.NewRequest(http.MethodPost, "/wallets/debit", bytes.NewBufferString(body))
		req.Header.Set(apiKeyHeader, "wg_id_secret")
		rec := httptest.NewRecorder()
		h.Debit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ProviderFailureMapsTo502", func(t *testing.T) {
		mockService := new(MockWalletService)
		h := NewWalletHandler(mockService, logger)

		providerErr := &util.ProviderError{Provider: "paystack", StatusCode: 402, Detail: "card declined"}
		mockService.On("Debit", mock.Anything, "wg_id_secret", mock.AnythingOfType("service.MoneyMovementInput")).
			Return(nil, providerErr).Once()

		body := `{"wallet_id":"` + uuid.NewString() + `","amount":"50","currency":"NGN","reference":"ref-12345","provider":"paystack"}`
		req := httptest.NewRequest(http.MethodPost, "/wallets/debit", bytes.NewBufferString(body))
		req.Header.Set(apiKeyHeader, "wg_id_secret")
		rec := httptest.NewRecorder()
		h.Debit(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "card declined")
		mock.AssertExpectationsForObjects(t, mockService)
	})

	t.Run("InvalidWalletIDParam", func(t *testing.T) {
		mockService := new(MockWalletService)
		h := NewWalletHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/wallets/not-a-uuid", nil)
		req.Header.Set(apiKeyHeader, "wg_id_secret")
		rec := httptest.NewRecorder()
		h.GetWallet(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetWallet", mock.Anything, mock.Anything, mock.Anything)
	})
}
