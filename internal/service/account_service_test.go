// internal/service/account_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"walletgate/internal/domain"
	"walletgate/internal/util"
)

func TestCreateAccount(t *testing.T) {
	projectID := uuid.New()

	t.Run("SuccessfulCreate", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockAccountRepo := new(MockAccountRepository)
		svc := NewAccountService(mockExecutor, mockAccountRepo)

		mockAccountRepo.On("CreateAccount", ctx, mockExecutor, mock.AnythingOfType("*domain.ProjectAccount")).
			Return(nil).Once()

		account, err := svc.Create(ctx, projectID, "Merchant Settlements")

		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, projectID, account.ProjectID)
		assert.Equal(t, "Merchant Settlements", account.Name)
		assert.NotEqual(t, uuid.Nil, account.ID)

		created := mockAccountRepo.Calls[0].Arguments.Get(2).(*domain.ProjectAccount)
		assert.Equal(t, account.ID, created.ID)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockAccountRepo)
	})

	t.Run("DuplicateNameConflicts", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockAccountRepo := new(MockAccountRepository)
		svc := NewAccountService(mockExecutor, mockAccountRepo)

		mockAccountRepo.On("CreateAccount", ctx, mockExecutor, mock.AnythingOfType("*domain.ProjectAccount")).
			Return(util.ErrConflict).Once()

		account, err := svc.Create(ctx, projectID, "Merchant Settlements")

		assert.ErrorIs(t, err, util.ErrConflict)
		assert.Nil(t, account)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockAccountRepo)
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockAccountRepo := new(MockAccountRepository)
		svc := NewAccountService(mockExecutor, mockAccountRepo)

		account, err := svc.Create(ctx, projectID, "")

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, account)
		mockAccountRepo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListAccounts(t *testing.T) {
	projectID := uuid.New()

	t.Run("ReturnsProjectAccounts", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockAccountRepo := new(MockAccountRepository)
		svc := NewAccountService(mockExecutor, mockAccountRepo)

		accounts := []domain.ProjectAccount{
			*domain.NewProjectAccount(projectID, "Merchant Settlements"),
			*domain.NewProjectAccount(projectID, "Refund Reserve"),
		}
		mockAccountRepo.On("ListAccountsByProject", ctx, mockExecutor, projectID).
			Return(accounts, nil).Once()

		listed, err := svc.List(ctx, projectID)

		require.NoError(t, err)
		assert.Equal(t, accounts, listed)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockAccountRepo)
	})

	t.Run("EmptyProject", func(t *testing.T) {
		ctx := context.Background()
		mockExecutor := new(MockDBExecutor)
		mockAccountRepo := new(MockAccountRepository)
		svc := NewAccountService(mockExecutor, mockAccountRepo)

		mockAccountRepo.On("ListAccountsByProject", ctx, mockExecutor, projectID).
			Return([]domain.ProjectAccount{}, nil).Once()

		listed, err := svc.List(ctx, projectID)

		require.NoError(t, err)
		assert.Empty(t, listed)
		mock.AssertExpectationsForObjects(t, mockExecutor, mockAccountRepo)
	})
}
