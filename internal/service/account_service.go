// internal/service/account_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"walletgate/internal/domain"
	"walletgate/internal/repository"
	"walletgate/internal/util"
)

// AccountService owns operator-facing sub-account administration. Wallets
// created with an account id attach to accounts made here.
type AccountService interface {
	Create(ctx context.Context, projectID uuid.UUID, name string) (*domain.ProjectAccount, error)
	List(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectAccount, error)
}

// accountService implements the AccountService interface.
type accountService struct {
	dbExecutor  repository.DBExecutor
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(dbExecutor repository.DBExecutor, accountRepo repository.AccountRepository) AccountService {
	return &accountService{
		dbExecutor:  dbExecutor,
		accountRepo: accountRepo,
	}
}

// Create adds a sub-account to the project. A duplicate name within the
// project fails with ErrConflict.
func (s *accountService) Create(ctx context.Context, projectID uuid.UUID, name string) (*domain.ProjectAccount, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}

	account := domain.NewProjectAccount(projectID, name)
	if err := s.accountRepo.CreateAccount(ctx, s.dbExecutor, account); err != nil {
		if util.IsError(err, util.ErrConflict) {
			return nil, util.ErrConflict
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// List returns the project's sub-accounts.
func (s *accountService) List(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectAccount, error) {
	accounts, err := s.accountRepo.ListAccountsByProject(ctx, s.dbExecutor, projectID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}
