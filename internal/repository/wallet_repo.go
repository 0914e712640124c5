// internal/repository/wallet_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"walletgate/internal/domain"
)

// WalletRepository defines the interface for wallet data operations.
type WalletRepository interface {
	// CreateWallet adds a new wallet. The (project, account, currency)
	// uniqueness invariant is enforced by the store.
	CreateWallet(ctx context.Context, q DBExecutor, wallet *domain.Wallet) error
	// GetWalletByIDAndProject retrieves a wallet scoped to its owning project.
	GetWalletByIDAndProject(ctx context.Context, q DBExecutor, id, projectID uuid.UUID) (*domain.Wallet, error)
	// ListWalletsByProject retrieves all wallets owned by a project.
	ListWalletsByProject(ctx context.Context, q DBExecutor, projectID uuid.UUID) ([]domain.Wallet, error)
}

// AccountRepository defines the interface for project sub-account data operations.
type AccountRepository interface {
	// CreateAccount adds a new sub-account. Account names are unique within
	// a project; a duplicate fails with ErrConflict.
	CreateAccount(ctx context.Context, q DBExecutor, account *domain.ProjectAccount) error
	// GetAccountByIDAndProject retrieves an account scoped to its owning project.
	GetAccountByIDAndProject(ctx context.Context, q DBExecutor, id, projectID uuid.UUID) (*domain.ProjectAccount, error)
	// ListAccountsByProject retrieves all sub-accounts owned by a project.
	ListAccountsByProject(ctx context.Context, q DBExecutor, projectID uuid.UUID) ([]domain.ProjectAccount, error)
}
