// internal/repository/postgres/wallet_pg.go
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

// WalletRepository implements repository.WalletRepository for PostgreSQL.
type WalletRepository struct{}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(db *sqlx.DB) repository.WalletRepository {
	return &WalletRepository{}
}

// CreateWallet inserts a new wallet using the provided DBExecutor. The unique
// index on (project_id, account_id, currency) surfaces as util.ErrConflict.
func (r *WalletRepository) CreateWallet(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	query := `INSERT INTO wallets (id, project_id, account_id, currency, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query,
		wallet.ID, wallet.ProjectID, wallet.AccountID, wallet.Currency, wallet.CreatedAt, wallet.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrConflict
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetWalletByIDAndProject retrieves a wallet scoped to its owning project.
func (r *WalletRepository) GetWalletByIDAndProject(ctx context.Context, q repository.DBExecutor, id, projectID uuid.UUID) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT id, project_id, account_id, currency, created_at, updated_at
              FROM wallets WHERE id = $1 AND project_id = $2`
	err := q.GetContext(ctx, &wallet, query, id, projectID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet %s for project %s: %w", id, projectID, err)
	}
	return &wallet, nil
}

// ListWalletsByProject retrieves all wallets owned by a project.
func (r *WalletRepository) ListWalletsByProject(ctx context.Context, q repository.DBExecutor, projectID uuid.UUID) ([]domain.Wallet, error) {
	wallets := []domain.Wallet{}
	query := `SELECT id, project_id, account_id, currency, created_at, updated_at
              FROM wallets WHERE project_id = $1 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &wallets, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list wallets for project %s: %w", projectID, err)
	}
	return wallets, nil
}

// AccountRepository implements repository.AccountRepository for PostgreSQL.
type AccountRepository struct{}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sqlx.DB) repository.AccountRepository {
	return &AccountRepository{}
}

// CreateAccount inserts a new project sub-account using the provided
// DBExecutor. The unique index on (project_id, name) surfaces as util.ErrConflict.
func (r *AccountRepository) CreateAccount(ctx context.Context, q repository.DBExecutor, account *domain.ProjectAccount) error {
	query := `INSERT INTO project_accounts (id, project_id, name, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := q.ExecContext(ctx, query,
		account.ID, account.ProjectID, account.Name, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrConflict
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccountByIDAndProject retrieves a project sub-account scoped to its owning project.
func (r *AccountRepository) GetAccountByIDAndProject(ctx context.Context, q repository.DBExecutor, id, projectID uuid.UUID) (*domain.ProjectAccount, error) {
	var account domain.ProjectAccount
	query := `SELECT id, project_id, name, created_at, updated_at
              FROM project_accounts WHERE id = $1 AND project_id = $2`
	err := q.GetContext(ctx, &account, query, id, projectID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account %s for project %s: %w", id, projectID, err)
	}
	return &account, nil
}

// ListAccountsByProject retrieves all sub-accounts owned by a project.
func (r *AccountRepository) ListAccountsByProject(ctx context.Context, q repository.DBExecutor, projectID uuid.UUID) ([]domain.ProjectAccount, error) {
	accounts := []domain.ProjectAccount{}
	query := `SELECT id, project_id, name, created_at, updated_at
              FROM project_accounts WHERE project_id = $1 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &accounts, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list accounts for project %s: %w", projectID, err)
	}
	return accounts, nil
}
