// internal/service/wallet_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"walletgate/internal/domain"
	"walletgate/internal/ledger"
	"walletgate/internal/provider"
	"walletgate/internal/repository"
	"walletgate/internal/util"
)

// CreateWalletInput describes a wallet creation request.
type CreateWalletInput struct {
	Currency  string
	AccountID *uuid.UUID
}

// TransferInput describes a two-wallet transfer request.
type TransferInput struct {
	FromWalletID uuid.UUID
	ToWalletID   uuid.UUID
	Amount       decimal.Decimal
	Currency     string
	Reference    string
	Metadata     map[string]any
}

// MoneyMovementInput describes a credit or debit request. Provider is empty
// for ledger-only movements.
type MoneyMovementInput struct {
	WalletID        uuid.UUID
	Amount          decimal.Decimal
	Currency        string
	Reference       string
	Provider        domain.ProviderType
	ProviderPayload provider.Payload
	Metadata        map[string]any
}

// MoneyMovementResult combines the provider settlement result, when a
// provider was involved, with the ledger posting result.
type MoneyMovementResult struct {
	Provider json.RawMessage `json:"provider,omitempty"`
	Ledger   json.RawMessage `json:"ledger"`
}

// WalletWithBalance pairs a wallet record with its ledger balance payload.
type WalletWithBalance struct {
	Wallet  *domain.Wallet  `json:"wallet"`
	Balance json.RawMessage `json:"balance"`
}

// WalletService is the top-level coordinator for wallet operations: it
// authenticates the presented project API key, resolves provider credentials,
// dispatches provider calls, and composes money-moving operations with the
// external ledger. Request flow is strictly linear; any step's failure ends
// the request.
type WalletService interface {
	CreateWallet(ctx context.Context, presentedKey string, input CreateWalletInput) (*domain.Wallet, error)
	GetWallet(ctx context.Context, presentedKey string, walletID uuid.UUID) (*WalletWithBalance, error)
	ListWallets(ctx context.Context, presentedKey string) ([]domain.Wallet, error)
	Transfer(ctx context.Context, presentedKey string, input TransferInput) (json.RawMessage, error)
	Credit(ctx context.Context, presentedKey string, input MoneyMovementInput) (*MoneyMovementResult, error)
	Debit(ctx context.Context, presentedKey string, input MoneyMovementInput) (*MoneyMovementResult, error)
}

// walletService implements the WalletService interface.
type walletService struct {
	dbExecutor      repository.DBExecutor
	keys            APIKeyService
	providerConfigs ProviderConfigService
	registry        *provider.Registry
	ledger          ledger.Client
	walletRepo      repository.WalletRepository
	accountRepo     repository.AccountRepository
}

// NewWalletService creates a new instance of WalletService.
func NewWalletService(
	dbExecutor repository.DBExecutor,
	keys APIKeyService,
	providerConfigs ProviderConfigService,
	registry *provider.Registry,
	ledgerClient ledger.Client,
	walletRepo repository.WalletRepository,
	accountRepo repository.AccountRepository,
) WalletService {
	return &walletService{
		dbExecutor:      dbExecutor,
		keys:            keys,
		providerConfigs: providerConfigs,
		registry:        registry,
		ledger:          ledgerClient,
		walletRepo:      walletRepo,
		accountRepo:     accountRepo,
	}
}

// authenticateProject verifies the presented key and requires it to be
// project-scoped, returning the owning project id.
func (s *walletService) authenticateProject(ctx context.Context, presentedKey string) (uuid.UUID, error) {
	key, err := s.keys.Verify(ctx, presentedKey)
	if err != nil {
		return uuid.Nil, err
	}
	if key.TenantType != domain.TenantProject {
		return uuid.Nil, util.ErrUnauthorized
	}
	return key.TenantID, nil
}

// CreateWallet creates a wallet under the key's project. When an accountId is
// supplied it must resolve to a sub-account of that same project.
func (s *walletService) CreateWallet(ctx context.Context, presentedKey string, input CreateWalletInput) (*domain.Wallet, error) {
	projectID, err := s.authenticateProject(ctx, presentedKey)
	if err != nil {
		return nil, err
	}

	if input.Currency == "" {
		return nil, util.ErrInvalidInput
	}

	if input.AccountID != nil {
		if _, err := s.accountRepo.GetAccountByIDAndProject(ctx, s.dbExecutor, *input.AccountID, projectID); err != nil {
			if util.IsError(err, util.ErrNotFound) {
				return nil, util.ErrNotFound
			}
			return nil, fmt.Errorf("create wallet: failed to resolve account: %w", err)
		}
	}

	wallet := domain.NewWallet(projectID, input.AccountID, input.Currency)
	if err := s.walletRepo.CreateWallet(ctx, s.dbExecutor, wallet); err != nil {
		if util.IsError(err, util.ErrConflict) {
			return nil, util.ErrConflict
		}
		return nil, fmt.Errorf("create wallet: %w", err)
	}
	return wallet, nil
}

// GetWallet loads a wallet scoped to the key's project and fetches its
// balance from the ledger.
func (s *walletService) GetWallet(ctx context.Context, presentedKey string, walletID uuid.UUID) (*WalletWithBalance, error) {
	projectID, err := s.authenticateProject(ctx, presentedKey)
	if err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetWalletByIDAndProject(ctx, s.dbExecutor, walletID, projectID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get wallet %s: %w", walletID, err)
	}

	balance, err := s.ledger.GetWalletBalance(ctx, projectID, wallet.ID)
	if err != nil {
		return nil, err
	}

	return &WalletWithBalance{Wallet: wallet, Balance: balance}, nil
}

// ListWallets returns all wallets owned by the key's project.
func (s *walletService) ListWallets(ctx context.Context, presentedKey string) ([]domain.Wallet, error) {
	projectID, err := s.authenticateProject(ctx, presentedKey)
	if err != nil {
		return nil, err
	}

	wallets, err := s.walletRepo.ListWalletsByProject(ctx, s.dbExecutor, projectID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return wallets, nil
}

// Transfer moves funds between two wallets of the same project by submitting
// one two-entry ledger transaction. Currency is checked against both stored
// wallet records before anything is posted; the ledger alone mutates balances.
func (s *walletService) Transfer(ctx context.Context, presentedKey string, input TransferInput) (json.RawMessage, error) {
	projectID, err := s.authenticateProject(ctx, presentedKey)
	if err != nil {
		return nil, err
	}

	if err := validateMovement(input.Amount, input.Reference); err != nil {
		return nil, err
	}
	if input.FromWalletID == input.ToWalletID {
		return nil, fmt.Errorf("%w: cannot transfer to the same wallet", util.ErrInvalidInput)
	}

	currency := strings.ToUpper(input.Currency)

	fromWallet, err := s.walletRepo.GetWalletByIDAndProject(ctx, s.dbExecutor, input.FromWalletID, projectID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("transfer: failed to get source wallet %s: %w", input.FromWalletID, err)
	}
	toWallet, err := s.walletRepo.GetWalletByIDAndProject(ctx, s.dbExecutor, input.ToWalletID, projectID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("transfer: failed to get destination wallet %s: %w", input.ToWalletID, err)
	}

	if fromWallet.Currency != currency || toWallet.Currency != currency {
		return nil, util.ErrCurrencyMismatch
	}

	return s.ledger.ExecuteTransaction(ctx, domain.LedgerTransactionRequest{
		ProjectID: projectID,
		Reference: input.Reference,
		Type:      domain.LedgerTransfer,
		Metadata:  input.Metadata,
		Entries: []domain.LedgerEntry{
			{WalletID: fromWallet.ID, Amount: input.Amount, EntryType: domain.EntryDebit},
			{WalletID: toWallet.ID, Amount: input.Amount, EntryType: domain.EntryCredit},
		},
	})
}

// Credit adds funds to a wallet. Without a provider it is a single-entry
// ledger posting; with one, the provider's deposit call settles first and the
// ledger posting follows only if the provider accepted.
func (s *walletService) Credit(ctx context.Context, presentedKey string, input MoneyMovementInput) (*MoneyMovementResult, error) {
	return s.move(ctx, presentedKey, input, domain.LedgerCredit, domain.EntryCredit, provider.OpDeposit)
}

// Debit removes funds from a wallet, mirroring Credit with the provider's
// withdraw capability and a debit-type ledger entry.
func (s *walletService) Debit(ctx context.Context, presentedKey string, input MoneyMovementInput) (*MoneyMovementResult, error) {
	return s.move(ctx, presentedKey, input, domain.LedgerDebit, domain.EntryDebit, provider.OpWithdraw)
}

// move is the shared credit/debit flow. The two-phase provider path is not
// transactional: a ledger failure after provider settlement is surfaced as-is
// and reconciled out of band using the same reference.
func (s *walletService) move(ctx context.Context, presentedKey string, input MoneyMovementInput, txType domain.LedgerTransactionType, entryType domain.LedgerEntryType, op provider.Operation) (*MoneyMovementResult, error) {
	projectID, err := s.authenticateProject(ctx, presentedKey)
	if err != nil {
		return nil, err
	}

	if err := validateMovement(input.Amount, input.Reference); err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetWalletByIDAndProject(ctx, s.dbExecutor, input.WalletID, projectID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("%s: failed to get wallet %s: %w", txType, input.WalletID, err)
	}

	if wallet.Currency != strings.ToUpper(input.Currency) {
		return nil, util.ErrCurrencyMismatch
	}

	ledgerReq := domain.LedgerTransactionRequest{
		ProjectID: projectID,
		Reference: input.Reference,
		Type:      txType,
		Metadata:  input.Metadata,
		Entries: []domain.LedgerEntry{
			{WalletID: wallet.ID, Amount: input.Amount, EntryType: entryType},
		},
	}

	if input.Provider == "" {
		result, err := s.ledger.ExecuteTransaction(ctx, ledgerReq)
		if err != nil {
			return nil, err
		}
		return &MoneyMovementResult{Ledger: result}, nil
	}

	credential, err := s.providerConfigs.ResolveActiveCredential(ctx, domain.TenantProject, projectID, input.Provider)
	if err != nil {
		return nil, err
	}

	payload := provider.Payload{}
	for k, v := range input.ProviderPayload {
		payload[k] = v
	}
	payload["ledger"] = ledgerReq

	providerResult, err := s.registry.Dispatch(ctx, input.Provider, op, credential, payload)
	if err != nil {
		// Provider failure short-circuits: nothing is posted to the ledger.
		return nil, err
	}

	ledgerResult, err := s.ledger.ExecuteTransaction(ctx, ledgerReq)
	if err != nil {
		return nil, err
	}

	return &MoneyMovementResult{Provider: providerResult, Ledger: ledgerResult}, nil
}

// validateMovement enforces the shared money-movement preconditions.
func validateMovement(amount decimal.Decimal, reference string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidInput
	}
	if !domain.ValidReference(reference) {
		return fmt.Errorf("%w: reference must be %d-%d characters", util.ErrInvalidInput, domain.MinReferenceLength, domain.MaxReferenceLength)
	}
	return nil
}
