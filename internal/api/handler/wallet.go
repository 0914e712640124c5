// internal/api/handler/wallet.go
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"walletgate/internal/api/types"
	"walletgate/internal/domain"
	"walletgate/internal/provider"
	"walletgate/internal/service"
	"walletgate/internal/util"
)

// apiKeyHeader carries the project API key on wallet-operation requests.
const apiKeyHeader = "X-API-Key"

// WalletHandler handles API-key-authenticated wallet operations.
type WalletHandler struct {
	service service.WalletService
	logger  *slog.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(svc service.WalletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{service: svc, logger: logger}
}

// presentedKey extracts the API key header. The orchestrator verifies it; an
// absent header short-circuits here.
func (h *WalletHandler) presentedKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.Header.Get(apiKeyHeader)
	if key == "" {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return "", false
	}
	return key, true
}

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Currency  string     `json:"currency"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`
}

// CreateWallet handles the create wallet request.
// POST /wallets
func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	key, ok := h.presentedKey(w, r)
	if !ok {
		return
	}

	var req CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Currency == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	wallet, err := h.service.CreateWallet(r.Context(), key, service.CreateWalletInput{
		Currency:  req.Currency,
		AccountID: req.AccountID,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, wallet)
}

// GetWallet handles the get wallet request, returning the wallet record and
// its ledger balance.
// GET /wallets/{walletID}
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	key, ok := h.presentedKey(w, r)
	if !ok {
		return
	}

	walletID, err := uuid.Parse(chi.URLParam(r, "walletID"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	result, err := h.service.GetWallet(r.Context(), key, walletID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, result)
}

// ListWallets handles the list wallets request.
// GET /wallets
func (h *WalletHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	key, ok := h.presentedKey(w, r)
	if !ok {
		return
	}

	wallets, err := h.service.ListWallets(r.Context(), key)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, types.NewListResponse(wallets))
}

// TransferRequest represents the request body for transfer.
type TransferRequest struct {
	FromWalletID uuid.UUID       `json:"from_wallet_id"`
	ToWalletID   uuid.UUID       `json:"to_wallet_id"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Reference    string          `json:"reference"`
	Metadata     map[string]any  `json:"metadata,omitempty"`
}

// Transfer handles the transfer request.
// POST /wallets/transfer
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	key, ok := h.presentedKey(w, r)
	if !ok {
		return
	}

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.FromWalletID == uuid.Nil || req.ToWalletID == uuid.Nil || req.Currency == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	result, err := h.service.Transfer(r.Context(), key, service.TransferInput{
		FromWalletID: req.FromWalletID,
		ToWalletID:   req.ToWalletID,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Reference:    req.Reference,
		Metadata:     req.Metadata,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"ledger": result})
}

// MoneyMovementRequest represents the request body for credit and debit.
type MoneyMovementRequest struct {
	WalletID        uuid.UUID           `json:"wallet_id"`
	Amount          decimal.Decimal     `json:"amount"`
	Currency        string              `json:"currency"`
	Reference       string              `json:"reference"`
	Provider        domain.ProviderType `json:"provider,omitempty"`
	ProviderPayload provider.Payload    `json:"provider_payload,omitempty"`
	Metadata        map[string]any      `json:"metadata,omitempty"`
}

// Credit handles the credit request.
// POST /wallets/credit
func (h *WalletHandler) Credit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.service.Credit)
}

// Debit handles the debit request.
// POST /wallets/debit
func (h *WalletHandler) Debit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.service.Debit)
}

func (h *WalletHandler) move(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, key string, input service.MoneyMovementInput) (*service.MoneyMovementResult, error)) {
	key, ok := h.presentedKey(w, r)
	if !ok {
		return
	}

	var req MoneyMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.WalletID == uuid.Nil || req.Currency == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Provider != "" && !domain.ValidProviderType(req.Provider) {
		respondWithError(w, h.logger, util.ErrUnsupportedProvider)
		return
	}

	result, err := op(r.Context(), key, service.MoneyMovementInput{
		WalletID:        req.WalletID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Reference:       req.Reference,
		Provider:        req.Provider,
		ProviderPayload: req.ProviderPayload,
		Metadata:        req.Metadata,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, result)
}
