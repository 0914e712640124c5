// internal/api/handler/account.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"walletgate/internal/api/types"
	"walletgate/internal/service"
	"walletgate/internal/util"
)

// AccountHandler handles operator-facing sub-account administration.
type AccountHandler struct {
	accounts service.AccountService
	projects service.ProjectService
	logger   *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts service.AccountService, projects service.ProjectService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, projects: projects, logger: logger}
}

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name string `json:"name"`
}

// Create handles the create account request.
// POST /projects/{projectID}/accounts
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	account, err := h.accounts.Create(r.Context(), projectID, req.Name)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, account)
}

// List handles the list accounts request.
// GET /projects/{projectID}/accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	accounts, err := h.accounts.List(r.Context(), projectID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, types.NewListResponse(accounts))
}

// resolveProject parses the project id from the URL and checks that the
// session operator owns it. A project owned by someone else surfaces as
// ErrNotFound.
func (h *AccountHandler) resolveProject(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	operatorID, ok := OperatorIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return uuid.Nil, false
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return uuid.Nil, false
	}

	if _, err := h.projects.Get(r.Context(), operatorID, projectID); err != nil {
		respondWithError(w, h.logger, err)
		return uuid.Nil, false
	}
	return projectID, true
}
