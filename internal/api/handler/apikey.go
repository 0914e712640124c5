// internal/api/handler/apikey.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"walletgate/internal/api/types"
	"walletgate/internal/domain"
	"walletgate/internal/service"
	"walletgate/internal/util"
)

// APIKeyHandler handles key issuance, listing, and revocation for both
// operator-owned (user) keys and project keys.
type APIKeyHandler struct {
	keys     service.APIKeyService
	projects service.ProjectService
	logger   *slog.Logger
}

// NewAPIKeyHandler creates a new APIKeyHandler.
func NewAPIKeyHandler(keys service.APIKeyService, projects service.ProjectService, logger *slog.Logger) *APIKeyHandler {
	return &APIKeyHandler{keys: keys, projects: projects, logger: logger}
}

// IssueKeyRequest represents the request body for key issuance.
type IssueKeyRequest struct {
	Scope       domain.KeyScope `json:"scope"`
	Description *string         `json:"description,omitempty"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	Quota       *int            `json:"quota,omitempty"`
}

// IssueUserKey handles key issuance for the signed-in operator.
// POST /users/keys
func (h *APIKeyHandler) IssueUserKey(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := OperatorIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}
	h.issue(w, r, domain.TenantUser, operatorID)
}

// ListUserKeys lists the operator's keys.
// GET /users/keys
func (h *APIKeyHandler) ListUserKeys(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := OperatorIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	keys, err := h.keys.ListForTenant(r.Context(), domain.TenantUser, operatorID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, types.NewListResponse(keys))
}

// RevokeUserKey revokes one of the operator's keys.
// DELETE /users/keys/{keyID}
func (h *APIKeyHandler) RevokeUserKey(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := OperatorIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	keyID, err := uuid.Parse(chi.URLParam(r, "keyID"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	if err := h.keys.Revoke(r.Context(), domain.TenantUser, operatorID, keyID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// IssueProjectKey handles key issuance for a project the operator owns.
// POST /projects/{projectID}/keys
func (h *APIKeyHandler) IssueProjectKey(w http.ResponseWriter, r *http.Request) {
	project, ok := h.resolveProject(w, r)
	if !ok {
		return
	}
	h.issue(w, r, domain.TenantProject, project)
}

// ListProjectKeys lists a project's keys.
// GET /projects/{projectID}/keys
func (h *APIKeyHandler) ListProjectKeys(w http.ResponseWriter, r *http.Request) {
	project, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	keys, err := h.keys.ListForTenant(r.Context(), domain.TenantProject, project)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, types.NewListResponse(keys))
}

// RevokeProjectKey revokes a project key.
// DELETE /projects/{projectID}/keys/{keyID}
func (h *APIKeyHandler) RevokeProjectKey(w http.ResponseWriter, r *http.Request) {
	project, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	keyID, err := uuid.Parse(chi.URLParam(r, "keyID"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	if err := h.keys.Revoke(r.Context(), domain.TenantProject, project, keyID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// issue is the shared issuance path for both tenant kinds.
func (h *APIKeyHandler) issue(w http.ResponseWriter, r *http.Request, tenantType domain.TenantType, tenantID uuid.UUID) {
	var req IssueKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	issued, err := h.keys.Issue(r.Context(), tenantType, tenantID, service.IssueKeyInput{
		Scope:       req.Scope,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
		Quota:       req.Quota,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, issued)
}

// resolveProject parses the projectID route param and checks that the
// signed-in operator owns the project.
func (h *APIKeyHandler) resolveProject(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
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
