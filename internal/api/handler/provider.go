// internal/api/handler/provider.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"walletgate/internal/api/types"
	"walletgate/internal/domain"
	"walletgate/internal/provider"
	"walletgate/internal/service"
	"walletgate/internal/util"
)

// configDisplayFields are the provider-config keys returned unmasked. Every
// other value is masked at the response boundary; stored records are never
// mutated.
var configDisplayFields = map[string]bool{
	"environment": true,
	"mode":        true,
	"businessId":  true,
}

// ProviderHandler handles per-project provider configuration and the
// platform-wide provider directory.
type ProviderHandler struct {
	configs  service.ProviderConfigService
	projects service.ProjectService
	registry *provider.Registry
	logger   *slog.Logger
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(configs service.ProviderConfigService, projects service.ProjectService, registry *provider.Registry, logger *slog.Logger) *ProviderHandler {
	return &ProviderHandler{configs: configs, projects: projects, registry: registry, logger: logger}
}

// ConfigureProviderRequest represents the request body for provider configuration.
type ConfigureProviderRequest struct {
	Type     domain.ProviderType `json:"type"`
	Config   domain.ConfigBag    `json:"config"`
	IsActive *bool               `json:"is_active,omitempty"`
}

// Configure upserts a project's provider credential.
// POST /projects/{projectID}/providers
func (h *ProviderHandler) Configure(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	var req ConfigureProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	cfg, err := h.configs.Configure(r.Context(), domain.TenantProject, projectID, req.Type, req.Config, req.IsActive)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, maskProviderConfig(cfg))
}

// List returns a project's provider configs with secrets masked.
// GET /projects/{projectID}/providers
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	configs, err := h.configs.ListForTenant(r.Context(), domain.TenantProject, projectID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	masked := make([]map[string]interface{}, 0, len(configs))
	for i := range configs {
		masked = append(masked, maskProviderConfig(&configs[i]))
	}
	respondWithJSON(w, h.logger, http.StatusOK, types.NewListResponse(masked))
}

// Directory returns the toggle-enabled provider types.
// GET /providers
func (h *ProviderHandler) Directory(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, h.logger, http.StatusOK, types.NewListResponse(h.registry.AvailableProviders()))
}

// AddProviderRequest represents the request body for enabling a provider type.
type AddProviderRequest struct {
	Type domain.ProviderType `json:"type"`
}

// AddProvider enables a provider type in the directory.
// POST /providers
func (h *ProviderHandler) AddProvider(w http.ResponseWriter, r *http.Request) {
	var req AddProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if !domain.ValidProviderType(req.Type) {
		respondWithError(w, h.logger, util.ErrUnsupportedProvider)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, h.registry.AddProvider(req.Type))
}

// RemoveProvider disables a provider type in the directory.
// DELETE /providers/{type}
func (h *ProviderHandler) RemoveProvider(w http.ResponseWriter, r *http.Request) {
	providerType := domain.ProviderType(chi.URLParam(r, "type"))
	if !domain.ValidProviderType(providerType) {
		respondWithError(w, h.logger, util.ErrUnsupportedProvider)
		return
	}

	h.registry.RemoveProvider(providerType)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProviderHandler) resolveProject(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
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

// maskProviderConfig builds the response projection of a provider config,
// masking every config value outside the display allow-list.
func maskProviderConfig(cfg *domain.ProviderConfig) map[string]interface{} {
	maskedConfig := make(map[string]interface{}, len(cfg.Config))
	for k, v := range cfg.Config {
		if configDisplayFields[k] {
			maskedConfig[k] = v
			continue
		}
		maskedConfig[k] = maskValue(v)
	}

	return map[string]interface{}{
		"id":         cfg.ID,
		"type":       cfg.Type,
		"is_active":  cfg.IsActive,
		"config":     maskedConfig,
		"created_at": cfg.CreatedAt,
		"updated_at": cfg.UpdatedAt,
	}
}

// maskValue hides a secret value, keeping the last four characters of long
// strings so operators can tell credentials apart.
func maskValue(v interface{}) string {
	s, ok := v.(string)
	if !ok || len(s) <= 8 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
