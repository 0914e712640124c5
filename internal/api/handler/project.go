// internal/api/handler/project.go
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

// ProjectHandler handles operator-facing project administration.
type ProjectHandler struct {
	service service.ProjectService
	logger  *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{service: svc, logger: logger}
}

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// Create handles the create project request.
// POST /projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := OperatorIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	project, err := h.service.Create(r.Context(), operatorID, req.Name)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, project)
}

// List handles the list projects request.
// GET /projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := OperatorIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	projects, err := h.service.List(r.Context(), operatorID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, types.NewListResponse(projects))
}

// Get handles the get project request.
// GET /projects/{projectID}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := OperatorIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	project, err := h.service.Get(r.Context(), operatorID, projectID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, project)
}
