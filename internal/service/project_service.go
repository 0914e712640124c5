// internal/service/project_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"walletgate/internal/domain"
	"walletgate/internal/repository"
	"walletgate/internal/util"
)

// ProjectService owns operator-facing project administration.
type ProjectService interface {
	Create(ctx context.Context, operatorID uuid.UUID, name string) (*domain.Project, error)
	List(ctx context.Context, operatorID uuid.UUID) ([]domain.Project, error)
	Get(ctx context.Context, operatorID, projectID uuid.UUID) (*domain.Project, error)
}

// projectService implements the ProjectService interface.
type projectService struct {
	dbExecutor  repository.DBExecutor
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new instance of ProjectService.
func NewProjectService(dbExecutor repository.DBExecutor, projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{
		dbExecutor:  dbExecutor,
		projectRepo: projectRepo,
	}
}

// Create adds a project owned by the operator.
func (s *projectService) Create(ctx context.Context, operatorID uuid.UUID, name string) (*domain.Project, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}

	project := domain.NewProject(operatorID, name)
	if err := s.projectRepo.CreateProject(ctx, s.dbExecutor, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// List returns the operator's projects.
func (s *projectService) List(ctx context.Context, operatorID uuid.UUID) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjectsByOperator(ctx, s.dbExecutor, operatorID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Get returns one project, scoped to the operator. A project owned by someone
// else surfaces as ErrNotFound.
func (s *projectService) Get(ctx context.Context, operatorID, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetProjectByIDAndOperator(ctx, s.dbExecutor, projectID, operatorID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get project %s: %w", projectID, err)
	}
	return project, nil
}
