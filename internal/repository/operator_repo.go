// internal/repository/operator_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"walletgate/internal/domain"
)

// OperatorRepository defines the interface for operator data operations.
type OperatorRepository interface {
	// CreateOperator adds a new operator.
	CreateOperator(ctx context.Context, q DBExecutor, op *domain.Operator) error
	// GetOperatorByID retrieves an operator by ID.
	GetOperatorByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Operator, error)
	// GetOperatorByEmail retrieves an operator by email.
	GetOperatorByEmail(ctx context.Context, q DBExecutor, email string) (*domain.Operator, error)
}

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	// CreateProject adds a new project.
	CreateProject(ctx context.Context, q DBExecutor, project *domain.Project) error
	// GetProjectByIDAndOperator retrieves a project scoped to its owning operator.
	GetProjectByIDAndOperator(ctx context.Context, q DBExecutor, id, operatorID uuid.UUID) (*domain.Project, error)
	// ListProjectsByOperator retrieves all projects owned by an operator.
	ListProjectsByOperator(ctx context.Context, q DBExecutor, operatorID uuid.UUID) ([]domain.Project, error)
}
