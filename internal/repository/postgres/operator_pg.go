// internal/repository/postgres/operator_pg.go
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

// OperatorRepository implements repository.OperatorRepository for PostgreSQL.
type OperatorRepository struct{}

// NewOperatorRepository creates a new OperatorRepository.
func NewOperatorRepository(db *sqlx.DB) repository.OperatorRepository {
	return &OperatorRepository{}
}

// CreateOperator inserts a new operator using the provided DBExecutor.
func (r *OperatorRepository) CreateOperator(ctx context.Context, q repository.DBExecutor, op *domain.Operator) error {
	query := `INSERT INTO operators (id, email, name, password_hash, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query, op.ID, op.Email, op.Name, op.PasswordHash, op.CreatedAt, op.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrConflict
		}
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}

// GetOperatorByID retrieves an operator by ID.
func (r *OperatorRepository) GetOperatorByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Operator, error) {
	var op domain.Operator
	query := `SELECT id, email, name, password_hash, created_at, updated_at FROM operators WHERE id = $1`
	err := q.GetContext(ctx, &op, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get operator by ID %s: %w", id, err)
	}
	return &op, nil
}

// GetOperatorByEmail retrieves an operator by email.
func (r *OperatorRepository) GetOperatorByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.Operator, error) {
	var op domain.Operator
	query := `SELECT id, email, name, password_hash, created_at, updated_at FROM operators WHERE email = $1`
	err := q.GetContext(ctx, &op, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get operator by email: %w", err)
	}
	return &op, nil
}

// ProjectRepository implements repository.ProjectRepository for PostgreSQL.
type ProjectRepository struct{}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *sqlx.DB) repository.ProjectRepository {
	return &ProjectRepository{}
}

// CreateProject inserts a new project using the provided DBExecutor.
func (r *ProjectRepository) CreateProject(ctx context.Context, q repository.DBExecutor, project *domain.Project) error {
	query := `INSERT INTO projects (id, operator_id, name, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := q.ExecContext(ctx, query, project.ID, project.OperatorID, project.Name, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProjectByIDAndOperator retrieves a project scoped to its owning operator.
func (r *ProjectRepository) GetProjectByIDAndOperator(ctx context.Context, q repository.DBExecutor, id, operatorID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	query := `SELECT id, operator_id, name, created_at, updated_at FROM projects WHERE id = $1 AND operator_id = $2`
	err := q.GetContext(ctx, &project, query, id, operatorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project %s for operator %s: %w", id, operatorID, err)
	}
	return &project, nil
}

// ListProjectsByOperator retrieves all projects owned by an operator.
func (r *ProjectRepository) ListProjectsByOperator(ctx context.Context, q repository.DBExecutor, operatorID uuid.UUID) ([]domain.Project, error) {
	projects := []domain.Project{}
	query := `SELECT id, operator_id, name, created_at, updated_at FROM projects WHERE operator_id = $1 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &projects, query, operatorID); err != nil {
		return nil, fmt.Errorf("failed to list projects for operator %s: %w", operatorID, err)
	}
	return projects, nil
}
