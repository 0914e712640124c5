// internal/domain/operator.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a platform operator who signs in with email and password and
// administers projects, keys, and provider configuration.
type Operator struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// NewOperator creates a new Operator instance.
func NewOperator(email, name, passwordHash string) *Operator {
	now := time.Now().UTC()
	return &Operator{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Project is a tenant owned by an operator. Project-scoped API keys and
// provider configs hang off it.
type Project struct {
	ID         uuid.UUID `db:"id" json:"id"`
	OperatorID uuid.UUID `db:"operator_id" json:"operator_id"`
	Name       string    `db:"name" json:"name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// NewProject creates a new Project instance.
func NewProject(operatorID uuid.UUID, name string) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:         uuid.New(),
		OperatorID: operatorID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
