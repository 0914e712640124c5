// internal/domain/wallet.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Wallet belongs to a project and optionally to one of its sub-accounts.
// At most one wallet exists per (project, account, currency). Balances are
// never stored locally; the external ledger is the source of truth.
type Wallet struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	ProjectID uuid.UUID  `db:"project_id" json:"project_id"`
	AccountID *uuid.UUID `db:"account_id" json:"account_id,omitempty"`
	Currency  string     `db:"currency" json:"currency"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// NewWallet creates a new Wallet instance. Currency is stored upper-cased.
func NewWallet(projectID uuid.UUID, accountID *uuid.UUID, currency string) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:        uuid.New(),
		ProjectID: projectID,
		AccountID: accountID,
		Currency:  strings.ToUpper(currency),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ProjectAccount is a sub-account within a project that wallets may attach to.
type ProjectAccount struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ProjectID uuid.UUID `db:"project_id" json:"project_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewProjectAccount creates a new ProjectAccount instance.
func NewProjectAccount(projectID uuid.UUID, name string) *ProjectAccount {
	now := time.Now().UTC()
	return &ProjectAccount{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
