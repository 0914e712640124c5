// internal/domain/ledger.go
package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryType marks an entry as a debit or a credit.
type LedgerEntryType string

const (
	EntryDebit  LedgerEntryType = "debit"
	EntryCredit LedgerEntryType = "credit"
)

// LedgerTransactionType classifies a ledger transaction.
type LedgerTransactionType string

const (
	LedgerTransfer LedgerTransactionType = "transfer"
	LedgerCredit   LedgerTransactionType = "credit"
	LedgerDebit    LedgerTransactionType = "debit"
	LedgerRefund   LedgerTransactionType = "refund"
)

// LedgerEntry is one leg of a ledger transaction. Amounts travel as decimal
// strings on the wire.
type LedgerEntry struct {
	WalletID  uuid.UUID       `json:"walletId"`
	Amount    decimal.Decimal `json:"amount"`
	EntryType LedgerEntryType `json:"entryType"`
}

// LedgerTransactionRequest is submitted to the external ledger service.
// Reference is the caller-supplied idempotency token, passed through opaquely.
type LedgerTransactionRequest struct {
	ProjectID uuid.UUID             `json:"projectId"`
	Reference string                `json:"reference"`
	Type      LedgerTransactionType `json:"type"`
	Metadata  map[string]any        `json:"metadata,omitempty"`
	Entries   []LedgerEntry         `json:"entries"`
}

// Reference length bounds, enforced before submission.
const (
	MinReferenceLength = 5
	MaxReferenceLength = 120
)

// ValidReference reports whether a caller-supplied reference is within bounds.
func ValidReference(ref string) bool {
	return len(ref) >= MinReferenceLength && len(ref) <= MaxReferenceLength
}
