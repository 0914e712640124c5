// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Common application-specific errors.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource already exists")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidInput        = errors.New("invalid input provided")
	ErrCurrencyMismatch    = errors.New("wallet currency mismatch")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrProviderFailure     = errors.New("provider call failed")
	ErrLedgerFailure       = errors.New("ledger call failed")
)

// IsError reports whether err matches the given sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// ProviderError carries provider-specific failure detail. It unwraps to
// ErrProviderFailure so callers can match on the sentinel while the upstream
// status and body remain available for operability.
type ProviderError struct {
	Provider   string
	StatusCode int
	Detail     string
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s call failed with status %d: %s", e.Provider, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("provider %s call failed: %s", e.Provider, e.Detail)
}

func (e *ProviderError) Unwrap() error {
	return ErrProviderFailure
}

// LedgerError carries ledger-service failure detail and unwraps to
// ErrLedgerFailure.
type LedgerError struct {
	StatusCode int
	Detail     string
}

func (e *LedgerError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("ledger call failed with status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("ledger call failed: %s", e.Detail)
}

func (e *LedgerError) Unwrap() error {
	return ErrLedgerFailure
}
