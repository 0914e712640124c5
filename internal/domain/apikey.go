// internal/domain/apikey.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TenantType identifies which kind of entity owns a record.
type TenantType string

const (
	TenantUser    TenantType = "user"
	TenantProject TenantType = "project"
)

// KeyScope is an access-tier label on an API key. User keys carry test/prod,
// project keys carry test/live.
type KeyScope string

const (
	ScopeTest KeyScope = "test"
	ScopeProd KeyScope = "prod"
	ScopeLive KeyScope = "live"
)

// ValidScopeFor reports whether the scope is allowed for the tenant kind.
func ValidScopeFor(tenantType TenantType, scope KeyScope) bool {
	switch tenantType {
	case TenantUser:
		return scope == ScopeTest || scope == ScopeProd
	case TenantProject:
		return scope == ScopeTest || scope == ScopeLive
	}
	return false
}

// APIKey is a stored API-key record. At most one record exists per
// (tenant, scope). The hashed secret is never serialized.
type APIKey struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantType   TenantType `db:"tenant_type" json:"tenant_type"`
	TenantID     uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	Scope        KeyScope   `db:"scope" json:"scope"`
	Description  *string    `db:"description" json:"description,omitempty"`
	HashedSecret string     `db:"hashed_secret" json:"-"`
	Quota        int        `db:"quota" json:"quota"`
	Used         int        `db:"used" json:"used"`
	ExpiresAt    *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// DefaultKeyQuota is applied when issuance does not specify a quota.
const DefaultKeyQuota = 1000

// NewAPIKey creates a new APIKey record.
func NewAPIKey(tenantType TenantType, tenantID uuid.UUID, scope KeyScope, hashedSecret string, description *string, expiresAt *time.Time, quota *int) *APIKey {
	now := time.Now().UTC()
	q := DefaultKeyQuota
	if quota != nil {
		q = *quota
	}
	return &APIKey{
		ID:           uuid.New(),
		TenantType:   tenantType,
		TenantID:     tenantID,
		Scope:        scope,
		Description:  description,
		HashedSecret: hashedSecret,
		Quota:        q,
		ExpiresAt:    expiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Expired reports whether the key's expiry is set and in the past.
func (k *APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && now.After(*k.ExpiresAt)
}
