// internal/domain/provider.go
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an external payment provider.
type ProviderType string

const (
	ProviderPaystack    ProviderType = "paystack"
	ProviderFlutterwave ProviderType = "flutterwave"
	ProviderPaga        ProviderType = "paga"
	ProviderFingra      ProviderType = "fingra"
)

// ValidProviderType reports whether the value is a known provider type.
func ValidProviderType(t ProviderType) bool {
	switch t {
	case ProviderPaystack, ProviderFlutterwave, ProviderPaga, ProviderFingra:
		return true
	}
	return false
}

// ConfigBag is an opaque provider credential bag stored as JSONB.
type ConfigBag map[string]any

// Value implements driver.Valuer for JSONB storage.
func (c ConfigBag) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB storage.
func (c *ConfigBag) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = ConfigBag{}
		return nil
	}
	return fmt.Errorf("unsupported config scan type %T", src)
}

// APIKey returns the required apiKey credential field, if present as a string.
func (c ConfigBag) APIKey() (string, bool) {
	v, ok := c["apiKey"].(string)
	return v, ok && v != ""
}

// ProviderConfig is a per-tenant provider credential record, unique per
// (tenant, provider type). Inactive configs are invisible to dispatch.
type ProviderConfig struct {
	ID         uuid.UUID    `db:"id" json:"id"`
	TenantType TenantType   `db:"tenant_type" json:"tenant_type"`
	TenantID   uuid.UUID    `db:"tenant_id" json:"tenant_id"`
	Type       ProviderType `db:"provider_type" json:"type"`
	Config     ConfigBag    `db:"config" json:"config"`
	IsActive   bool         `db:"is_active" json:"is_active"`
	CreatedAt  time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at" json:"updated_at"`
}

// NewProviderConfig creates a new ProviderConfig record.
func NewProviderConfig(tenantType TenantType, tenantID uuid.UUID, providerType ProviderType, config ConfigBag, isActive bool) *ProviderConfig {
	now := time.Now().UTC()
	return &ProviderConfig{
		ID:         uuid.New(),
		TenantType: tenantType,
		TenantID:   tenantID,
		Type:       providerType,
		Config:     config,
		IsActive:   isActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
