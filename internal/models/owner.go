package models

import (
	"time"

	"github.com/google/uuid"
)

// Owner is a tenant's administrative contact. The email is unique across
// all tenants and is how a logged-in manager resolves to their tenant.
type Owner struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Owner) TableName() string {
	return "owners"
}
