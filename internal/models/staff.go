package models

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a service-providing employee scoped to one tenant.
// Role is a free-text job title, not an authorization role.
type Staff struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Role      string    `gorm:"size:100" json:"role"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Staff) TableName() string {
	return "staff"
}
