package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a business on the platform. It references exactly one Plan
// and owns its staff, services and owners.
type Tenant struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null;index" json:"planId"`
	Plan      *Plan     `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Owners    []Owner   `gorm:"foreignKey:TenantID" json:"owners,omitempty"`
	Services  []Service `gorm:"foreignKey:TenantID" json:"services,omitempty"`
	Staff     []Staff   `gorm:"foreignKey:TenantID" json:"staff,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tenant) TableName() string {
	return "tenants"
}
