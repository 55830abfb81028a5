package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable offering scoped to one tenant.
// Duration is in minutes.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description *string   `gorm:"size:500" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`
	Tenant      *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Service) TableName() string {
	return "services"
}
