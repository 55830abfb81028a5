package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. An appointment is never hard-deleted from the
// user-facing flow; cancellation is a status transition.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment links a user, a service, a staff member and a tenant at a
// specific time. The service, staff and tenant are expected to agree on
// the tenant context.
type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ServiceID   uuid.UUID `gorm:"type:uuid;not null;index" json:"serviceId"`
	StaffID     uuid.UUID `gorm:"type:uuid;not null;index" json:"staffId"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduledAt"`
	Status      string    `gorm:"not null;default:'pending';size:20" json:"status"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Service     *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Staff       *Staff    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Tenant      *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}
