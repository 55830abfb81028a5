package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scoped returns a GORM scope that filters tenant-owned rows.
func Scoped(tenantID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}
