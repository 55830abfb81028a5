package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Plan is a subscription tier assigned to tenants. Features is an open
// key/value mapping (string/number/boolean values) stored as jsonb.
type Plan struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string            `gorm:"not null;size:100" json:"name"`
	Description string            `gorm:"size:500" json:"description"`
	Price       float64           `gorm:"not null;default:0" json:"price"`
	Features    datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"features"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (Plan) TableName() string {
	return "plans"
}
