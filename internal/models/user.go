package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"size:255" json:"name"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:20;default:'user'" json:"role"`
	Image     *string        `gorm:"size:500" json:"image,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
