package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
)

type Role struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserAccount is the login account linked to a graduate by email. The
// tracer core only ever writes its Status field, during reconciliation.
type UserAccount struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string        `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string        `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"size:255;not null" json:"-"`
	RoleID       *uint         `json:"role_id"`
	Role         Role          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"role"`
	Status       survey.Status `gorm:"size:20;default:pending" json:"status"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (u *UserAccount) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
