package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User model
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Username       string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	FirstName      string    `gorm:"size:255;not null" json:"firstName"`
	LastName       string    `gorm:"size:255" json:"lastName"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone          string    `gorm:"size:64;not null;uniqueIndex" json:"phone"`
	HashedPassword []byte    `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
