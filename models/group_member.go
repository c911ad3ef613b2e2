package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRole is the role of a member within a group. It is a closed set;
// authorization checks compare against the constants, never raw strings.
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

// Valid reports whether r is one of the known roles.
func (r MemberRole) Valid() bool {
	switch r {
	case MemberRoleAdmin, MemberRoleMember:
		return true
	}
	return false
}

// GroupMember links a user to a group with a role. Exactly one row per
// (group, user) pair.
type GroupMember struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	GroupID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user" json:"groupId"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user" json:"userId"`
	Role      MemberRole `gorm:"size:16;not null" json:"role"`
}

func (gm *GroupMember) BeforeCreate(tx *gorm.DB) error {
	if gm.ID == uuid.Nil {
		gm.ID = uuid.New()
	}
	if !gm.Role.Valid() {
		return gorm.ErrInvalidData
	}
	return nil
}
