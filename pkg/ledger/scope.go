package ledger

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope is the ownership predicate of a query or write: either a single
// user or a single group.
type Scope struct {
	userID  *uuid.UUID
	groupID *uuid.UUID
}

// ForUser scopes to records owned by a user.
func ForUser(id uuid.UUID) Scope { return Scope{userID: &id} }

// ForGroup scopes to records owned by a group.
func ForGroup(id uuid.UUID) Scope { return Scope{groupID: &id} }

// ForGroupScope reports whether the scope targets a group.
func (s Scope) ForGroupScope() bool { return s.groupID != nil }

func (s Scope) apply(q *gorm.DB) *gorm.DB {
	if s.groupID != nil {
		return q.Where("group_id = ?", *s.groupID)
	}
	if s.userID != nil {
		return q.Where("user_id = ?", *s.userID)
	}
	return q
}
