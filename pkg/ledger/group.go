package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"be04/models"
)

// CreateGroupWithMembers creates a group and its membership rows as one
// atomic unit. The creator is always seeded as admin, whether or not their
// id appears in memberIDs; everyone else joins as member. Duplicate ids in
// memberIDs collapse to a single row.
func CreateGroupWithMembers(ctx context.Context, db *gorm.DB, creatorID uuid.UUID, name string, memberIDs []uuid.UUID) (*models.Group, error) {
	db = db.WithContext(ctx)
	name = strings.ToLower(strings.TrimSpace(name))

	var group models.Group
	err := db.Transaction(func(tx *gorm.DB) error {
		group = models.Group{Name: name, CreatedBy: creatorID}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		members := []models.GroupMember{{
			GroupID: group.ID,
			UserID:  creatorID,
			Role:    models.MemberRoleAdmin,
		}}
		seen := map[uuid.UUID]bool{creatorID: true}
		for _, id := range memberIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			members = append(members, models.GroupMember{
				GroupID: group.ID,
				UserID:  id,
				Role:    models.MemberRoleMember,
			})
		}
		return tx.Create(&members).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, Errf(KindConflict, "%s group already exist", name)
		}
		return nil, Errf(KindInternal, "Failed to create group. Please try again.")
	}
	return &group, nil
}

// DeleteGroupCascading deletes a group and all its membership rows as one
// atomic unit. The requester must hold the admin role in the group; the
// check happens inside the transaction before any deletion, so a rejected
// request leaves every row untouched.
func DeleteGroupCascading(ctx context.Context, db *gorm.DB, requesterID, groupID uuid.UUID) error {
	db = db.WithContext(ctx)

	var group models.Group
	if err := db.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Errf(KindNotFound, "group is not found or already deleted")
		}
		return Errf(KindInternal, "Failed to delete group. please try again!")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var members []models.GroupMember
		if err := tx.Where("group_id = ?", groupID).Find(&members).Error; err != nil {
			return err
		}
		isAdmin := false
		for _, m := range members {
			if m.UserID == requesterID && m.Role == models.MemberRoleAdmin {
				isAdmin = true
				break
			}
		}
		if !isAdmin {
			return Errf(KindAuthorization, "Only admin can delete the group")
		}

		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, "id = ?", groupID).Error
	})
	if err != nil {
		var le *Error
		if errors.As(err, &le) {
			return le
		}
		return Errf(KindInternal, "Failed to delete group. please try again!")
	}
	return nil
}

// RemoveGroupMember deletes a single membership row.
func RemoveGroupMember(ctx context.Context, db *gorm.DB, memberID uuid.UUID) error {
	db = db.WithContext(ctx)
	var member models.GroupMember
	if err := db.First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Errf(KindNotFound, "Group member not found or already deleted")
		}
		return Errf(KindInternal, "Failed to remove group member. Please try again.")
	}
	if err := db.Delete(&member).Error; err != nil {
		return Errf(KindInternal, "Failed to remove group member. Please try again.")
	}
	return nil
}

// RenameGroup changes a group's name. The new name must differ from the
// current one; names compare lowercase.
func RenameGroup(ctx context.Context, db *gorm.DB, groupID uuid.UUID, name string) (*models.Group, error) {
	db = db.WithContext(ctx)
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, Errf(KindValidation, "Please give data to update")
	}

	var group models.Group
	if err := db.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Errf(KindNotFound, "No such group is present for groupId: %s", groupID)
		}
		return nil, Errf(KindInternal, "Failed to update group. Please try again.")
	}
	if group.Name == name {
		return nil, Errf(KindValidation, "Group name can't be similar to previous name")
	}

	if err := db.Model(&group).Update("name", name).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, Errf(KindConflict, "%s group already exist", name)
		}
		return nil, Errf(KindInternal, "Failed to update group. Please try again.")
	}
	return &group, nil
}

// GroupMemberDetail is one membership row joined with its user's identity.
type GroupMemberDetail struct {
	ID        uuid.UUID         `json:"id"`
	Role      models.MemberRole `json:"role"`
	UserID    uuid.UUID         `json:"userId"`
	Username  string            `json:"username"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
}

// GroupDetail is a group with its resolved membership.
type GroupDetail struct {
	ID      uuid.UUID           `json:"id"`
	Name    string              `json:"name"`
	Members []GroupMemberDetail `json:"members"`
}

// GroupDetails loads a group and its members with user identities attached.
func GroupDetails(ctx context.Context, db *gorm.DB, groupID uuid.UUID) (*GroupDetail, error) {
	db = db.WithContext(ctx)

	var group models.Group
	if err := db.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Errf(KindNotFound, "No such group is present for groupId: %s", groupID)
		}
		return nil, Errf(KindInternal, "Something went wrong while fetching the group")
	}

	var members []GroupMemberDetail
	err := db.Table("group_members").
		Select("group_members.id, group_members.role, users.id AS user_id, users.username, users.first_name, users.last_name, users.email").
		Joins("JOIN users ON users.id = group_members.user_id").
		Where("group_members.group_id = ?", groupID).
		Scan(&members).Error
	if err != nil {
		return nil, Errf(KindInternal, "Something went wrong while fetching the group")
	}
	return &GroupDetail{ID: group.ID, Name: group.Name, Members: members}, nil
}

// GroupsCreatedBy lists the groups the user created.
func GroupsCreatedBy(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	err := db.WithContext(ctx).Where("created_by = ?", userID).Order("created_at DESC").Find(&groups).Error
	if err != nil {
		return nil, Errf(KindInternal, "Something went wrong while fetching groups")
	}
	return groups, nil
}
