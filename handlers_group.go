package main

import (
	"net/http"

	"be04/pkg/ledger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func createGroupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Name    string   `json:"name"`
		Members []string `json:"members"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := ledger.RequireFields(ledger.EntityGroup, func(f string) bool {
		switch f {
		case "name":
			return req.Name != ""
		case "members":
			return req.Members != nil
		}
		return false
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	memberIDs := make([]uuid.UUID, 0, len(req.Members))
	for _, m := range req.Members {
		id, err := uuid.Parse(m)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "members must be valid user ids"})
			return
		}
		memberIDs = append(memberIDs, id)
	}

	group, err := ledger.CreateGroupWithMembers(c.Request.Context(), db, userID, req.Name, memberIDs)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func listGroupsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	groups, err := ledger.GroupsCreatedBy(c.Request.Context(), db, userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func groupIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is not a valid id"})
		return uuid.Nil, false
	}
	return id, true
}

func groupDetailsHandler(c *gin.Context) {
	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	detail, err := ledger.GroupDetails(c.Request.Context(), db, groupID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func renameGroupHandler(c *gin.Context) {
	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := ledger.RenameGroup(c.Request.Context(), db, groupID, req.Name)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func deleteGroupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	if err := ledger.DeleteGroupCascading(c.Request.Context(), db, userID, groupID); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func removeGroupMemberHandler(c *gin.Context) {
	var req struct {
		GroupMemberID string `json:"groupMemberId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.GroupMemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please pass groupMember id"})
		return
	}
	memberID, err := uuid.Parse(req.GroupMemberID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupMemberId is not a valid id"})
		return
	}
	if err := ledger.RemoveGroupMember(c.Request.Context(), db, memberID); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
