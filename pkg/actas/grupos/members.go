package grupos

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
)

// AddMemberRequest names the user to add, by ID or username
type AddMemberRequest struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// ListMembers returns the members of a work group
// @Summary List group members
// @Tags grupos
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} auth.UserResponse
// @Security BearerAuth
// @Router /grupos/{id}/miembros [get]
func (h *Handler) ListMembers(c *gin.Context) {
	g, ok := h.find(c)
	if !ok {
		return
	}
	members := make([]auth.UserResponse, len(g.Usuarios))
	for i, u := range g.Usuarios {
		members[i] = auth.NewUserResponse(u)
	}
	c.JSON(http.StatusOK, members)
}

// AddMember adds a user to a work group (admin only)
// @Summary Add group member
// @Tags grupos
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body AddMemberRequest true "User"
// @Success 201 {object} auth.UserResponse
// @Failure 409 {object} map[string]string "Already a member"
// @Security BearerAuth
// @Router /grupos/{id}/miembros [post]
func (h *Handler) AddMember(c *gin.Context) {
	g, ok := h.find(c)
	if !ok {
		return
	}
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := h.db
	switch {
	case req.UserID != 0:
		query = query.Where("id = ?", req.UserID)
	case strings.TrimSpace(req.Username) != "":
		query = query.Where("username = ?", strings.TrimSpace(req.Username))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id or username required"})
		return
	}
	var user models.User
	if err := query.First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	for _, m := range g.Usuarios {
		if m.ID == user.ID {
			c.JSON(http.StatusConflict, gin.H{"error": "User is already a member"})
			return
		}
	}
	if err := h.db.Model(g).Association("Usuarios").Append(&user); err != nil {
		h.log.Error("failed to add member", zap.Uint("grupo_id", g.ID), zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}
	c.JSON(http.StatusCreated, auth.NewUserResponse(user))
}

// RemoveMember removes a user from a work group (admin only)
// @Summary Remove group member
// @Tags grupos
// @Param id path int true "Group ID"
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /grupos/{id}/miembros/{userId} [delete]
func (h *Handler) RemoveMember(c *gin.Context) {
	g, ok := h.find(c)
	if !ok {
		return
	}
	memberID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var member *models.User
	for i := range g.Usuarios {
		if g.Usuarios[i].ID == uint(memberID) {
			member = &g.Usuarios[i]
			break
		}
	}
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}
	if err := h.db.Model(g).Association("Usuarios").Delete(member); err != nil {
		h.log.Error("failed to remove member", zap.Uint("grupo_id", g.ID), zap.Uint("user_id", member.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
