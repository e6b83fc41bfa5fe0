package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/mail"
	"github.com/mikepea/actas/pkg/actas/metrics"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options configures a Handler
type Options struct {
	// Mail sends the test message. When nil the test endpoint answers 503.
	Mail    *mail.Client
	Metrics *metrics.Metrics
}

// Handler handles admin requests
type Handler struct {
	db      *gorm.DB
	log     *zap.Logger
	mail    *mail.Client
	metrics *metrics.Metrics
}

// NewHandler creates a new admin handler
func NewHandler(db *gorm.DB, opts Options, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, log: log.Named("admin"), mail: opts.Mail, metrics: opts.Metrics}
}

// UserResponse represents user data in admin responses
type UserResponse struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Name         string     `json:"name"`
	SystemRole   string     `json:"system_role"`
	Active       bool       `json:"active"`
	SSO          bool       `json:"sso"`
	CreatedAt    string     `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	GrupoCount   int64      `json:"grupo_count"`
	ReunionCount int64      `json:"reunion_count"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	Email      *string `json:"email" binding:"omitempty,email"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	SystemRole *string `json:"system_role"`
	Active     *bool   `json:"active"`
}

// StatsResponse represents system statistics
type StatsResponse struct {
	TotalUsers          int64            `json:"total_users"`
	ActiveUsers         int64            `json:"active_users"`
	AdminUsers          int64            `json:"admin_users"`
	SSOUsers            int64            `json:"sso_users"`
	TotalProyectos      int64            `json:"total_proyectos"`
	TotalFrentes        int64            `json:"total_frentes"`
	TotalGrupos         int64            `json:"total_grupos"`
	TotalEtiquetas      int64            `json:"total_etiquetas"`
	TotalReuniones      int64            `json:"total_reuniones"`
	ReunionesPorEstado  map[string]int64 `json:"reuniones_por_estado"`
	ReunionesVencidas   int64            `json:"reuniones_vencidas"`
	TotalIntervenciones int64            `json:"total_intervenciones"`
	TotalComentarios    int64            `json:"total_comentarios"`
	TotalDocumentos     int64            `json:"total_documentos"`
	MailConfigs         int64            `json:"mail_configs"`
	ActiveMailConfig    *uint            `json:"active_mail_config"`
}

func (h *Handler) toUserResponse(user models.User) UserResponse {
	var grupoCount, reunionCount, ssoCount int64
	h.db.Table("grupo_trabajo_usuarios").Where("user_id = ?", user.ID).Count(&grupoCount)
	h.db.Table("reunion_responsables").Where("user_id = ?", user.ID).Count(&reunionCount)
	h.db.Model(&models.KeycloakProfile{}).Where("user_id = ?", user.ID).Count(&ssoCount)

	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Name:         user.FullName(),
		SystemRole:   string(user.SystemRole),
		Active:       user.Active,
		SSO:          ssoCount > 0,
		CreatedAt:    user.CreatedAt.Format("2006-01-02T15:04:05Z"),
		LastLogin:    user.LastLogin,
		GrupoCount:   grupoCount,
		ReunionCount: reunionCount,
	}
}

// ListUsers returns all users (admin only)
// @Summary List users
// @Tags admin
// @Produce json
// @Param q query string false "Search username, email or name"
// @Param role query string false "Filter by system role"
// @Success 200 {array} UserResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	var users []models.User

	query := h.db.Order("username ASC")

	if search := strings.ToLower(strings.TrimSpace(c.Query("q"))); search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			like, like, like, like)
	}

	if role := c.Query("role"); role != "" {
		query = query.Where("system_role = ?", role)
	}

	if err := query.Find(&users).Error; err != nil {
		h.log.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = h.toUserResponse(user)
	}
	c.JSON(http.StatusOK, responses)
}

// GetUser returns a single user by ID (admin only)
// @Summary Get a user
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.toUserResponse(*user))
}

// UpdateUser updates a user's profile, role or active flag (admin only)
// @Summary Update a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currentUserID, _ := auth.GetUserID(c)
	if user.ID == currentUserID {
		if req.SystemRole != nil && *req.SystemRole != string(models.SystemRoleAdmin) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot demote yourself"})
			return
		}
		if req.Active != nil && !*req.Active {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot deactivate yourself"})
			return
		}
	}

	updates := make(map[string]interface{})
	if req.Email != nil {
		updates["email"] = strings.TrimSpace(*req.Email)
	}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.SystemRole != nil {
		role := models.SystemRole(*req.SystemRole)
		if role != models.SystemRoleAdmin && role != models.SystemRoleUser {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid system role"})
			return
		}
		updates["system_role"] = role
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := h.db.Model(user).Updates(updates).Error; err != nil {
			h.log.Error("failed to update user", zap.Uint("id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		h.log.Info("user updated", zap.Uint("id", user.ID), zap.Strings("fields", keys(updates)))
	}

	h.db.First(user, user.ID)
	c.JSON(http.StatusOK, h.toUserResponse(*user))
}

// DeleteUser removes a user and their memberships (admin only). Users who
// authored interventions or comments are kept for the record; deactivate them.
// @Summary Delete a user
// @Tags admin
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string "User has authored content"
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}

	currentUserID, _ := auth.GetUserID(c)
	if user.ID == currentUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete yourself"})
		return
	}

	var authored int64
	h.db.Model(&models.Intervencion{}).Where("autor_id = ?", user.ID).Count(&authored)
	if authored == 0 {
		h.db.Model(&models.Comentario{}).Where("autor_id = ?", user.ID).Count(&authored)
	}
	if authored > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "User has authored interventions; deactivate instead"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM grupo_trabajo_usuarios WHERE user_id = ?", user.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM reunion_responsables WHERE user_id = ?", user.ID).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.KeycloakProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		h.log.Error("failed to delete user", zap.Uint("id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	h.log.Info("user deleted", zap.Uint("id", user.ID), zap.String("username", user.Username))
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetStats returns system-wide statistics (admin only)
// @Summary System statistics
// @Tags admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats := StatsResponse{ReunionesPorEstado: map[string]int64{}}

	h.db.Model(&models.User{}).Count(&stats.TotalUsers)
	h.db.Model(&models.User{}).Where("active = ?", true).Count(&stats.ActiveUsers)
	h.db.Model(&models.User{}).Where("system_role = ?", models.SystemRoleAdmin).Count(&stats.AdminUsers)
	h.db.Model(&models.KeycloakProfile{}).Count(&stats.SSOUsers)
	h.db.Model(&models.Proyecto{}).Count(&stats.TotalProyectos)
	h.db.Model(&models.Frente{}).Count(&stats.TotalFrentes)
	h.db.Model(&models.GrupoTrabajo{}).Count(&stats.TotalGrupos)
	h.db.Model(&models.Etiqueta{}).Count(&stats.TotalEtiquetas)
	h.db.Model(&models.Reunion{}).Count(&stats.TotalReuniones)
	h.db.Model(&models.Intervencion{}).Count(&stats.TotalIntervenciones)
	h.db.Model(&models.Comentario{}).Count(&stats.TotalComentarios)
	h.db.Model(&models.Documento{}).Count(&stats.TotalDocumentos)
	h.db.Model(&models.GraphMailConfig{}).Count(&stats.MailConfigs)

	for _, e := range models.Estados {
		var n int64
		h.db.Model(&models.Reunion{}).Where("estado = ?", e).Count(&n)
		stats.ReunionesPorEstado[string(e)] = n
	}

	// Overdue counts calendar days, so compare against the start of today
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	h.db.Model(&models.Reunion{}).
		Where("fecha_finalizacion IS NOT NULL AND fecha_finalizacion < ?", startOfDay).
		Count(&stats.ReunionesVencidas)

	if cfg, err := mail.ResolveActiveConfig(h.db, nil); err == nil {
		stats.ActiveMailConfig = &cfg.ID
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) findUser(c *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return nil, false
	}
	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		}
		return nil, false
	}
	return &user, true
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// RegisterRoutes registers admin routes on the given router group. The
// caller is expected to guard the group with auth.RequireAdmin.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.GetStats)
	rg.GET("/users", h.ListUsers)
	rg.POST("/users/import", h.ImportUsers)
	rg.GET("/users/:id", h.GetUser)
	rg.PUT("/users/:id", h.UpdateUser)
	rg.DELETE("/users/:id", h.DeleteUser)

	rg.GET("/mail/configs", h.ListMailConfigs)
	rg.POST("/mail/configs", h.CreateMailConfig)
	rg.GET("/mail/configs/:id", h.GetMailConfig)
	rg.PUT("/mail/configs/:id", h.UpdateMailConfig)
	rg.DELETE("/mail/configs/:id", h.DeleteMailConfig)
	rg.POST("/mail/test", h.TestMail)
}
