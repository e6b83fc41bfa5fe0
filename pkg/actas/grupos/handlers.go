package grupos

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles work-group requests
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewHandler creates a new work groups handler
func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, log: log.Named("grupos")}
}

// GrupoRequest is the body for creating or updating a work group
type GrupoRequest struct {
	Nombre      string `json:"nombre" binding:"required,max=100"`
	Descripcion string `json:"descripcion"`
}

// GrupoResponse represents a work group in API responses
type GrupoResponse struct {
	ID           uint   `json:"id"`
	Nombre       string `json:"nombre"`
	Descripcion  string `json:"descripcion"`
	MemberCount  int    `json:"member_count"`
	ReunionCount int64  `json:"reunion_count"`
}

// List returns all work groups ordered by name
// @Summary List work groups
// @Tags grupos
// @Produce json
// @Success 200 {array} GrupoResponse
// @Security BearerAuth
// @Router /grupos [get]
func (h *Handler) List(c *gin.Context) {
	var grupos []models.GrupoTrabajo
	if err := h.db.Preload("Usuarios").Order("nombre ASC").Find(&grupos).Error; err != nil {
		h.log.Error("failed to list groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
		return
	}

	out := make([]GrupoResponse, len(grupos))
	for i, g := range grupos {
		out[i] = h.toResponse(g)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) toResponse(g models.GrupoTrabajo) GrupoResponse {
	var reuniones int64
	h.db.Model(&models.Reunion{}).Where("grupo_trabajo_id = ?", g.ID).Count(&reuniones)
	return GrupoResponse{
		ID:           g.ID,
		Nombre:       g.Nombre,
		Descripcion:  g.Descripcion,
		MemberCount:  len(g.Usuarios),
		ReunionCount: reuniones,
	}
}

// Get returns a work group
// @Summary Get a work group
// @Tags grupos
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} GrupoResponse
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /grupos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	g, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.toResponse(*g))
}

// Create creates a work group (admin only)
// @Summary Create a work group
// @Tags grupos
// @Accept json
// @Produce json
// @Param request body GrupoRequest true "Group details"
// @Success 201 {object} GrupoResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Security BearerAuth
// @Router /grupos [post]
func (h *Handler) Create(c *gin.Context) {
	var req GrupoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g := models.GrupoTrabajo{Nombre: strings.TrimSpace(req.Nombre), Descripcion: req.Descripcion}
	if err := h.db.Create(&g).Error; err != nil {
		h.log.Error("failed to create group", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(g))
}

// Update renames a work group (admin only)
// @Summary Update a work group
// @Tags grupos
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body GrupoRequest true "Group details"
// @Success 200 {object} GrupoResponse
// @Security BearerAuth
// @Router /grupos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	g, ok := h.find(c)
	if !ok {
		return
	}
	var req GrupoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g.Nombre = strings.TrimSpace(req.Nombre)
	g.Descripcion = req.Descripcion
	if err := h.db.Omit("Usuarios").Save(g).Error; err != nil {
		h.log.Error("failed to update group", zap.Uint("id", g.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group"})
		return
	}
	c.JSON(http.StatusOK, h.toResponse(*g))
}

// Delete deletes a work group (admin only). Memberships go with it; meetings
// are kept and lose the reference.
// @Summary Delete a work group
// @Tags grupos
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]string "Group deleted"
// @Security BearerAuth
// @Router /grupos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	g, ok := h.find(c)
	if !ok {
		return
	}
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reunion{}).Where("grupo_trabajo_id = ?", g.ID).UpdateColumn("grupo_trabajo_id", nil).Error; err != nil {
			return err
		}
		return tx.Select("Usuarios").Delete(g).Error
	})
	if err != nil {
		h.log.Error("failed to delete group", zap.Uint("id", g.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete group"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted"})
}

func (h *Handler) find(c *gin.Context) (*models.GrupoTrabajo, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return nil, false
	}
	var g models.GrupoTrabajo
	if err := h.db.Preload("Usuarios").First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group"})
		}
		return nil, false
	}
	return &g, true
}

// RegisterRoutes registers work group routes. Reads are open to any
// authenticated user; changes need a system admin.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := auth.RequireAdmin()

	rg.GET("/grupos", h.List)
	rg.POST("/grupos", admin, h.Create)
	rg.GET("/grupos/:id", h.Get)
	rg.PUT("/grupos/:id", admin, h.Update)
	rg.DELETE("/grupos/:id", admin, h.Delete)

	rg.GET("/grupos/:id/miembros", h.ListMembers)
	rg.POST("/grupos/:id/miembros", admin, h.AddMember)
	rg.DELETE("/grupos/:id/miembros/:userId", admin, h.RemoveMember)
}
