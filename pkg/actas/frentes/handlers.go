package frentes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles front-related requests
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewHandler creates a new fronts handler
func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, log: log.Named("frentes")}
}

// FrenteRequest is the body for creating or replacing a front.
// Tipo defaults to "otro".
type FrenteRequest struct {
	Nombre      string            `json:"nombre" binding:"required,max=100"`
	Slug        string            `json:"slug" binding:"max=100"`
	Descripcion string            `json:"descripcion"`
	Tipo        models.FrenteTipo `json:"tipo"`
}

// List returns all fronts ordered by name, optionally of one type
// @Summary List fronts
// @Tags frentes
// @Produce json
// @Param tipo query string false "actividad, tarea or otro"
// @Success 200 {array} models.Frente
// @Security BearerAuth
// @Router /frentes [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.Order("nombre ASC, id ASC")
	if tipo := c.Query("tipo"); tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}
	var frentes []models.Frente
	if err := query.Find(&frentes).Error; err != nil {
		h.log.Error("failed to list fronts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fronts"})
		return
	}
	c.JSON(http.StatusOK, frentes)
}

// Get returns a front
// @Summary Get a front
// @Tags frentes
// @Produce json
// @Param id path int true "Front ID"
// @Success 200 {object} models.Frente
// @Failure 404 {object} map[string]string "Front not found"
// @Security BearerAuth
// @Router /frentes/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	f, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, f)
}

// Create creates a front
// @Summary Create a front
// @Tags frentes
// @Accept json
// @Produce json
// @Param request body FrenteRequest true "Front"
// @Success 201 {object} models.Frente
// @Failure 409 {object} map[string]string "A front with this type and name exists"
// @Security BearerAuth
// @Router /frentes [post]
func (h *Handler) Create(c *gin.Context) {
	var f models.Frente
	if !h.bind(c, &f) {
		return
	}
	if err := h.db.Create(&f).Error; err != nil {
		h.log.Error("failed to create front", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create front"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

// Update replaces a front's fields
// @Summary Update a front
// @Tags frentes
// @Accept json
// @Produce json
// @Param id path int true "Front ID"
// @Param request body FrenteRequest true "Front"
// @Success 200 {object} models.Frente
// @Failure 409 {object} map[string]string "Name taken or front meetings have child meetings"
// @Security BearerAuth
// @Router /frentes/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	f, ok := h.find(c)
	if !ok {
		return
	}
	wasActividad := f.Tipo == models.FrenteActividad
	if !h.bind(c, f) {
		return
	}
	if wasActividad && f.Tipo != models.FrenteActividad && h.hasTasks(c, f) {
		return
	}
	if err := h.db.Save(f).Error; err != nil {
		h.log.Error("failed to update front", zap.Uint("id", f.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update front"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// Delete removes a front. Its meetings are kept and lose the reference,
// unless one of them still has child meetings.
// @Summary Delete a front
// @Tags frentes
// @Param id path int true "Front ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string "Front meetings have child meetings"
// @Security BearerAuth
// @Router /frentes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	f, ok := h.find(c)
	if !ok {
		return
	}
	if h.hasTasks(c, f) {
		return
	}
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reunion{}).Where("frente_id = ?", f.ID).UpdateColumn("frente_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(f).Error
	})
	if err != nil {
		h.log.Error("failed to delete front", zap.Uint("id", f.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete front"})
		return
	}
	h.log.Info("front deleted", zap.Uint("id", f.ID), zap.String("nombre", f.Nombre))
	c.JSON(http.StatusOK, gin.H{"message": "Front deleted"})
}

// hasTasks writes a 409 and returns true when a meeting under f still has
// child meetings, whose parent must keep an activity front.
func (h *Handler) hasTasks(c *gin.Context, f *models.Frente) bool {
	var count int64
	padres := h.db.Model(&models.Reunion{}).Select("id").Where("frente_id = ?", f.ID)
	if err := h.db.Model(&models.Reunion{}).Where("parent_id IN (?)", padres).Count(&count).Error; err != nil {
		h.log.Error("failed to count child meetings", zap.Uint("frente_id", f.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check front meetings"})
		return true
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Front meetings have child meetings"})
		return true
	}
	return false
}

// bind reads a FrenteRequest into f. The (tipo, nombre) pair must stay unique.
func (h *Handler) bind(c *gin.Context, f *models.Frente) bool {
	var req FrenteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if req.Tipo == "" {
		req.Tipo = models.FrenteOtro
	}
	if !req.Tipo.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"tipo": "Tipo no válido."}})
		return false
	}
	nombre := strings.TrimSpace(req.Nombre)

	var clash int64
	h.db.Model(&models.Frente{}).Where("tipo = ? AND nombre = ? AND id <> ?", req.Tipo, nombre, f.ID).Count(&clash)
	if clash > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A front with this type and name already exists"})
		return false
	}

	f.Nombre = nombre
	f.Slug = strings.TrimSpace(req.Slug)
	f.Descripcion = req.Descripcion
	f.Tipo = req.Tipo
	return true
}

func (h *Handler) find(c *gin.Context) (*models.Frente, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid front ID"})
		return nil, false
	}
	var f models.Frente
	if err := h.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Front not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch front"})
		}
		return nil, false
	}
	return &f, true
}

// RegisterRoutes registers front routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/frentes", h.List)
	rg.POST("/frentes", h.Create)
	rg.GET("/frentes/:id", h.Get)
	rg.PUT("/frentes/:id", h.Update)
	rg.DELETE("/frentes/:id", h.Delete)
}
