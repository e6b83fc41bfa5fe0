package etiquetas

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

// Handler handles tag-related requests
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewHandler creates a new tags handler
func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, log: log.Named("etiquetas")}
}

// EtiquetaResponse represents a tag in API responses
type EtiquetaResponse struct {
	ID           uint   `json:"id"`
	Nombre       string `json:"nombre"`
	ReunionCount int    `json:"reunion_count"`
}

// EtiquetaRequest is the body for creating or renaming a tag
type EtiquetaRequest struct {
	Nombre string `json:"nombre" binding:"required,max=50"`
}

// SetEtiquetasRequest replaces the tags of a meeting
type SetEtiquetasRequest struct {
	Etiquetas []string `json:"etiquetas" binding:"required"`
}

func toResponses(tags []models.Etiqueta) []EtiquetaResponse {
	out := make([]EtiquetaResponse, len(tags))
	for i, t := range tags {
		out[i] = EtiquetaResponse{ID: t.ID, Nombre: t.Nombre}
	}
	return out
}

// List returns all tags with the number of meetings using each
// @Summary List tags
// @Tags etiquetas
// @Produce json
// @Success 200 {array} EtiquetaResponse
// @Security BearerAuth
// @Router /etiquetas [get]
func (h *Handler) List(c *gin.Context) {
	var results []EtiquetaResponse
	err := h.db.Table("etiquetas").
		Select("etiquetas.id, etiquetas.nombre, COUNT(reunion_etiquetas.reunion_id) AS reunion_count").
		Joins("LEFT JOIN reunion_etiquetas ON reunion_etiquetas.etiqueta_id = etiquetas.id").
		Group("etiquetas.id, etiquetas.nombre").
		Order("etiquetas.nombre ASC").
		Scan(&results).Error
	if err != nil {
		h.log.Error("failed to list tags", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}
	if results == nil {
		results = []EtiquetaResponse{}
	}
	c.JSON(http.StatusOK, results)
}

// Create creates a tag
// @Summary Create tag
// @Tags etiquetas
// @Accept json
// @Produce json
// @Param request body EtiquetaRequest true "Tag"
// @Success 201 {object} EtiquetaResponse
// @Failure 409 {object} map[string]string "Tag already exists"
// @Security BearerAuth
// @Router /etiquetas [post]
func (h *Handler) Create(c *gin.Context) {
	var req EtiquetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	nombre := strings.TrimSpace(req.Nombre)

	var existing int64
	h.db.Model(&models.Etiqueta{}).Where("nombre = ?", nombre).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Tag already exists"})
		return
	}

	tag := models.Etiqueta{Nombre: nombre}
	if err := h.db.Create(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}
	c.JSON(http.StatusCreated, EtiquetaResponse{ID: tag.ID, Nombre: tag.Nombre})
}

// Update renames a tag
// @Summary Rename tag
// @Tags etiquetas
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param request body EtiquetaRequest true "Tag"
// @Success 200 {object} EtiquetaResponse
// @Security BearerAuth
// @Router /etiquetas/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	tag, ok := h.find(c)
	if !ok {
		return
	}
	var req EtiquetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	nombre := strings.TrimSpace(req.Nombre)

	var clash int64
	h.db.Model(&models.Etiqueta{}).Where("nombre = ? AND id <> ?", nombre, tag.ID).Count(&clash)
	if clash > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Tag already exists"})
		return
	}

	if err := h.db.Model(tag).Update("nombre", nombre).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag"})
		return
	}
	tag.Nombre = nombre
	c.JSON(http.StatusOK, EtiquetaResponse{ID: tag.ID, Nombre: tag.Nombre})
}

// Delete removes a tag and detaches it from every meeting
// @Summary Delete tag
// @Tags etiquetas
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /etiquetas/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	tag, ok := h.find(c)
	if !ok {
		return
	}
	if err := h.db.Select("Reuniones").Delete(tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

func (h *Handler) find(c *gin.Context) (*models.Etiqueta, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return nil, false
	}
	var tag models.Etiqueta
	if err := h.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tag"})
		}
		return nil, false
	}
	return &tag, true
}

func (h *Handler) findReunion(c *gin.Context) (*models.Reunion, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return nil, false
	}
	var reunion models.Reunion
	if err := h.db.First(&reunion, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return nil, false
	}
	return &reunion, true
}

// getOrCreate returns the tag called nombre, creating it when missing
func (h *Handler) getOrCreate(nombre string) (*models.Etiqueta, error) {
	var tag models.Etiqueta
	err := h.db.Where(models.Etiqueta{Nombre: nombre}).FirstOrCreate(&tag).Error
	return &tag, err
}

// GetReunionEtiquetas returns the tags of a meeting
// @Summary Meeting tags
// @Tags etiquetas
// @Param id path int true "Meeting ID"
// @Success 200 {array} EtiquetaResponse
// @Security BearerAuth
// @Router /reuniones/{id}/etiquetas [get]
func (h *Handler) GetReunionEtiquetas(c *gin.Context) {
	reunion, ok := h.findReunion(c)
	if !ok {
		return
	}
	var tags []models.Etiqueta
	if err := h.db.Model(reunion).Order("nombre ASC").Association("Etiquetas").Find(&tags); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}
	c.JSON(http.StatusOK, toResponses(tags))
}

// SetReunionEtiquetas replaces a meeting's tags, creating unknown names
// @Summary Replace meeting tags
// @Tags etiquetas
// @Accept json
// @Param id path int true "Meeting ID"
// @Param request body SetEtiquetasRequest true "Tag names"
// @Success 200 {array} EtiquetaResponse
// @Security BearerAuth
// @Router /reuniones/{id}/etiquetas [put]
func (h *Handler) SetReunionEtiquetas(c *gin.Context) {
	reunion, ok := h.findReunion(c)
	if !ok {
		return
	}
	var req SetEtiquetasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags := []models.Etiqueta{}
	seen := map[string]bool{}
	for _, nombre := range req.Etiquetas {
		nombre = strings.TrimSpace(nombre)
		if nombre == "" || seen[nombre] {
			continue
		}
		seen[nombre] = true
		tag, err := h.getOrCreate(nombre)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
			return
		}
		tags = append(tags, *tag)
	}

	if err := h.db.Model(reunion).Association("Etiquetas").Replace(tags); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tags"})
		return
	}
	c.JSON(http.StatusOK, toResponses(tags))
}

// AddReunionEtiqueta attaches one tag to a meeting
// @Summary Add meeting tag
// @Tags etiquetas
// @Param id path int true "Meeting ID"
// @Param nombre path string true "Tag name"
// @Success 200 {object} EtiquetaResponse
// @Security BearerAuth
// @Router /reuniones/{id}/etiquetas/{nombre} [post]
func (h *Handler) AddReunionEtiqueta(c *gin.Context) {
	reunion, ok := h.findReunion(c)
	if !ok {
		return
	}
	nombre := strings.TrimSpace(c.Param("nombre"))
	if nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name required"})
		return
	}
	tag, err := h.getOrCreate(nombre)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}
	if err := h.db.Model(reunion).Association("Etiquetas").Append(tag); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add tag"})
		return
	}
	c.JSON(http.StatusOK, EtiquetaResponse{ID: tag.ID, Nombre: tag.Nombre})
}

// RemoveReunionEtiqueta detaches a tag from a meeting
// @Summary Remove meeting tag
// @Tags etiquetas
// @Param id path int true "Meeting ID"
// @Param nombre path string true "Tag name"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /reuniones/{id}/etiquetas/{nombre} [delete]
func (h *Handler) RemoveReunionEtiqueta(c *gin.Context) {
	reunion, ok := h.findReunion(c)
	if !ok {
		return
	}
	var tag models.Etiqueta
	if err := h.db.Where("nombre = ?", c.Param("nombre")).First(&tag).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}
	if err := h.db.Model(reunion).Association("Etiquetas").Delete(&tag); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove tag"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag removed"})
}

// RegisterRoutes registers tag routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/etiquetas", h.List)
	rg.POST("/etiquetas", h.Create)
	rg.PUT("/etiquetas/:id", h.Update)
	rg.DELETE("/etiquetas/:id", h.Delete)

	rg.GET("/reuniones/:id/etiquetas", h.GetReunionEtiquetas)
	rg.PUT("/reuniones/:id/etiquetas", h.SetReunionEtiquetas)
	rg.POST("/reuniones/:id/etiquetas/:nombre", h.AddReunionEtiqueta)
	rg.DELETE("/reuniones/:id/etiquetas/:nombre", h.RemoveReunionEtiqueta)
}
