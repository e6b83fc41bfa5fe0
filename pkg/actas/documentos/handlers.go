package documentos

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/media"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uploadDir = "documentos"

// Handler handles standalone document requests
type Handler struct {
	db    *gorm.DB
	log   *zap.Logger
	media *media.Store
}

// NewHandler creates a new documents handler storing files in store
func NewHandler(db *gorm.DB, store *media.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, log: log.Named("documentos"), media: store}
}

// DocumentoResponse represents a document in API responses
type DocumentoResponse struct {
	ID           uint   `json:"id"`
	Nombre       string `json:"nombre"`
	Archivo      string `json:"archivo"`
	URL          string `json:"url"`
	FechaSubida  string `json:"fecha_subida"`
	ReunionCount int    `json:"reunion_count"`
}

func toResponse(d models.Documento) DocumentoResponse {
	return DocumentoResponse{
		ID:           d.ID,
		Nombre:       d.DisplayName(),
		Archivo:      d.Archivo,
		URL:          "/media/" + d.Archivo,
		FechaSubida:  d.FechaSubida.Format("2006-01-02T15:04:05Z07:00"),
		ReunionCount: len(d.Reuniones),
	}
}

// List returns all documents, newest first
// @Summary List documents
// @Tags documentos
// @Produce json
// @Param reunion query int false "Only documents attached to this meeting"
// @Success 200 {array} DocumentoResponse
// @Security BearerAuth
// @Router /documentos [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.Preload("Reuniones").Order("fecha_subida DESC, id DESC")
	if rid, err := strconv.ParseUint(c.Query("reunion"), 10, 32); err == nil {
		query = query.Where("id IN (?)", h.db.Table("reunion_documentos").Select("documento_id").Where("reunion_id = ?", rid))
	}
	var docs []models.Documento
	if err := query.Find(&docs).Error; err != nil {
		h.log.Error("failed to list documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}
	out := make([]DocumentoResponse, len(docs))
	for i, d := range docs {
		out[i] = toResponse(d)
	}
	c.JSON(http.StatusOK, out)
}

// Upload stores a new document from the multipart "file" field
// @Summary Upload a document
// @Tags documentos
// @Accept mpfd
// @Produce json
// @Param file formData file true "Document"
// @Param nombre formData string false "Display name"
// @Success 201 {object} DocumentoResponse
// @Failure 413 {object} map[string]string "File too large"
// @Security BearerAuth
// @Router /documentos [post]
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	rel, err := h.media.Save(file, uploadDir)
	if errors.Is(err, media.ErrTooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.log.Error("failed to store document", zap.String("filename", file.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store document"})
		return
	}

	nombre := strings.TrimSpace(c.PostForm("nombre"))
	if nombre == "" {
		nombre = filepath.Base(file.Filename)
	}
	doc := models.Documento{Archivo: rel, Nombre: nombre}
	if err := h.db.Create(&doc).Error; err != nil {
		h.media.Remove(rel)
		h.log.Error("failed to create document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
		return
	}
	h.log.Info("document uploaded", zap.Uint("id", doc.ID), zap.String("archivo", rel), zap.Int64("size", file.Size))
	c.JSON(http.StatusCreated, toResponse(doc))
}

// Download sends the stored file as an attachment
// @Summary Download a document
// @Tags documentos
// @Produce octet-stream
// @Param id path int true "Document ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documentos/{id}/descarga [get]
func (h *Handler) Download(c *gin.Context) {
	doc, ok := h.find(c, "id")
	if !ok {
		return
	}
	path, err := h.media.Open(doc.Archivo)
	if err != nil {
		h.log.Warn("document has an invalid path", zap.Uint("id", doc.ID), zap.String("archivo", doc.Archivo))
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.FileAttachment(path, doc.DisplayName())
}

// Delete removes a document, its meeting links and its file
// @Summary Delete a document
// @Tags documentos
// @Param id path int true "Document ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /documentos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	doc, ok := h.find(c, "id")
	if !ok {
		return
	}
	if err := h.db.Select("Reuniones").Delete(doc).Error; err != nil {
		h.log.Error("failed to delete document", zap.Uint("id", doc.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	if err := h.media.Remove(doc.Archivo); err != nil {
		h.log.Warn("failed to remove document file", zap.String("archivo", doc.Archivo), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// Attach links a document to a meeting
// @Summary Attach a document to a meeting
// @Tags documentos
// @Param id path int true "Meeting ID"
// @Param documentoId path int true "Document ID"
// @Success 200 {object} DocumentoResponse
// @Security BearerAuth
// @Router /reuniones/{id}/documentos/{documentoId} [post]
func (h *Handler) Attach(c *gin.Context) {
	reunion, doc, ok := h.findPair(c)
	if !ok {
		return
	}
	if err := h.db.Model(reunion).Association("Documentos").Append(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach document"})
		return
	}
	c.JSON(http.StatusOK, toResponse(*doc))
}

// Detach unlinks a document from a meeting. The document itself is kept.
// @Summary Detach a document from a meeting
// @Tags documentos
// @Param id path int true "Meeting ID"
// @Param documentoId path int true "Document ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /reuniones/{id}/documentos/{documentoId} [delete]
func (h *Handler) Detach(c *gin.Context) {
	reunion, doc, ok := h.findPair(c)
	if !ok {
		return
	}
	if err := h.db.Model(reunion).Association("Documentos").Delete(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document detached"})
}

func (h *Handler) find(c *gin.Context, param string) (*models.Documento, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return nil, false
	}
	var doc models.Documento
	if err := h.db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document"})
		}
		return nil, false
	}
	return &doc, true
}

func (h *Handler) findPair(c *gin.Context) (*models.Reunion, *models.Documento, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return nil, nil, false
	}
	var reunion models.Reunion
	if err := h.db.First(&reunion, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return nil, nil, false
	}
	doc, ok := h.find(c, "documentoId")
	if !ok {
		return nil, nil, false
	}
	return &reunion, doc, true
}

// RegisterRoutes registers document routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documentos", h.List)
	rg.POST("/documentos", h.Upload)
	rg.GET("/documentos/:id/descarga", h.Download)
	rg.DELETE("/documentos/:id", h.Delete)

	rg.POST("/reuniones/:id/documentos/:documentoId", h.Attach)
	rg.DELETE("/reuniones/:id/documentos/:documentoId", h.Detach)
}
