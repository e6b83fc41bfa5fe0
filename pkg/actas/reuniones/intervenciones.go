package reuniones

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/mail"
	"github.com/mikepea/actas/pkg/actas/media"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// attachmentDir is the media subdirectory holding intervention attachments
const attachmentDir = "intervenciones"

// ContenidoRequest is the body for posting an intervention or a comment
type ContenidoRequest struct {
	Contenido string `json:"contenido" form:"contenido" binding:"required"`
}

// ListIntervenciones returns a meeting's interventions, oldest first
// @Summary List interventions
// @Tags reuniones
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {array} models.Intervencion
// @Security BearerAuth
// @Router /reuniones/{id}/intervenciones [get]
func (h *Handler) ListIntervenciones(c *gin.Context) {
	id, ok := parseID(c, "Invalid meeting ID")
	if !ok {
		return
	}
	reunion, err := h.load(id)
	if err != nil {
		h.notFoundOr500(c, err, "Meeting not found", "Failed to fetch meeting")
		return
	}
	intervenciones := reunion.Intervenciones
	if intervenciones == nil {
		intervenciones = []models.Intervencion{}
	}
	c.JSON(http.StatusOK, intervenciones)
}

// CreateIntervencion posts a statement to a meeting. Multipart requests may
// carry an "archivo" file, stored under the media directory.
// @Summary Post an intervention
// @Tags reuniones
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Meeting ID"
// @Param contenido formData string true "Content"
// @Param archivo formData file false "Attachment"
// @Success 201 {object} models.Intervencion
// @Failure 404 {object} map[string]string "Meeting not found"
// @Security BearerAuth
// @Router /reuniones/{id}/intervenciones [post]
func (h *Handler) CreateIntervencion(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	id, ok := parseID(c, "Invalid meeting ID")
	if !ok {
		return
	}
	var reunion models.Reunion
	if err := h.db.First(&reunion, id).Error; err != nil {
		h.notFoundOr500(c, err, "Meeting not found", "Failed to fetch meeting")
		return
	}

	var req ContenidoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contenido := strings.TrimSpace(req.Contenido)
	if contenido == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"contenido": "Este campo es obligatorio."}})
		return
	}

	var doc *models.IntervencionDocumento
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		stored, ok := h.saveAttachment(c)
		if !ok {
			return
		}
		doc = stored
	}

	intervencion := models.Intervencion{
		ReunionID: reunion.ID,
		AutorID:   userID,
		Contenido: contenido,
	}
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&intervencion).Error; err != nil {
			return err
		}
		if doc == nil {
			return nil
		}
		doc.IntervencionID = intervencion.ID
		return tx.Create(doc).Error
	})
	if err != nil {
		if doc != nil {
			h.media.Remove(doc.Archivo)
		}
		h.log.Error("failed to create intervention", zap.Uint("reunion_id", reunion.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create intervention"})
		return
	}

	// Already committed; without the author there is nothing sensible to notify
	if err := h.db.Preload("Autor").Preload("Documentos").First(&intervencion, intervencion.ID).Error; err != nil {
		h.log.Error("failed to reload intervention", zap.Uint("id", intervencion.ID), zap.Error(err))
		c.JSON(http.StatusCreated, intervencion)
		return
	}
	h.notify(c, &reunion, &intervencion)
	c.JSON(http.StatusCreated, intervencion)
}

// saveAttachment stores the optional "archivo" upload. A request without a
// file yields a nil document.
func (h *Handler) saveAttachment(c *gin.Context) (*models.IntervencionDocumento, bool) {
	file, err := c.FormFile("archivo")
	if err == http.ErrMissingFile {
		return nil, true
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment"})
		return nil, false
	}

	rel, err := h.media.Save(file, attachmentDir)
	if errors.Is(err, media.ErrTooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return nil, false
	}
	if err != nil {
		h.log.Error("failed to store attachment", zap.String("filename", file.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store attachment"})
		return nil, false
	}

	nombre := strings.TrimSpace(c.PostForm("nombre"))
	if nombre == "" {
		nombre = filepath.Base(file.Filename)
	}
	return &models.IntervencionDocumento{Archivo: rel, Nombre: nombre}, true
}

// notify tells the notifier about a new intervention. The intervention is
// already committed, so failures are only logged.
func (h *Handler) notify(c *gin.Context, reunion *models.Reunion, i *models.Intervencion) {
	if h.notifier == nil {
		return
	}
	msg := mail.Message{
		Subject:     fmt.Sprintf("Nueva intervención en \"%s\"", reunion.Titulo),
		Body:        fmt.Sprintf("%s escribió:\n\n%s", i.Autor.FullName(), i.Contenido),
		ContentType: "Text",
	}
	if err := h.notifier.Send(c.Request.Context(), msg); err != nil {
		h.log.Warn("intervention notification failed",
			zap.Uint("reunion_id", reunion.ID),
			zap.Uint("intervencion_id", i.ID),
			zap.Error(err))
	}
}

// DeleteIntervencion removes an intervention with its comments and
// attachments. Only its author or an admin may do so.
// @Summary Delete an intervention
// @Tags reuniones
// @Param id path int true "Intervention ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string "Not the author"
// @Security BearerAuth
// @Router /intervenciones/{id} [delete]
func (h *Handler) DeleteIntervencion(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	role, _ := auth.GetSystemRole(c)
	id, ok := parseID(c, "Invalid intervention ID")
	if !ok {
		return
	}
	var intervencion models.Intervencion
	if err := h.db.Preload("Documentos").First(&intervencion, id).Error; err != nil {
		h.notFoundOr500(c, err, "Intervention not found", "Failed to fetch intervention")
		return
	}
	if intervencion.AutorID != userID && role != string(models.SystemRoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can delete this intervention"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("intervencion_id = ?", intervencion.ID).Delete(&models.Comentario{}).Error; err != nil {
			return err
		}
		if err := tx.Where("intervencion_id = ?", intervencion.ID).Delete(&models.IntervencionDocumento{}).Error; err != nil {
			return err
		}
		return tx.Delete(&intervencion).Error
	})
	if err != nil {
		h.log.Error("failed to delete intervention", zap.Uint("id", intervencion.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete intervention"})
		return
	}
	for _, d := range intervencion.Documentos {
		if err := h.media.Remove(d.Archivo); err != nil {
			h.log.Warn("failed to remove attachment", zap.String("path", d.Archivo), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Intervention deleted"})
}

// CreateComentario replies to an intervention
// @Summary Comment on an intervention
// @Tags reuniones
// @Accept json
// @Produce json
// @Param id path int true "Intervention ID"
// @Param request body ContenidoRequest true "Comment"
// @Success 201 {object} models.Comentario
// @Failure 404 {object} map[string]string "Intervention not found"
// @Security BearerAuth
// @Router /intervenciones/{id}/comentarios [post]
func (h *Handler) CreateComentario(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	id, ok := parseID(c, "Invalid intervention ID")
	if !ok {
		return
	}
	var intervencion models.Intervencion
	if err := h.db.First(&intervencion, id).Error; err != nil {
		h.notFoundOr500(c, err, "Intervention not found", "Failed to fetch intervention")
		return
	}

	var req ContenidoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contenido := strings.TrimSpace(req.Contenido)
	if contenido == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"contenido": "Este campo es obligatorio."}})
		return
	}

	comentario := models.Comentario{
		IntervencionID: intervencion.ID,
		AutorID:        userID,
		Contenido:      contenido,
	}
	if err := h.db.Create(&comentario).Error; err != nil {
		h.log.Error("failed to create comment", zap.Uint("intervencion_id", intervencion.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}
	if err := h.db.Preload("Autor").First(&comentario, comentario.ID).Error; err != nil {
		h.log.Error("failed to reload comment", zap.Uint("id", comentario.ID), zap.Error(err))
	}
	c.JSON(http.StatusCreated, comentario)
}
