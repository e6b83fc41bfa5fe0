package reuniones

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/filtros"
	"github.com/mikepea/actas/pkg/actas/mail"
	"github.com/mikepea/actas/pkg/actas/media"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Notifier delivers mail about new activity on a meeting
type Notifier interface {
	Send(ctx context.Context, msg mail.Message) error
}

// Options configures a Handler
type Options struct {
	// MediaDir is where intervention attachments are stored
	MediaDir string
	// Notifier, when set, is told about every new intervention
	Notifier Notifier
	// Now returns the current time; tests pin it
	Now func() time.Time
}

// Handler handles meeting-related requests
type Handler struct {
	db       *gorm.DB
	log      *zap.Logger
	media    *media.Store
	notifier Notifier
	now      func() time.Time
}

// NewHandler creates a new meetings handler
func NewHandler(db *gorm.DB, opts Options, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Handler{
		db:       db,
		log:      log.Named("reuniones"),
		media:    media.NewStore(opts.MediaDir),
		notifier: opts.Notifier,
		now:      opts.Now,
	}
}

// ReunionRequest is the body for creating or replacing a meeting
type ReunionRequest struct {
	Titulo            string        `json:"titulo" binding:"required,max=200"`
	Descripcion       string        `json:"descripcion"`
	ProyectoID        *uint         `json:"proyecto_id"`
	FrenteID          *uint         `json:"frente_id"`
	ParentID          *uint         `json:"parent_id"`
	GrupoTrabajoID    *uint         `json:"grupo_trabajo_id"`
	Fecha             *time.Time    `json:"fecha"`
	FechaFinalizacion *time.Time    `json:"fecha_finalizacion"`
	Estado            models.Estado `json:"estado"`
	EtiquetaIDs       []uint        `json:"etiqueta_ids"`
	DocumentoIDs      []uint        `json:"documento_ids"`
	ResponsableIDs    []uint        `json:"responsable_ids"`
}

// ListResponse is one page of meetings grouped by front
type ListResponse struct {
	Grupos  []filtros.Grupo `json:"grupos"`
	Pagina  filtros.Pagina  `json:"pagina"`
	Filtros filtros.Filtros `json:"filtros"`
}

// related holds the many-to-many links named in a request
type related struct {
	etiquetas    []models.Etiqueta
	documentos   []models.Documento
	responsables []models.User
}

// List returns one page of meetings grouped by front
// @Summary List meetings
// @Description Meetings filtered by proyecto, frente, estado and responsable, grouped by front, 9 per page
// @Tags reuniones
// @Produce json
// @Param proyecto query int false "Project ID"
// @Param frente query int false "Front ID"
// @Param estado query string false "Status"
// @Param responsable query int false "Responsible user ID"
// @Param page query int false "Page number"
// @Success 200 {object} ListResponse
// @Security BearerAuth
// @Router /reuniones [get]
func (h *Handler) List(c *gin.Context) {
	q := c.Request.URL.Query()
	f := filtros.Parse(q)

	var total int64
	if err := f.Apply(h.db.Model(&models.Reunion{})).Count(&total).Error; err != nil {
		h.log.Error("failed to count meetings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}
	pagina := filtros.NewPagina(filtros.ParsePage(q), total, filtros.PageSize)

	var reuniones []models.Reunion
	err := filtros.OrdenPorFrente(f.Apply(h.db.Model(&models.Reunion{}))).
		Preload("Proyecto").
		Preload("Frente").
		Preload("GrupoTrabajo").
		Preload("Etiquetas").
		Preload("Responsables").
		Limit(pagina.PageSize).
		Offset(pagina.Offset()).
		Find(&reuniones).Error
	if err != nil {
		h.log.Error("failed to list meetings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}

	anotadas := filtros.AnotarTodas(reuniones, h.now())
	c.JSON(http.StatusOK, ListResponse{
		Grupos:  filtros.AgruparPorFrente(anotadas),
		Pagina:  pagina,
		Filtros: f,
	})
}

// Get returns a meeting with its discussion and attachments
// @Summary Get a meeting
// @Tags reuniones
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} filtros.ReunionAnotada
// @Failure 404 {object} map[string]string "Meeting not found"
// @Security BearerAuth
// @Router /reuniones/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid meeting ID")
	if !ok {
		return
	}
	reunion, err := h.load(id)
	if err != nil {
		h.notFoundOr500(c, err, "Meeting not found", "Failed to fetch meeting")
		return
	}
	c.JSON(http.StatusOK, filtros.Anotar(*reunion, h.now()))
}

// Create creates a meeting. Without a front it goes under the first one.
// @Summary Create a meeting
// @Tags reuniones
// @Accept json
// @Produce json
// @Param request body ReunionRequest true "Meeting"
// @Success 201 {object} models.Reunion
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Security BearerAuth
// @Router /reuniones [post]
func (h *Handler) Create(c *gin.Context) {
	var req ReunionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FrenteID == nil {
		first, err := models.FirstFrente(h.db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fronts"})
			return
		}
		if first != nil {
			req.FrenteID = &first.ID
		}
	}
	if !h.validate(c, &req) {
		return
	}
	rel, ok := h.loadRelated(c, &req)
	if !ok {
		return
	}

	reunion := models.Reunion{}
	apply(&reunion, &req)
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&reunion).Error; err != nil {
			return err
		}
		return replaceRelated(tx, &reunion, rel)
	})
	if err != nil {
		h.saveError(c, err, "Failed to create meeting")
		return
	}

	h.log.Info("meeting created", zap.Uint("id", reunion.ID), zap.String("titulo", reunion.Titulo))
	c.JSON(http.StatusCreated, reunion)
}

// Update replaces a meeting's fields and links
// @Summary Update a meeting
// @Tags reuniones
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body ReunionRequest true "Meeting"
// @Success 200 {object} models.Reunion
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]string "Meeting not found"
// @Security BearerAuth
// @Router /reuniones/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid meeting ID")
	if !ok {
		return
	}
	var reunion models.Reunion
	if err := h.db.First(&reunion, id).Error; err != nil {
		h.notFoundOr500(c, err, "Meeting not found", "Failed to fetch meeting")
		return
	}

	var req ReunionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.validate(c, &req) {
		return
	}
	rel, ok := h.loadRelated(c, &req)
	if !ok {
		return
	}

	apply(&reunion, &req)
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&reunion).Error; err != nil {
			return err
		}
		return replaceRelated(tx, &reunion, rel)
	})
	if err != nil {
		h.saveError(c, err, "Failed to update meeting")
		return
	}
	c.JSON(http.StatusOK, reunion)
}

// Delete removes a meeting and everything it owns
// @Summary Delete a meeting
// @Tags reuniones
// @Param id path int true "Meeting ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string "Meeting has child meetings"
// @Security BearerAuth
// @Router /reuniones/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid meeting ID")
	if !ok {
		return
	}
	var reunion models.Reunion
	if err := h.db.First(&reunion, id).Error; err != nil {
		h.notFoundOr500(c, err, "Meeting not found", "Failed to fetch meeting")
		return
	}
	var archivos []string
	err := h.db.Model(&models.IntervencionDocumento{}).
		Where("intervencion_id IN (?)", h.db.Model(&models.Intervencion{}).Select("id").Where("reunion_id = ?", reunion.ID)).
		Pluck("archivo", &archivos).Error
	if err != nil {
		h.log.Error("failed to list attachments", zap.Uint("id", reunion.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting"})
		return
	}
	if err := models.DeleteReunion(h.db, &reunion); err != nil {
		if errors.Is(err, models.ErrHasChildren) {
			c.JSON(http.StatusConflict, gin.H{"error": "Meeting has child meetings"})
			return
		}
		h.log.Error("failed to delete meeting", zap.Uint("id", reunion.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting"})
		return
	}
	for _, archivo := range archivos {
		if err := h.media.Remove(archivo); err != nil {
			h.log.Warn("failed to remove attachment", zap.String("path", archivo), zap.Error(err))
		}
	}
	h.log.Info("meeting deleted", zap.Uint("id", reunion.ID), zap.Int("attachments", len(archivos)))
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted"})
}

func (h *Handler) load(id uint) (*models.Reunion, error) {
	var reunion models.Reunion
	err := h.db.
		Preload("Proyecto").
		Preload("Frente").
		Preload("Parent").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("reuniones.fecha DESC, reuniones.id DESC")
		}).
		Preload("GrupoTrabajo").
		Preload("Etiquetas").
		Preload("Documentos").
		Preload("Responsables").
		Preload("Intervenciones", func(db *gorm.DB) *gorm.DB {
			return db.Order("intervenciones.fecha_creacion ASC, intervenciones.id ASC")
		}).
		Preload("Intervenciones.Autor").
		Preload("Intervenciones.Documentos").
		Preload("Intervenciones.Comentarios", func(db *gorm.DB) *gorm.DB {
			return db.Order("comentarios.fecha_creacion ASC, comentarios.id ASC")
		}).
		Preload("Intervenciones.Comentarios.Autor").
		First(&reunion, id).Error
	if err != nil {
		return nil, err
	}
	return &reunion, nil
}

// validate checks the fields the database cannot: the status value and
// that referenced rows exist. Sqlite does not enforce foreign keys here.
func (h *Handler) validate(c *gin.Context, req *ReunionRequest) bool {
	fieldErrs := gin.H{}
	if req.Estado != "" && !req.Estado.Valid() {
		fieldErrs["estado"] = "Estado no válido."
	}
	if req.Fecha != nil && req.FechaFinalizacion != nil && req.FechaFinalizacion.Before(*req.Fecha) {
		fieldErrs["fecha_finalizacion"] = "La fecha de finalización no puede ser anterior a la fecha de inicio."
	}
	refs := []struct {
		field string
		id    *uint
		model interface{}
	}{
		{"proyecto", req.ProyectoID, &models.Proyecto{}},
		{"frente", req.FrenteID, &models.Frente{}},
		{"grupo_trabajo", req.GrupoTrabajoID, &models.GrupoTrabajo{}},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		var count int64
		if err := h.db.Model(ref.model).Where("id = ?", *ref.id).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate meeting"})
			return false
		}
		if count == 0 {
			fieldErrs[ref.field] = "No existe."
		}
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return false
	}
	return true
}

func (h *Handler) loadRelated(c *gin.Context, req *ReunionRequest) (*related, bool) {
	rel := &related{
		etiquetas:    []models.Etiqueta{},
		documentos:   []models.Documento{},
		responsables: []models.User{},
	}
	lookups := []struct {
		field string
		ids   []uint
		dest  interface{}
		found func() int
	}{
		{"etiquetas", req.EtiquetaIDs, &rel.etiquetas, func() int { return len(rel.etiquetas) }},
		{"documentos", req.DocumentoIDs, &rel.documentos, func() int { return len(rel.documentos) }},
		{"responsables", req.ResponsableIDs, &rel.responsables, func() int { return len(rel.responsables) }},
	}
	for _, l := range lookups {
		ids := dedupe(l.ids)
		if len(ids) == 0 {
			continue
		}
		if err := h.db.Where("id IN ?", ids).Find(l.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate meeting"})
			return nil, false
		}
		if l.found() != len(ids) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{l.field: "Alguno de los elementos no existe."}})
			return nil, false
		}
	}
	return rel, true
}

func apply(r *models.Reunion, req *ReunionRequest) {
	r.Titulo = strings.TrimSpace(req.Titulo)
	r.Descripcion = req.Descripcion
	r.ProyectoID = req.ProyectoID
	r.FrenteID = req.FrenteID
	r.ParentID = req.ParentID
	r.GrupoTrabajoID = req.GrupoTrabajoID
	if req.Fecha != nil {
		r.Fecha = *req.Fecha
	}
	r.FechaFinalizacion = req.FechaFinalizacion
	if req.Estado != "" {
		r.Estado = req.Estado
	}
}

func replaceRelated(tx *gorm.DB, r *models.Reunion, rel *related) error {
	if err := tx.Model(r).Association("Etiquetas").Replace(rel.etiquetas); err != nil {
		return err
	}
	if err := tx.Model(r).Association("Documentos").Replace(rel.documentos); err != nil {
		return err
	}
	return tx.Model(r).Association("Responsables").Replace(rel.responsables)
}

// saveError maps hierarchy violations to 400 and anything else to 500
func (h *Handler) saveError(c *gin.Context, err error, msg string) {
	var fe *models.FieldError
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{fe.Field: fe.Message}})
		return
	}
	h.log.Error(strings.ToLower(msg), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func (h *Handler) notFoundOr500(c *gin.Context, err error, notFound, failed string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	h.log.Error(strings.ToLower(failed), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": failed})
}

func parseID(c *gin.Context, msg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return 0, false
	}
	return uint(id), true
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// RegisterRoutes registers meeting routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reuniones", h.List)
	rg.POST("/reuniones", h.Create)
	rg.GET("/reuniones/:id", h.Get)
	rg.PUT("/reuniones/:id", h.Update)
	rg.DELETE("/reuniones/:id", h.Delete)

	rg.GET("/reuniones/:id/intervenciones", h.ListIntervenciones)
	rg.POST("/reuniones/:id/intervenciones", h.CreateIntervencion)
	rg.DELETE("/intervenciones/:id", h.DeleteIntervencion)
	rg.POST("/intervenciones/:id/comentarios", h.CreateComentario)
}
