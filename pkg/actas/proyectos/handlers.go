package proyectos

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Handler handles project-related requests
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

// NewHandler creates a new projects handler
func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, log: log.Named("proyectos"), now: time.Now}
}

// ProyectoRequest is the body for creating or replacing a project.
// Dates are YYYY-MM-DD; an empty string clears them.
type ProyectoRequest struct {
	Nombre              string  `json:"nombre" binding:"required,max=200"`
	Descripcion         string  `json:"descripcion"`
	FechaInicio         string  `json:"fecha_inicio"`
	FechaFin            string  `json:"fecha_fin"`
	TotalIntervenciones int     `json:"total_intervenciones" binding:"min=0"`
	IntervencionesRMBC  int     `json:"intervenciones_rmbc" binding:"min=0"`
	PorcentajeEjecucion float64 `json:"porcentaje_ejecucion" binding:"min=0,max=100"`
	EjecucionFinanciera float64 `json:"ejecucion_financiera" binding:"min=0"`
}

// ProyectoResponse is a project with its computed progress
type ProyectoResponse struct {
	models.Proyecto
	AvanceCalculado float64 `json:"avance_calculado"`
	ReunionCount    int64   `json:"reunion_count"`
}

func (h *Handler) toResponse(p models.Proyecto, count int64) ProyectoResponse {
	return ProyectoResponse{Proyecto: p, AvanceCalculado: p.AvanceCalculado(h.now()), ReunionCount: count}
}

// List returns projects ordered by name, optionally searched with q
// @Summary List projects
// @Description Projects ordered by name. q matches name or description, case-insensitively.
// @Tags proyectos
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} ProyectoResponse
// @Security BearerAuth
// @Router /proyectos [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&models.Proyecto{}).Order("nombre ASC")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(nombre) LIKE ? OR LOWER(descripcion) LIKE ?", like, like)
	}

	var proyectos []models.Proyecto
	if err := query.Find(&proyectos).Error; err != nil {
		h.log.Error("failed to list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	counts, err := h.reunionCounts()
	if err != nil {
		h.log.Error("failed to count meetings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	out := make([]ProyectoResponse, len(proyectos))
	for i, p := range proyectos {
		out[i] = h.toResponse(p, counts[p.ID])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) reunionCounts() (map[uint]int64, error) {
	var rows []struct {
		ProyectoID uint
		Count      int64
	}
	err := h.db.Model(&models.Reunion{}).
		Select("proyecto_id, COUNT(*) AS count").
		Where("proyecto_id IS NOT NULL").
		Group("proyecto_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.ProyectoID] = r.Count
	}
	return counts, nil
}

// Get returns a project with its meetings
// @Summary Get a project
// @Tags proyectos
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} ProyectoResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /proyectos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p models.Proyecto
	err := h.db.Preload("Reuniones", func(db *gorm.DB) *gorm.DB {
		return db.Order("reuniones.fecha DESC, reuniones.id DESC")
	}).Preload("Reuniones.Frente").First(&p, id).Error
	if err != nil {
		h.notFoundOr500(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(p, int64(len(p.Reuniones))))
}

// Create creates a project
// @Summary Create a project
// @Tags proyectos
// @Accept json
// @Produce json
// @Param request body ProyectoRequest true "Project"
// @Success 201 {object} ProyectoResponse
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Security BearerAuth
// @Router /proyectos [post]
func (h *Handler) Create(c *gin.Context) {
	var p models.Proyecto
	if !h.bind(c, &p) {
		return
	}
	if err := h.db.Create(&p).Error; err != nil {
		h.log.Error("failed to create project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	h.log.Info("project created", zap.Uint("id", p.ID), zap.String("nombre", p.Nombre))
	c.JSON(http.StatusCreated, h.toResponse(p, 0))
}

// Update replaces a project's fields
// @Summary Update a project
// @Tags proyectos
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body ProyectoRequest true "Project"
// @Success 200 {object} ProyectoResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /proyectos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p models.Proyecto
	if err := h.db.First(&p, id).Error; err != nil {
		h.notFoundOr500(c, err)
		return
	}
	if !h.bind(c, &p) {
		return
	}
	if err := h.db.Save(&p).Error; err != nil {
		h.log.Error("failed to update project", zap.Uint("id", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	var count int64
	h.db.Model(&models.Reunion{}).Where("proyecto_id = ?", p.ID).Count(&count)
	c.JSON(http.StatusOK, h.toResponse(p, count))
}

// Delete removes a project. Its meetings are kept and lose the reference.
// @Summary Delete a project
// @Tags proyectos
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /proyectos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p models.Proyecto
	if err := h.db.First(&p, id).Error; err != nil {
		h.notFoundOr500(c, err)
		return
	}
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reunion{}).Where("proyecto_id = ?", p.ID).UpdateColumn("proyecto_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		h.log.Error("failed to delete project", zap.Uint("id", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	h.log.Info("project deleted", zap.Uint("id", p.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// bind reads a ProyectoRequest into p, answering 400 on bad input
func (h *Handler) bind(c *gin.Context, p *models.Proyecto) bool {
	var req ProyectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}

	fieldErrs := gin.H{}
	inicio, err := parseFecha(req.FechaInicio)
	if err != nil {
		fieldErrs["fecha_inicio"] = "Introduzca una fecha válida (AAAA-MM-DD)."
	}
	fin, err := parseFecha(req.FechaFin)
	if err != nil {
		fieldErrs["fecha_fin"] = "Introduzca una fecha válida (AAAA-MM-DD)."
	}
	if inicio != nil && fin != nil && fin.Before(*inicio) {
		fieldErrs["fecha_fin"] = "La fecha de fin no puede ser anterior a la fecha de inicio."
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		fieldErrs["nombre"] = "Este campo es obligatorio."
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return false
	}

	p.Nombre = nombre
	p.Descripcion = req.Descripcion
	p.FechaInicio = inicio
	p.FechaFin = fin
	p.TotalIntervenciones = req.TotalIntervenciones
	p.IntervencionesRMBC = req.IntervencionesRMBC
	p.PorcentajeEjecucion = req.PorcentajeEjecucion
	p.EjecucionFinanciera = req.EjecucionFinanciera
	return true
}

// parseFecha accepts YYYY-MM-DD or RFC 3339. Empty means no date.
func parseFecha(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func (h *Handler) notFoundOr500(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	h.log.Error("failed to fetch project", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return 0, false
	}
	return uint(id), true
}

// RegisterRoutes registers project routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/proyectos", h.List)
	rg.POST("/proyectos", h.Create)
	rg.GET("/proyectos/:id", h.Get)
	rg.PUT("/proyectos/:id", h.Update)
	rg.DELETE("/proyectos/:id", h.Delete)
}
