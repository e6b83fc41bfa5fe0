// Package informes serves the report, chart and export endpoints.
package informes

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/exportar"
	"github.com/mikepea/actas/pkg/actas/filtros"
	"github.com/mikepea/actas/pkg/actas/metrics"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pdfContentType = "application/pdf"

// Options configures a Handler
type Options struct {
	// StaticDir holds img/banner.png and img/footer.png for the PDFs
	StaticDir string
	Metrics   *metrics.Metrics
	Now       func() time.Time
}

// Handler handles report and export requests
type Handler struct {
	db        *gorm.DB
	log       *zap.Logger
	staticDir string
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewHandler creates a new reports handler
func NewHandler(db *gorm.DB, opts Options, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Handler{
		db:        db,
		log:       log.Named("informes"),
		staticDir: opts.StaticDir,
		metrics:   opts.Metrics,
		now:       opts.Now,
	}
}

// InformeResponse is the tabular meeting report
type InformeResponse struct {
	Reuniones []filtros.ReunionAnotada `json:"reuniones"`
	Filtros   filtros.Filtros          `json:"filtros"`
	Estados   []models.Estado          `json:"estados"`
	Proyectos []models.Proyecto        `json:"proyectos"`
	Frentes   []models.Frente          `json:"frentes"`
}

// GraficoResponse holds the chart series: meetings per status, and
// meetings split by due date
type GraficoResponse struct {
	Estados        []string        `json:"estados"`
	Cantidades     []int64         `json:"cantidades"`
	VencidoLabels  []string        `json:"vencido_labels"`
	VencidoCounts  []int           `json:"vencido_counts"`
	Filtros        filtros.Filtros `json:"filtros"`
	TotalReuniones int             `json:"total_reuniones"`
}

// ActasResponse lists the minutes of one project, or all of them
type ActasResponse struct {
	Reuniones            []models.Reunion  `json:"reuniones"`
	Proyectos            []models.Proyecto `json:"proyectos"`
	ProyectoSeleccionado *uint             `json:"proyecto_seleccionado"`
}

// VencidoLabels names the due-date chart buckets, in order
var VencidoLabels = []string{"Activas", "Vencidas", "Sin fecha"}

// Informe returns every meeting matching the filters, annotated with its
// due-date fields
// @Summary Meeting report
// @Tags informes
// @Produce json
// @Param proyecto query int false "Project ID"
// @Param frente query int false "Front ID"
// @Param estado query string false "Status"
// @Param responsable query int false "Responsible user ID"
// @Success 200 {object} InformeResponse
// @Security BearerAuth
// @Router /reuniones/informe [get]
func (h *Handler) Informe(c *gin.Context) {
	f := filtros.Parse(c.Request.URL.Query())

	var reuniones []models.Reunion
	err := f.Apply(h.db.Model(&models.Reunion{})).
		Preload("Proyecto").
		Preload("Frente").
		Preload("GrupoTrabajo").
		Preload("Etiquetas").
		Order("reuniones.fecha DESC, reuniones.id DESC").
		Find(&reuniones).Error
	if err != nil {
		h.log.Error("failed to load report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}

	resp := InformeResponse{
		Reuniones: filtros.AnotarTodas(reuniones, h.now()),
		Filtros:   f,
		Estados:   models.Estados,
	}
	if err := h.db.Order("nombre ASC").Find(&resp.Proyectos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}
	if err := h.db.Order("nombre ASC").Find(&resp.Frentes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fronts"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Grafico returns chart data for the meetings matching the filters
// @Summary Meeting chart data
// @Description Counts per status (statuses present only, ordered by value) and Activas/Vencidas/Sin fecha counts by end date
// @Tags informes
// @Produce json
// @Param proyecto query int false "Project ID"
// @Param frente query int false "Front ID"
// @Param estado query string false "Status"
// @Param responsable query int false "Responsible user ID"
// @Success 200 {object} GraficoResponse
// @Security BearerAuth
// @Router /reuniones/grafico [get]
func (h *Handler) Grafico(c *gin.Context) {
	f := filtros.Parse(c.Request.URL.Query())

	var porEstado []struct {
		Estado   string
		Cantidad int64
	}
	err := f.Apply(h.db.Model(&models.Reunion{})).
		Select("reuniones.estado AS estado, COUNT(reuniones.id) AS cantidad").
		Group("reuniones.estado").
		Order("reuniones.estado ASC").
		Scan(&porEstado).Error
	if err != nil {
		h.log.Error("failed to count meetings by status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build chart"})
		return
	}

	var fechas []struct {
		FechaFinalizacion *time.Time
	}
	if err := f.Apply(h.db.Model(&models.Reunion{})).Select("reuniones.fecha_finalizacion").Scan(&fechas).Error; err != nil {
		h.log.Error("failed to load end dates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build chart"})
		return
	}

	resp := GraficoResponse{
		Estados:        make([]string, len(porEstado)),
		Cantidades:     make([]int64, len(porEstado)),
		VencidoLabels:  VencidoLabels,
		Filtros:        f,
		TotalReuniones: len(fechas),
	}
	for i, e := range porEstado {
		resp.Estados[i] = e.Estado
		resp.Cantidades[i] = e.Cantidad
	}
	fines := make([]*time.Time, len(fechas))
	for i, r := range fechas {
		fines[i] = r.FechaFinalizacion
	}
	resp.VencidoCounts = ContarVencimientos(fines, h.now())
	c.JSON(http.StatusOK, resp)
}

// ContarVencimientos splits end dates into active (today or later), overdue
// (before today) and undated, comparing calendar days only.
func ContarVencimientos(fines []*time.Time, today time.Time) []int {
	var activas, vencidas, sinFecha int
	for _, fin := range fines {
		switch {
		case fin == nil:
			sinFecha++
		case models.DaysBetween(today, *fin) < 0:
			vencidas++
		default:
			activas++
		}
	}
	return []int{activas, vencidas, sinFecha}
}

// Actas lists meetings, optionally of one project, with the project choices
// @Summary Minutes by project
// @Tags informes
// @Produce json
// @Param proyecto query int false "Project ID"
// @Success 200 {object} ActasResponse
// @Security BearerAuth
// @Router /actas [get]
func (h *Handler) Actas(c *gin.Context) {
	f := filtros.Filtros{ProyectoID: filtros.Parse(c.Request.URL.Query()).ProyectoID}

	resp := ActasResponse{ProyectoSeleccionado: f.ProyectoID}
	err := f.Apply(h.db.Model(&models.Reunion{})).
		Preload("Proyecto").
		Preload("Frente").
		Order("reuniones.fecha DESC, reuniones.id DESC").
		Find(&resp.Reuniones).Error
	if err != nil {
		h.log.Error("failed to list minutes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}
	if err := h.db.Order("nombre ASC").Find(&resp.Proyectos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportarExcel sends the filtered meetings as Actividades.xlsx
// @Summary Export meetings to Excel
// @Tags informes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param proyecto query int false "Project ID"
// @Param frente query int false "Front ID"
// @Param estado query string false "Status"
// @Param responsable query int false "Responsible user ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /exportar_excel [get]
func (h *Handler) ExportarExcel(c *gin.Context) {
	f := filtros.Parse(c.Request.URL.Query())

	var reuniones []models.Reunion
	err := f.Apply(h.db.Model(&models.Reunion{})).
		Preload("Proyecto").
		Preload("Frente").
		Preload("GrupoTrabajo").
		Preload("Etiquetas").
		Order("reuniones.id ASC").
		Find(&reuniones).Error
	if err != nil {
		h.metrics.ReportGenerated("xlsx", err)
		h.log.Error("failed to load meetings for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}

	var buf bytes.Buffer
	err = exportar.WriteWorkbook(&buf, reuniones, h.now())
	h.metrics.ReportGenerated("xlsx", err)
	if err != nil {
		h.log.Error("failed to build workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	h.send(c, "Actividades.xlsx", exportar.XLSXContentType, buf.Bytes())
}

// ActaPDF sends one meeting's minutes as Informe_<id>.pdf
// @Summary Meeting minutes PDF
// @Tags informes
// @Produce application/pdf
// @Param id path int true "Meeting ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Meeting not found"
// @Security BearerAuth
// @Router /acta/{id}/pdf [get]
func (h *Handler) ActaPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}
	reunion, err := exportar.LoadReunion(h.db, uint(id))
	if err != nil {
		h.loadError(c, err, "Meeting not found")
		return
	}

	var buf bytes.Buffer
	err = exportar.ActaPDF(&buf, *reunion, exportar.FindAssets(h.staticDir))
	h.metrics.ReportGenerated("acta_pdf", err)
	if err != nil {
		h.log.Error("failed to render minutes", zap.Uint("reunion_id", reunion.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF"})
		return
	}
	h.send(c, fmt.Sprintf("Informe_%d.pdf", reunion.ID), pdfContentType, buf.Bytes())
}

// ProyectoPDF sends a project's activity tree as Proyecto_<nombre>.pdf
// @Summary Project report PDF
// @Tags informes
// @Produce application/pdf
// @Param id path int true "Project ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /proyecto/{id}/exportar_pdf [get]
func (h *Handler) ProyectoPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}
	report, err := exportar.BuildProjectReport(h.db, uint(id), h.now())
	if err != nil {
		h.loadError(c, err, "Project not found")
		return
	}

	var buf bytes.Buffer
	err = exportar.ProyectoPDF(&buf, report, exportar.FindAssets(h.staticDir))
	h.metrics.ReportGenerated("proyecto_pdf", err)
	if err != nil {
		h.log.Error("failed to render project report", zap.Uint("proyecto_id", report.Proyecto.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF"})
		return
	}
	h.send(c, "Proyecto_"+report.Proyecto.Nombre+".pdf", pdfContentType, buf.Bytes())
}

// Construccion is the "under construction" placeholder
// @Summary Under construction
// @Tags informes
// @Produce json
// @Success 200 {object} map[string]string
// @Router /construccion [get]
func (h *Handler) Construccion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sitio en construcción"})
}

// send writes data as a download. Non-ASCII file names are encoded per RFC 2231.
func (h *Handler) send(c *gin.Context, filename, contentType string, data []byte) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, contentType, data)
}

func (h *Handler) loadError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	h.log.Error("failed to load report data", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report data"})
}

// RegisterRoutes registers the authenticated report routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reuniones/informe", h.Informe)
	rg.GET("/reuniones/grafico", h.Grafico)
	rg.GET("/actas", h.Actas)
	rg.GET("/exportar_excel", h.ExportarExcel)
	rg.GET("/acta/:id/pdf", h.ActaPDF)
	rg.GET("/proyecto/:id/exportar_pdf", h.ProyectoPDF)
}

// RegisterPublicRoutes registers the routes that need no login
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/construccion", h.Construccion)
}
