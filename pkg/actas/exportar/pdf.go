package exportar

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/mikepea/actas/pkg/actas/models"
)

// Page geometry in millimetres (A4)
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginSide   = 20.0
	marginTop    = 50.0
	marginBottom = 30.0
	bannerTop    = 10.0
	bannerHeight = 30.0
	footerHeight = 20.0
	lineHeight   = 5.0
	indentStep   = 8.0
)

// Placeholders for missing optional fields
const (
	SinFecha       = "Sin fecha"
	SinDescripcion = "Sin descripción"
	SinProyecto    = "Sin proyecto"
	SinFrente      = "Sin frente"
)

type rgb struct{ r, g, b int }

var (
	black     = rgb{0, 0, 0}
	red       = rgb{200, 0, 0}
	green     = rgb{0, 128, 0}
	navy      = rgb{20, 40, 120}
	darkAmber = rgb{170, 90, 0}
)

// Field is one "label: value" metadata line
type Field struct {
	Label string
	Value string
}

// ReunionFields returns the metadata lines of a meeting with placeholders
// for missing values
func ReunionFields(r models.Reunion) []Field {
	fecha := SinFecha
	if !r.Fecha.IsZero() {
		fecha = r.Fecha.Format(dateLayout)
	}
	proyecto := SinProyecto
	if r.Proyecto != nil {
		proyecto = r.Proyecto.Nombre
	}
	frente := SinFrente
	if r.Frente != nil {
		frente = r.Frente.Nombre
	}
	descripcion := SinDescripcion
	if strings.TrimSpace(r.Descripcion) != "" {
		descripcion = r.Descripcion
	}
	fields := []Field{
		{"Título", r.Titulo},
		{"Fecha", fecha},
		{"Proyecto", proyecto},
		{"Frente", frente},
		{"Estado", r.Estado.Label()},
	}
	if r.FechaFinalizacion != nil {
		fields = append(fields, Field{"Fecha de finalización", r.FechaFinalizacion.Format(dateLayout)})
	}
	return append(fields, Field{"Descripción", descripcion})
}

// ProyectoFields returns the metadata lines of a project report header
func ProyectoFields(p models.Proyecto, avance float64) []Field {
	descripcion := SinDescripcion
	if strings.TrimSpace(p.Descripcion) != "" {
		descripcion = p.Descripcion
	}
	inicio, fin := SinFecha, SinFecha
	if p.FechaInicio != nil {
		inicio = p.FechaInicio.Format(dateLayout)
	}
	if p.FechaFin != nil {
		fin = p.FechaFin.Format(dateLayout)
	}
	return []Field{
		{"Fecha de inicio", inicio},
		{"Fecha de fin", fin},
		{"Descripción", descripcion},
		{"Avance calculado", fmt.Sprintf("%.2f %%", avance)},
		{"Porcentaje de ejecución", fmt.Sprintf("%.2f %%", p.PorcentajeEjecucion)},
		{"Ejecución financiera", fmt.Sprintf("%.2f", p.EjecucionFinanciera)},
		{"Total de intervenciones", fmt.Sprintf("%d", p.TotalIntervenciones)},
		{"Intervenciones RMBC", fmt.Sprintf("%d", p.IntervencionesRMBC)},
	}
}

// document wraps fpdf with the report layout
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument(title string, assets Assets) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle(title, true)
	pdf.SetCreator("actas", true)

	if assets.Banner != "" {
		pdf.SetHeaderFunc(func() {
			pdf.ImageOptions(assets.Banner, 0, bannerTop, pageWidth, bannerHeight, false, fpdf.ImageOptions{}, 0, "")
		})
	}
	if assets.Footer != "" {
		pdf.SetFooterFunc(func() {
			pdf.ImageOptions(assets.Footer, 0, pageHeight-footerHeight, pageWidth, footerHeight, false, fpdf.ImageOptions{}, 0, "")
		})
	}

	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.AddPage()
	return d
}

func (d *document) color(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *document) indent(mm float64) {
	d.pdf.SetLeftMargin(marginSide + mm)
	d.pdf.SetX(marginSide + mm)
}

func (d *document) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.color(black)
	d.pdf.CellFormat(0, 10, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.Ln(4)
}

func (d *document) heading(text string, size float64, c rgb, indent float64) {
	d.indent(indent)
	d.pdf.SetFont("Helvetica", "B", size)
	d.color(c)
	d.pdf.MultiCell(0, size*0.5, d.tr(text), "", "L", false)
	d.pdf.Ln(1)
	d.color(black)
}

func (d *document) fields(fields []Field, indent float64) {
	d.indent(indent)
	for _, f := range fields {
		d.pdf.SetFont("Helvetica", "B", 10)
		d.pdf.Write(lineHeight, d.tr(f.Label+": "))
		d.pdf.SetFont("Helvetica", "", 10)
		d.pdf.Write(lineHeight, d.tr(f.Value))
		d.pdf.Ln(lineHeight + 1)
	}
	d.pdf.Ln(3)
}

// statement writes "author: content" with the author coloured
func (d *document) statement(author, content string, c rgb, style string, indent float64) {
	d.indent(indent)
	d.pdf.SetFont("Helvetica", style, 10)
	d.color(c)
	d.pdf.Write(lineHeight, d.tr(author))
	d.color(black)
	d.pdf.Write(lineHeight, d.tr(": "+content))
	d.pdf.Ln(lineHeight + 1)
}

func (d *document) discussion(intervenciones []models.Intervencion, indent float64) {
	for _, i := range intervenciones {
		d.statement(i.Autor.FullName(), i.Contenido, red, "", indent)
		for _, c := range i.Comentarios {
			d.statement(c.Autor.FullName(), c.Contenido, green, "I", indent+10)
		}
		d.pdf.Ln(2)
	}
	d.indent(0)
}

func (d *document) output(w io.Writer) error {
	if err := d.pdf.Error(); err != nil {
		return err
	}
	return d.pdf.Output(w)
}

// ActaPDF renders one meeting with its interventions and comments
func ActaPDF(w io.Writer, r models.Reunion, assets Assets) error {
	d := newDocument("Informe de actividad", assets)
	d.title("Informe de actividad")
	d.fields(ReunionFields(r), 0)

	if len(r.Intervenciones) > 0 {
		d.heading("Intervenciones y Comentarios", 13, black, 0)
		d.discussion(r.Intervenciones, 0)
	}
	return d.output(w)
}

// ProyectoPDF renders a project report: activities, their discussion, then
// their tasks with their own discussion, each level indented further
func ProyectoPDF(w io.Writer, report *ProjectReport, assets Assets) error {
	d := newDocument("Proyecto "+report.Proyecto.Nombre, assets)
	d.title("Proyecto: " + report.Proyecto.Nombre)
	d.fields(ProyectoFields(report.Proyecto, report.Avance), 0)

	for _, a := range report.Actividades {
		d.heading(fmt.Sprintf("Actividad: %s (%s)", a.Reunion.Titulo, fechaCorta(a.Reunion)), 13, navy, 0)
		d.fields(ReunionFields(a.Reunion), 0)
		if len(a.Reunion.Intervenciones) > 0 {
			d.discussion(a.Reunion.Intervenciones, indentStep)
		}

		for _, t := range a.Tareas {
			d.heading(fmt.Sprintf("Tarea: %s (%s)", t.Titulo, fechaCorta(t)), 11, darkAmber, indentStep)
			d.fields(ReunionFields(t), indentStep)
			if len(t.Intervenciones) > 0 {
				d.discussion(t.Intervenciones, 2*indentStep)
			}
		}
		d.indent(0)
		d.pdf.Ln(4)
	}
	return d.output(w)
}

func fechaCorta(r models.Reunion) string {
	if r.Fecha.IsZero() {
		return SinFecha
	}
	return r.Fecha.Format(dateLayout)
}
