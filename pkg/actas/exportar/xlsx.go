package exportar

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/mikepea/actas/pkg/actas/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet of the activities workbook
const SheetName = "Actividades"

// XLSXContentType is the MIME type of the workbook
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Header is the fixed first row of the activities workbook
var Header = []string{
	"ID", "Título", "Proyecto", "Frente", "Grupo",
	"Fecha Inicio", "Fecha Finalización", "Estado",
	"Etiquetas", "Descripción", "Vencido", "Tiempo Restante",
}

const dateLayout = "02/01/2006"

// Vencimiento returns the overdue indicator and the remaining-time phrase
// for an end date. Meetings without an end date give "N/A" and "".
func Vencimiento(fin *time.Time, today time.Time) (vencido, texto string) {
	if fin == nil {
		return "N/A", ""
	}
	days := models.DaysBetween(today, *fin)
	switch {
	case days < 0:
		return "Sí", fmt.Sprintf("Vencido hace %d días", -days)
	case days == 0:
		return "No", "Vence hoy"
	default:
		return "No", fmt.Sprintf("Faltan %d días", days)
	}
}

// Row renders one meeting as workbook cells. Missing relations are empty.
func Row(r models.Reunion, today time.Time) []interface{} {
	var proyecto, frente, grupo, inicio, fin string
	if r.Proyecto != nil {
		proyecto = r.Proyecto.Nombre
	}
	if r.Frente != nil {
		frente = r.Frente.Nombre
	}
	if r.GrupoTrabajo != nil {
		grupo = r.GrupoTrabajo.Nombre
	}
	if !r.Fecha.IsZero() {
		inicio = r.Fecha.Format(dateLayout)
	}
	if r.FechaFinalizacion != nil {
		fin = r.FechaFinalizacion.Format(dateLayout)
	}

	etiquetas := make([]string, 0, len(r.Etiquetas))
	for _, e := range r.Etiquetas {
		etiquetas = append(etiquetas, e.Nombre)
	}
	sort.Strings(etiquetas)

	vencido, texto := Vencimiento(r.FechaFinalizacion, today)
	return []interface{}{
		r.ID, r.Titulo, proyecto, frente, grupo,
		inicio, fin, string(r.Estado),
		strings.Join(etiquetas, ", "), r.Descripcion, vencido, texto,
	}
}

// Workbook builds the activities workbook: the header then one row per meeting
func Workbook(rows []models.Reunion, today time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := Row(r, today)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteWorkbook builds the workbook and writes it to w
func WriteWorkbook(w io.Writer, rows []models.Reunion, today time.Time) error {
	f, err := Workbook(rows, today)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}
