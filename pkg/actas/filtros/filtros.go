// Package filtros narrows meeting queries from request parameters and
// derives the due-date annotations shown next to each meeting.
package filtros

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mikepea/actas/pkg/actas/models"
	"gorm.io/gorm"
)

// SinFrente groups meetings that have no front
const SinFrente = "Sin frente"

// PageSize is the number of meetings per list page
const PageSize = 9

// Filtros holds the optional list filters. Nil means "not filtered".
type Filtros struct {
	ProyectoID    *uint         `json:"proyecto,omitempty"`
	FrenteID      *uint         `json:"frente,omitempty"`
	ResponsableID *uint         `json:"responsable,omitempty"`
	Estado        models.Estado `json:"estado,omitempty"`
}

// Parse reads proyecto, frente, responsable and estado from q. Values that
// do not parse as IDs are ignored rather than rejected.
func Parse(q url.Values) Filtros {
	return Filtros{
		ProyectoID:    parseID(q.Get("proyecto")),
		FrenteID:      parseID(q.Get("frente")),
		ResponsableID: parseID(q.Get("responsable")),
		Estado:        models.Estado(strings.TrimSpace(q.Get("estado"))),
	}
}

func parseID(s string) *uint {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(n)
	return &id
}

// Apply narrows a query over reuniones by exact match on each set filter
func (f Filtros) Apply(db *gorm.DB) *gorm.DB {
	if f.ProyectoID != nil {
		db = db.Where("reuniones.proyecto_id = ?", *f.ProyectoID)
	}
	if f.FrenteID != nil {
		db = db.Where("reuniones.frente_id = ?", *f.FrenteID)
	}
	if f.Estado != "" {
		db = db.Where("reuniones.estado = ?", f.Estado)
	}
	if f.ResponsableID != nil {
		db = db.Where("reuniones.id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Table("reunion_responsables").
				Select("reunion_id").
				Where("user_id = ?", *f.ResponsableID))
	}
	return db
}

// OrdenPorFrente sorts by front name, meetings without a front last, then
// newest start date first.
func OrdenPorFrente(db *gorm.DB) *gorm.DB {
	return db.Joins("LEFT JOIN frentes ON frentes.id = reuniones.frente_id").
		Order("frentes.nombre IS NULL, frentes.nombre ASC, reuniones.fecha DESC, reuniones.id DESC")
}

// ReunionAnotada is a meeting with its derived due-date fields
type ReunionAnotada struct {
	models.Reunion
	DaysRemaining *int `json:"days_remaining"`
	Overdue       bool `json:"overdue"`
}

// Anotar derives days remaining (absolute) and the overdue flag from the
// meeting's end date. Meetings without an end date have no days remaining
// and are never overdue.
func Anotar(r models.Reunion, today time.Time) ReunionAnotada {
	a := ReunionAnotada{Reunion: r}
	if r.FechaFinalizacion == nil {
		return a
	}
	diff := models.DaysBetween(today, *r.FechaFinalizacion)
	a.Overdue = diff < 0
	if diff < 0 {
		diff = -diff
	}
	a.DaysRemaining = &diff
	return a
}

// AnotarTodas annotates every meeting in rs
func AnotarTodas(rs []models.Reunion, today time.Time) []ReunionAnotada {
	out := make([]ReunionAnotada, 0, len(rs))
	for _, r := range rs {
		out = append(out, Anotar(r, today))
	}
	return out
}

// Grupo is a run of meetings sharing a front name
type Grupo struct {
	Frente    string           `json:"frente"`
	Reuniones []ReunionAnotada `json:"reuniones"`
	Count     int              `json:"count"`
}

// AgruparPorFrente splits rs into consecutive runs with the same front name,
// keeping the input order. rs must already be sorted by front.
func AgruparPorFrente(rs []ReunionAnotada) []Grupo {
	groups := []Grupo{}
	for _, r := range rs {
		name := SinFrente
		if r.Frente != nil {
			name = r.Frente.Nombre
		}
		if n := len(groups); n > 0 && groups[n-1].Frente == name {
			groups[n-1].Reuniones = append(groups[n-1].Reuniones, r)
			groups[n-1].Count++
			continue
		}
		groups = append(groups, Grupo{Frente: name, Reuniones: []ReunionAnotada{r}, Count: 1})
	}
	return groups
}
