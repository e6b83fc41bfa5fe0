package models

import (
	"math"
	"time"
)

// Proyecto represents a project. Meetings reference it but are not owned by it.
type Proyecto struct {
	ID                  uint       `gorm:"primarykey" json:"id"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	Nombre              string     `gorm:"not null;index" json:"nombre"`
	Descripcion         string     `json:"descripcion"`
	FechaInicio         *time.Time `json:"fecha_inicio"`
	FechaFin            *time.Time `json:"fecha_fin"`
	TotalIntervenciones int        `gorm:"default:0" json:"total_intervenciones"`
	IntervencionesRMBC  int        `gorm:"column:intervenciones_rmbc;default:0" json:"intervenciones_rmbc"`
	PorcentajeEjecucion float64    `gorm:"default:0" json:"porcentaje_ejecucion"`
	EjecucionFinanciera float64    `gorm:"default:0" json:"ejecucion_financiera"`

	// Relationships
	Reuniones []Reunion `gorm:"foreignKey:ProyectoID" json:"reuniones,omitempty"`
}

func (Proyecto) TableName() string { return "proyectos" }

// AvanceCalculado returns the share of the project's date range that has
// elapsed on the given day, as a percentage in [0,100] rounded to two
// decimals. Projects without both dates, or with an empty range, report 0.
func (p Proyecto) AvanceCalculado(today time.Time) float64 {
	if p.FechaInicio == nil || p.FechaFin == nil {
		return 0
	}
	total := DaysBetween(*p.FechaInicio, *p.FechaFin)
	if total <= 0 {
		return 0
	}
	elapsed := DaysBetween(*p.FechaInicio, today)
	pct := float64(elapsed) / float64(total) * 100
	pct = math.Max(0, math.Min(100, pct))
	return math.Round(pct*100) / 100
}

// DaysBetween returns the number of calendar days from a to b, ignoring the
// time of day. It is negative when b falls before a.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
