// Package exportar builds the Excel and PDF exports.
package exportar

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mikepea/actas/pkg/actas/models"
	"gorm.io/gorm"
)

// Assets are the page decoration images. Empty paths are skipped.
type Assets struct {
	Banner string
	Footer string
}

// FindAssets looks up img/banner.png and img/footer.png under staticDir
func FindAssets(staticDir string) Assets {
	find := func(name string) string {
		p := filepath.Join(staticDir, "img", name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
		return ""
	}
	return Assets{Banner: find("banner.png"), Footer: find("footer.png")}
}

// ProjectReport is a project with its activities and their tasks
type ProjectReport struct {
	Proyecto    models.Proyecto
	Avance      float64
	Actividades []Actividad
}

// Actividad is an activity meeting and the tasks under it
type Actividad struct {
	Reunion models.Reunion
	Tareas  []models.Reunion
}

func withDiscussion(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Proyecto").
		Preload("Frente").
		Preload("Intervenciones", func(db *gorm.DB) *gorm.DB {
			return db.Order("intervenciones.fecha_creacion ASC, intervenciones.id ASC")
		}).
		Preload("Intervenciones.Autor").
		Preload("Intervenciones.Comentarios", func(db *gorm.DB) *gorm.DB {
			return db.Order("comentarios.fecha_creacion ASC, comentarios.id ASC")
		}).
		Preload("Intervenciones.Comentarios.Autor")
}

// LoadReunion loads one meeting with its discussion
func LoadReunion(db *gorm.DB, id uint) (*models.Reunion, error) {
	var r models.Reunion
	if err := withDiscussion(db).First(&r, id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// BuildProjectReport loads the project, its activity-typed meetings and,
// under each, the task-typed meetings whose parent it is.
func BuildProjectReport(db *gorm.DB, id uint, today time.Time) (*ProjectReport, error) {
	var p models.Proyecto
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}

	var actividades []models.Reunion
	err := withDiscussion(db).
		Joins("JOIN frentes ON frentes.id = reuniones.frente_id").
		Where("reuniones.proyecto_id = ? AND frentes.tipo = ?", id, models.FrenteActividad).
		Order("reuniones.fecha ASC, reuniones.id ASC").
		Find(&actividades).Error
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}

	report := &ProjectReport{Proyecto: p, Avance: p.AvanceCalculado(today)}
	if len(actividades) == 0 {
		return report, nil
	}

	ids := make([]uint, len(actividades))
	for i, a := range actividades {
		ids[i] = a.ID
	}

	var tareas []models.Reunion
	err = withDiscussion(db).
		Joins("JOIN frentes ON frentes.id = reuniones.frente_id").
		Where("reuniones.parent_id IN ? AND frentes.tipo = ?", ids, models.FrenteTarea).
		Order("reuniones.fecha ASC, reuniones.id ASC").
		Find(&tareas).Error
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	byParent := map[uint][]models.Reunion{}
	for _, t := range tareas {
		byParent[*t.ParentID] = append(byParent[*t.ParentID], t)
	}
	for _, a := range actividades {
		report.Actividades = append(report.Actividades, Actividad{Reunion: a, Tareas: byParent[a.ID]})
	}
	return report, nil
}
