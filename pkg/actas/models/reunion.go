package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Estado is the user-driven status of a meeting
type Estado string

const (
	EstadoSinIniciar Estado = "sin_iniciar"
	EstadoEnProceso  Estado = "en_proceso"
	EstadoCerrada    Estado = "cerrada"
)

// Estados lists the statuses in display order
var Estados = []Estado{EstadoSinIniciar, EstadoEnProceso, EstadoCerrada}

// Valid reports whether e is one of the known statuses
func (e Estado) Valid() bool {
	for _, s := range Estados {
		if s == e {
			return true
		}
	}
	return false
}

// Label is the human-readable status used in exports
func (e Estado) Label() string {
	switch e {
	case EstadoSinIniciar:
		return "Sin iniciar"
	case EstadoEnProceso:
		return "En proceso"
	case EstadoCerrada:
		return "Cerrada"
	}
	return string(e)
}

// ErrHasChildren is returned when deleting a meeting that still owns tasks
var ErrHasChildren = errors.New("meeting has child meetings")

// Reunion represents a meeting or task. A meeting under an activity front may
// own child meetings (tasks) through ParentID.
type Reunion struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	ProyectoID        *uint      `gorm:"index" json:"proyecto_id"`
	FrenteID          *uint      `gorm:"index" json:"frente_id"`
	ParentID          *uint      `gorm:"index" json:"parent_id"`
	GrupoTrabajoID    *uint      `gorm:"index" json:"grupo_trabajo_id"`
	Titulo            string     `gorm:"not null" json:"titulo"`
	Descripcion       string     `json:"descripcion"`
	Fecha             time.Time  `gorm:"index" json:"fecha"`
	FechaFinalizacion *time.Time `json:"fecha_finalizacion"`
	Estado            Estado     `gorm:"type:varchar(20);not null;default:'sin_iniciar';index" json:"estado"`

	// Relationships
	Proyecto       *Proyecto      `gorm:"foreignKey:ProyectoID" json:"proyecto,omitempty"`
	Frente         *Frente        `gorm:"foreignKey:FrenteID" json:"frente,omitempty"`
	Parent         *Reunion       `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children       []Reunion      `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	GrupoTrabajo   *GrupoTrabajo  `gorm:"foreignKey:GrupoTrabajoID" json:"grupo_trabajo,omitempty"`
	Etiquetas      []Etiqueta     `gorm:"many2many:reunion_etiquetas;" json:"etiquetas,omitempty"`
	Documentos     []Documento    `gorm:"many2many:reunion_documentos;" json:"documentos,omitempty"`
	Responsables   []User         `gorm:"many2many:reunion_responsables;" json:"responsables,omitempty"`
	Intervenciones []Intervencion `gorm:"foreignKey:ReunionID" json:"intervenciones,omitempty"`
}

func (Reunion) TableName() string { return "reuniones" }

// BeforeSave rejects hierarchy violations on every save path, not only the
// HTTP handlers. The parent and its front are the only lookup it needs.
func (r *Reunion) BeforeSave(tx *gorm.DB) error {
	if r.Estado == "" {
		r.Estado = EstadoSinIniciar
	}
	if r.Fecha.IsZero() {
		r.Fecha = time.Now()
	}
	if r.ParentID == nil {
		return nil
	}
	if r.ID != 0 && *r.ParentID == r.ID {
		return ValidateHierarchy(r, &Reunion{ID: r.ID})
	}

	var parent Reunion
	err := tx.Session(&gorm.Session{NewDB: true}).Preload("Frente").First(&parent, *r.ParentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &FieldError{Field: "parent", Message: "La reunión padre no existe."}
	}
	if err != nil {
		return err
	}
	return ValidateHierarchy(r, &parent)
}

// BeforeDelete blocks deleting a meeting while child meetings point at it
func (r *Reunion) BeforeDelete(tx *gorm.DB) error {
	if r.ID == 0 {
		return nil
	}
	var count int64
	if err := tx.Session(&gorm.Session{NewDB: true}).Model(&Reunion{}).Where("parent_id = ?", r.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrHasChildren
	}
	return nil
}

// DeleteReunion removes a meeting together with everything it owns:
// interventions, their comments and attachments, and its tag, document and
// responsible links. Referenced projects, fronts and documents are kept.
func DeleteReunion(db *gorm.DB, r *Reunion) error {
	return db.Transaction(func(tx *gorm.DB) error {
		intervenciones := tx.Model(&Intervencion{}).Select("id").Where("reunion_id = ?", r.ID)
		if err := tx.Where("intervencion_id IN (?)", intervenciones).Delete(&Comentario{}).Error; err != nil {
			return err
		}
		if err := tx.Where("intervencion_id IN (?)", intervenciones).Delete(&IntervencionDocumento{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reunion_id = ?", r.ID).Delete(&Intervencion{}).Error; err != nil {
			return err
		}
		return tx.Select("Etiquetas", "Documentos", "Responsables").Delete(r).Error
	})
}
