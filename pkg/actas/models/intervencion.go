package models

import (
	"path/filepath"
	"time"
)

// Intervencion is a statement made during a meeting. Deleting the meeting
// deletes its interventions.
type Intervencion struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UpdatedAt     time.Time `json:"updated_at"`
	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	ReunionID     uint      `gorm:"not null;index" json:"reunion_id"`
	AutorID       uint      `gorm:"not null;index" json:"autor_id"`
	Contenido     string    `gorm:"not null" json:"contenido"`

	// Relationships
	Autor       User                    `gorm:"foreignKey:AutorID" json:"autor"`
	Comentarios []Comentario            `gorm:"foreignKey:IntervencionID" json:"comentarios,omitempty"`
	Documentos  []IntervencionDocumento `gorm:"foreignKey:IntervencionID" json:"documentos,omitempty"`
}

func (Intervencion) TableName() string { return "intervenciones" }

// Comentario is a reply to an intervention
type Comentario struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UpdatedAt      time.Time `json:"updated_at"`
	FechaCreacion  time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	IntervencionID uint      `gorm:"not null;index" json:"intervencion_id"`
	AutorID        uint      `gorm:"not null;index" json:"autor_id"`
	Contenido      string    `gorm:"not null" json:"contenido"`

	// Relationships
	Autor User `gorm:"foreignKey:AutorID" json:"autor"`
}

func (Comentario) TableName() string { return "comentarios" }

// IntervencionDocumento is a file attached to an intervention
type IntervencionDocumento struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	IntervencionID uint      `gorm:"not null;index" json:"intervencion_id"`
	Archivo        string    `json:"archivo"`
	Nombre         string    `json:"nombre"`
}

func (IntervencionDocumento) TableName() string { return "intervencion_documentos" }

// DisplayName returns the optional name, or the stored file's base name
func (d IntervencionDocumento) DisplayName() string {
	if d.Nombre != "" {
		return d.Nombre
	}
	return filepath.Base(d.Archivo)
}
