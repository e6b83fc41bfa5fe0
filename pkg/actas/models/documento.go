package models

import (
	"path/filepath"
	"time"
)

// Documento is an uploaded file that can be attached to many meetings
type Documento struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Archivo     string    `gorm:"not null" json:"archivo"` // Path relative to the media root
	Nombre      string    `json:"nombre"`
	FechaSubida time.Time `gorm:"autoCreateTime" json:"fecha_subida"`

	// Relationships
	Reuniones []Reunion `gorm:"many2many:reunion_documentos;" json:"reuniones,omitempty"`
}

func (Documento) TableName() string { return "documentos" }

// DisplayName returns the optional name, or the stored file's base name
func (d Documento) DisplayName() string {
	if d.Nombre != "" {
		return d.Nombre
	}
	return filepath.Base(d.Archivo)
}
