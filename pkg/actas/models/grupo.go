package models

import "time"

// GrupoTrabajo represents a work group and its members
type GrupoTrabajo struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Nombre      string    `gorm:"not null" json:"nombre"`
	Descripcion string    `json:"descripcion"`

	// Relationships
	Usuarios []User `gorm:"many2many:grupo_trabajo_usuarios;" json:"usuarios,omitempty"`
}

func (GrupoTrabajo) TableName() string { return "grupos_trabajo" }
