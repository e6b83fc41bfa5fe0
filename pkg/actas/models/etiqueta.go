package models

import "time"

// Etiqueta represents a tag that can be applied to meetings
type Etiqueta struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Nombre    string    `gorm:"uniqueIndex;not null" json:"nombre"`

	// Relationships
	Reuniones []Reunion `gorm:"many2many:reunion_etiquetas;" json:"reuniones,omitempty"`
}

func (Etiqueta) TableName() string { return "etiquetas" }
