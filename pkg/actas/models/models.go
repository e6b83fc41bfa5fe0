package models

import "gorm.io/gorm"

// AllModels returns all models for migration.
// Referenced tables come before the tables that point at them.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&KeycloakProfile{},
		&GrupoTrabajo{},
		&Frente{},
		&Proyecto{},
		&Etiqueta{},
		&Documento{},
		&Reunion{},
		&Intervencion{},
		&IntervencionDocumento{},
		&Comentario{},
		&GraphMailConfig{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
