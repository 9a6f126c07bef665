package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/models/entities"
)

// InitPostgresORM opens the GORM connection used by all repositories.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every registered entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Empresa{},
		&entities.Egresado{},
		&entities.Convenio{},
		&entities.Evento{},
		&entities.Proyecto{},
		&entities.ImpactoSocial{},
		&entities.Publicacion{},
		&entities.RelacionInternacional{},
		&entities.SalidaPractica{},
		&entities.Estadistica{},
	)
}
