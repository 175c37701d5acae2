package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/models"
)

// InitDB opens the Postgres connection and applies migrations.
func InitDB(cfg Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	return db
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Driver{},
		&models.Student{},
		&models.Vehicle{},
		&models.Route{},
		&models.Assignment{},
		&models.Evaluation{},
		&models.Attendance{},
		&models.Report{},
		&models.DriverRoute{},
	)
}
