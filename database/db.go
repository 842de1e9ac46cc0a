package database

import (
	"fmt"

	"gamevault/internal/config"
	"gamevault/internal/http-api/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres connection, verifies it and migrates the schema.
func ConnectDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Connected to the database successfully")
	return db, nil
}

func migrate(db *gorm.DB) error {
	// Parents before children so the FK constraints can be created
	if err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Rating{},
		&models.Feedback{},
	); err != nil {
		return err
	}
	logrus.Info("Database migrations applied successfully")
	return nil
}
