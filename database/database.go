package database

import (
	"fmt"

	"furnico-backend/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=furnico port=5432 sslmode=disable"

// Connect opens the Postgres database at dsn, or a local default when dsn is
// empty.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = defaultDSN
		zap.L().Warn("DATABASE_URL empty, using local default")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		return err
	}

	zap.L().Info("database migrated")
	return nil
}
