package config

import (
	"context"
	"fmt"
	"log/slog"

	"savorybook/fallback"
	"savorybook/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to the sqlite file at path and migrates the schema.
// ":memory:" gives a private in-memory database.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Restaurant{}, &models.Booking{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// InitDB opens the database into DB and seeds an empty catalog
func InitDB(cfg Config) error {
	db, err := Open(cfg.DBPath)
	if err != nil {
		return err
	}
	DB = db
	ctx := context.Background()
	if cfg.SeedOnStart {
		n, err := SeedIfEmpty(DB)
		if err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		if n > 0 {
			Log.Info(ctx, "seed_database", "🌱 Seeded restaurants", slog.Int("count", n))
		}
	}
	Log.Info(ctx, "init_database", "✅ Database connected and migrated successfully", slog.String("path", cfg.DBPath))
	return nil
}

// SeedIfEmpty inserts the demo catalog when there are no restaurants
func SeedIfEmpty(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	return Reseed(db)
}

// Reseed replaces every restaurant with the demo catalog
func Reseed(db *gorm.DB) (int, error) {
	seed := fallback.SeedRestaurants()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Restaurant{}).Error; err != nil {
			return err
		}
		return tx.Create(&seed).Error
	})
	if err != nil {
		return 0, err
	}
	return len(seed), nil
}
