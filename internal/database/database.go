package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"prodtrack/internal/auth"
	"prodtrack/internal/models"
)

// Open connects to the Postgres instance named by dsn.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates the schema for every model the app owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.WorkCenter{},
		&models.ProductionOrder{},
		&models.Session{},
		&models.AuditLog{},
	)
}

// SeedAdmin creates the default admin account on first boot so the
// instance is reachable before any users exist.
func SeedAdmin(db *gorm.DB, lg *zap.SugaredLogger) {
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		return
	}
	hash, err := auth.HashPassword("admin")
	if err != nil {
		lg.Errorw("seed admin: hash failed", "error", err)
		return
	}
	u := models.User{
		Username:     "admin",
		PasswordHash: hash,
		Name:         "Administrator",
		IsAdmin:      true,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(&u).Error; err != nil {
		lg.Errorw("seed admin: create failed", "error", err)
		return
	}
	lg.Infow("seeded default admin", "username", u.Username)
}
