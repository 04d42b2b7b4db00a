package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"codaverse/internal/config"
	"codaverse/internal/middleware/auth"
	"codaverse/internal/models"
)

// ConnectDB opens the postgres connection, migrates the schema and seeds
// baseline rows. The caller owns the returned handle.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Category{},
		&models.Discussion{},
		&models.Comment{},
		&models.News{},
		&models.ProgrammingLanguage{},
		&models.CodeSnippet{},
		&models.Code{},
		&models.Tag{},
		&models.Blog{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedGroups(db, logger); err != nil {
		return nil, err
	}
	if err := seedAdmin(db, cfg, logger); err != nil {
		return nil, err
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

func seedGroups(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&models.Group{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count groups: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range []string{"admin", "moderator", "user"} {
		if err := db.Create(&models.Group{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed group %s: %w", name, err)
		}
	}
	logger.Info("Seeded default groups")
	return nil
}

// seedAdmin creates the bootstrap superuser. Skipped when any user exists or
// when no admin password is configured.
func seedAdmin(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:    cfg.AdminUsername,
		Email:       cfg.AdminEmail,
		Password:    hashed,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logger.Info("Seeded admin user", "username", cfg.AdminUsername)
	return nil
}
