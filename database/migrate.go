package database

import (
	"fmt"

	"fitstream_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs GORM auto-migration for every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.Course{},
		&models.Lesson{},
		&models.UserLesson{},
		&models.UserCourse{},
		&models.Event{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
