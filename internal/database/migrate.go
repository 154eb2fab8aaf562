package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/apureza/fitcoach-v2/backend/internal/models"
)

// Default account present on every installation.
const (
	adminName     = "Admin"
	adminEmail    = "tcc@gmail.com"
	adminUsername = "tcc"
	adminPassword = "tcc1234"
)

// Migrate creates or updates the schema for all application tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.TrainingProgram{},
		&models.Workout{},
		&models.WorkoutExercise{},
		&models.WorkoutSession{},
		&models.SessionSet{},
		&models.Diet{},
		&models.Meal{},
	)
}

// SeedAdmin inserts the default admin account when it is absent.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("username = ? OR email = ?", adminUsername, adminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         adminName,
		Email:        adminEmail,
		Username:     adminUsername,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded default admin account %q", adminUsername)
	return nil
}
