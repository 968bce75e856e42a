package database

import (
	"log"

	"swasthprameh/internal/models"
)

// MigrateDatabase creates or updates every table the service owns.
func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Onboarding{},
		&models.Diagnosis{},
		&models.Plan{},
		&models.Feedback{},
		&models.ChatMessage{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}
