package database

import (
	"fmt"

	"github.com/dreamwed/wedding_backend/config"
	"github.com/dreamwed/wedding_backend/logger"
	"github.com/dreamwed/wedding_backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect establishes a connection to the database
func Connect(cfg *config.Config) {
	var err error

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	logger.Log.Info().Msg("Database connection established")
}

// Migrate automatically migrates the database schema
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Wedding{},
		&models.Guest{},
		&models.Photo{},
		&models.GuestBookEntry{},
		&models.BudgetCategory{},
		&models.BudgetItem{},
		&models.Milestone{},
		&models.Invitation{},
		&models.GuestCollaborator{},
		&models.WeddingAccess{},
	)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Database migration failed")
	}
	logger.Log.Info().Msg("Database migration completed")
}
