package database

import (
	"fmt"
	"os"

	"hvacdesk-backend/logger"
	"hvacdesk-backend/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), port)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Get().Fatal("could not connect to database", zap.Error(err))
	}
}

// AutoMigrate applies the GORM schema for every model, then the raw SQL
// migration pass (money column types, check constraints, composite indexes).
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Contact{},
		&models.Job{},
		&models.Estimate{},
		&models.EstimateItem{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InvoiceVersion{},
		&models.PaymentTransaction{},
		&models.InvoiceSettings{},
		&models.IdempotencyKey{},
	); err != nil {
		logger.Get().Fatal("automigrate failed", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		logger.Get().Fatal("sql migration pass failed", zap.Error(err))
	}
}
