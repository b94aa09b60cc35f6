package repository

import (
	"testing"
	"time"

	"hvacdesk-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database per test with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

func seedCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company := models.Company{Name: name}
	require.NoError(t, db.Create(&company).Error)
	return &company
}

func seedContact(t *testing.T, db *gorm.DB, companyID, name string) *models.Contact {
	t.Helper()
	contact := models.Contact{CompanyID: companyID, Name: name}
	require.NoError(t, db.Create(&contact).Error)
	return &contact
}

func seedJob(t *testing.T, db *gorm.DB, companyID string, contactID uint) *models.Job {
	t.Helper()
	job := models.Job{CompanyID: companyID, ContactID: contactID, Title: "AC repair"}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

func issued() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
