package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCreatedLazilyWithDefaults(t *testing.T) {
	db := testDB(t)
	repo := NewSettingsRepo(db)
	company := seedCompany(t, db, "Acme HVAC")

	s, err := repo.GetOrCreate(company.ID)
	require.NoError(t, err)
	assert.Equal(t, 1001, s.NextInvoiceNumber)
	assert.Equal(t, 1001, s.NextEstimateNumber)
	assert.Equal(t, 30, s.DefaultDueDays)
	assert.Equal(t, "Thank you for your business!", s.InvoiceNotesTemplate)

	// Second read returns the same row, not a new one
	again, err := repo.GetOrCreate(company.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)
}

func TestSettingsPartialUpdate(t *testing.T) {
	db := testDB(t)
	repo := NewSettingsRepo(db)
	company := seedCompany(t, db, "Acme HVAC")

	s, err := repo.Update(UpdateSettings{
		CompanyID:      company.ID,
		DefaultDueDays: ptr(14),
	})
	require.NoError(t, err)
	assert.Equal(t, 14, s.DefaultDueDays)
	// Untouched fields keep their defaults
	assert.Equal(t, 1001, s.NextInvoiceNumber)
	assert.Equal(t, "Payment due within 30 days.", s.InvoiceTermsTemplate)
}
