package pdf

import (
	"bytes"
	"testing"
	"time"

	"hvacdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCompany() *models.Company {
	return &models.Company{
		ID:         "c-1",
		Name:       "Acme HVAC",
		Address:    "12 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Phone:      "555-0100",
		Email:      "billing@acmehvac.test",
	}
}

func fixtureContact() *models.Contact {
	return &models.Contact{
		ID: 7, CompanyID: "c-1",
		Name: "Jane Doe", Address: "9 Oak Ave",
		City: "Springfield", State: "IL", Zip: "62702",
		Phone: "555-0111", Email: "jane@example.test",
	}
}

func fixtureInvoice() *models.Invoice {
	due := time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)
	return &models.Invoice{
		ID: 1, CompanyID: "c-1", ContactID: 7,
		InvoiceNumber:  "INV-2001",
		SubtotalAmount: 100, TaxAmount: 8, TotalAmount: 108,
		DateIssued: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:    &due,
		Status:     models.InvoiceSent,
		Notes:      "Thank you for your business!",
		Terms:      "Payment due within 30 days.",
		Items: []models.InvoiceItem{
			{Description: "Condenser coil cleaning", Quantity: 1, UnitPrice: 100, Amount: 100, TaxRate: 8, TaxAmount: 8},
		},
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceRenderIsDeterministic(t *testing.T) {
	inv := fixtureInvoice()
	payments := []models.PaymentTransaction{
		{ID: 1, InvoiceID: 1, Amount: 50, PaymentMethod: models.PayCash,
			TransactionDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	first, err := Invoice(inv, fixtureContact(), fixtureCompany(), payments)
	require.NoError(t, err)
	second, err := Invoice(inv, fixtureContact(), fixtureCompany(), payments)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "same inputs must produce identical bytes")
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF")))

	// Both document dates come from the record, never the wall clock
	assert.Contains(t, string(first), "/CreationDate (D:20250310")
	assert.Contains(t, string(first), "/ModDate (D:20250310")
}

func TestInvoiceRenderPaginatesLongItemLists(t *testing.T) {
	inv := fixtureInvoice()
	inv.Items = nil
	for i := 0; i < 60; i++ {
		inv.Items = append(inv.Items, models.InvoiceItem{
			Description: "Service visit", Quantity: 1, UnitPrice: 10, Amount: 10,
		})
	}

	blob, err := Invoice(inv, fixtureContact(), fixtureCompany(), nil)
	require.NoError(t, err)
	// gofpdf stores the page count in the /Count entry; two pages minimum here
	assert.NotContains(t, string(blob), "/Count 1")
}

func TestEstimateRenderIsDeterministic(t *testing.T) {
	expires := time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)
	est := &models.Estimate{
		ID: 1, CompanyID: "c-1", ContactID: 7,
		EstimateNumber: "EST-1001",
		SubtotalAmount: 250, TotalAmount: 250,
		DateIssued:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DateExpires: &expires,
		Status:      models.EstimateSent,
		Items: []models.EstimateItem{
			{Description: "System inspection", Quantity: 1, UnitPrice: 250, Amount: 250},
		},
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	first, err := Estimate(est, fixtureContact(), fixtureCompany())
	require.NoError(t, err)
	second, err := Estimate(est, fixtureContact(), fixtureCompany())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF")))
}
