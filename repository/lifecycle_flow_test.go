package repository

import (
	"testing"

	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full happy path: invoice for 100 + 8 tax, two payments, explicit transition
// to paid, then the terminal guard locks the row.
func TestInvoicePaymentFlow(t *testing.T) {
	db := testDB(t)
	invRepo := NewInvoiceRepo(db)
	payRepo := NewPaymentRepo(db)
	company := seedCompany(t, db, "Acme HVAC")
	contact := seedContact(t, db, company.ID, "Jane Doe")
	job := seedJob(t, db, company.ID, contact.ID)

	inv, err := invRepo.Create(CreateInvoice{
		CompanyID:      company.ID,
		ContactID:      contact.ID,
		JobID:          &job.ID,
		InvoiceNumber:  "INV-2001",
		SubtotalAmount: 100,
		TaxAmount:      8,
		TotalAmount:    108,
		DateIssued:     issued(),
		Status:         models.InvoiceSent,
		Items: []ItemInput{
			{Description: "Condenser coil cleaning", Quantity: 1, UnitPrice: 100, Amount: 100, TaxRate: 8, TaxAmount: 8},
		},
	})
	require.NoError(t, err)

	// First payment covers part of the total
	_, rec, err := payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued().AddDate(0, 0, 5), Amount: 50,
		Method: models.PayCash,
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, rec.AmountPaid)
	assert.Equal(t, 58.0, rec.BalanceDue)
	assert.Equal(t, models.InvoicePartiallyPaid, rec.Suggested)

	// Caller follows the hint with an explicit transition
	_, err = invRepo.Update(UpdateInvoice{
		ID: inv.ID, CompanyID: company.ID,
		Status: ptr(models.InvoicePartiallyPaid),
	})
	require.NoError(t, err)

	// Second payment settles the balance
	_, rec, err = payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued().AddDate(0, 0, 12), Amount: 58,
		Method: models.PayCheck,
	})
	require.NoError(t, err)
	assert.Equal(t, 108.0, rec.AmountPaid)
	assert.Equal(t, 0.0, rec.BalanceDue)
	assert.Equal(t, models.InvoicePaid, rec.Suggested)

	datePaid := issued().AddDate(0, 0, 12)
	paid, err := invRepo.Update(UpdateInvoice{
		ID: inv.ID, CompanyID: company.ID,
		Status:   ptr(models.InvoicePaid),
		DatePaid: &datePaid,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, paid.Status)
	assert.Len(t, paid.Payments, 2)

	// The row is now locked for ordinary edits and further payments
	_, err = invRepo.Update(UpdateInvoice{ID: inv.ID, CompanyID: company.ID, TotalAmount: ptr(200.0)})
	assert.True(t, errs.IsKind(err, errs.Conflict))
	_, _, err = payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued(), Amount: 1,
	})
	assert.True(t, errs.IsKind(err, errs.Conflict))
}
