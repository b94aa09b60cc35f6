package repository

import (
	"testing"

	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentValidation(t *testing.T) {
	db := testDB(t)
	repo := NewPaymentRepo(db)

	_, _, err := repo.Record(RecordPayment{})
	assert.True(t, errs.IsKind(err, errs.Validation))

	_, _, err = repo.Record(RecordPayment{
		CompanyID: "c", InvoiceID: 1, ContactID: 1,
		TransactionDate: issued(), Amount: -5,
	})
	assert.True(t, errs.IsKind(err, errs.Validation))
}

func TestRecordPaymentAgainstMissingInvoice(t *testing.T) {
	db := testDB(t)
	repo := NewPaymentRepo(db)
	company := seedCompany(t, db, "Acme HVAC")

	_, _, err := repo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: 42, ContactID: 1,
		TransactionDate: issued(), Amount: 10,
	})
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	db := testDB(t)
	invRepo := NewInvoiceRepo(db)
	payRepo := NewPaymentRepo(db)
	company := seedCompany(t, db, "Acme HVAC")
	contact := seedContact(t, db, company.ID, "Jane Doe")

	inv, err := invRepo.Create(CreateInvoice{
		CompanyID: company.ID, ContactID: contact.ID,
		InvoiceNumber: "INV-1", TotalAmount: 100, DateIssued: issued(),
	})
	require.NoError(t, err)

	_, _, err = payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued(), Amount: 150,
	})
	assert.True(t, errs.IsKind(err, errs.Validation))
	assert.Contains(t, err.Error(), "exceeds balance due")

	// A second payment may only cover what is left
	_, _, err = payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued(), Amount: 80,
	})
	require.NoError(t, err)
	_, _, err = payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued(), Amount: 30,
	})
	assert.True(t, errs.IsKind(err, errs.Validation))
}

func TestRecordPaymentRejectsTerminalInvoice(t *testing.T) {
	db := testDB(t)
	invRepo := NewInvoiceRepo(db)
	payRepo := NewPaymentRepo(db)
	company := seedCompany(t, db, "Acme HVAC")
	contact := seedContact(t, db, company.ID, "Jane Doe")

	inv, err := invRepo.Create(CreateInvoice{
		CompanyID: company.ID, ContactID: contact.ID,
		InvoiceNumber: "INV-1", TotalAmount: 100, DateIssued: issued(),
		Status: models.InvoiceVoid,
	})
	require.NoError(t, err)

	_, _, err = payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued(), Amount: 10,
	})
	assert.True(t, errs.IsKind(err, errs.Conflict))
}

func TestRecordPaymentNeverTouchesStatus(t *testing.T) {
	db := testDB(t)
	invRepo := NewInvoiceRepo(db)
	payRepo := NewPaymentRepo(db)
	company := seedCompany(t, db, "Acme HVAC")
	contact := seedContact(t, db, company.ID, "Jane Doe")

	inv, err := invRepo.Create(CreateInvoice{
		CompanyID: company.ID, ContactID: contact.ID,
		InvoiceNumber: "INV-1", TotalAmount: 100, DateIssued: issued(),
		Status: models.InvoiceSent,
	})
	require.NoError(t, err)

	payment, rec, err := payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued(), Amount: 100,
		Method: models.PayCheck,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PayCheck, payment.PaymentMethod)

	// Reconciliation says paid, but the row still says sent until the caller
	// transitions it explicitly.
	assert.Equal(t, models.InvoicePaid, rec.Suggested)
	row, err := invRepo.Get(company.ID, inv.ID, false, false)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceSent, row.Status)
}

func TestListPaymentsScopedAndFiltered(t *testing.T) {
	db := testDB(t)
	invRepo := NewInvoiceRepo(db)
	payRepo := NewPaymentRepo(db)
	company := seedCompany(t, db, "Acme HVAC")
	other := seedCompany(t, db, "Borealis Air")
	contact := seedContact(t, db, company.ID, "Jane Doe")

	inv, err := invRepo.Create(CreateInvoice{
		CompanyID: company.ID, ContactID: contact.ID,
		InvoiceNumber: "INV-1", TotalAmount: 100, DateIssued: issued(),
	})
	require.NoError(t, err)

	_, _, err = payRepo.Record(RecordPayment{
		CompanyID: company.ID, InvoiceID: inv.ID, ContactID: contact.ID,
		TransactionDate: issued(), Amount: 40,
	})
	require.NoError(t, err)

	list, err := payRepo.List(company.ID, PaymentFilter{InvoiceID: &inv.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Another tenant sees nothing
	list, err = payRepo.List(other.ID, PaymentFilter{InvoiceID: &inv.ID})
	require.NoError(t, err)
	assert.Empty(t, list)
}
