package repository

import (
	"errors"
	"time"

	"hvacdesk-backend/billing"
	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"
	"hvacdesk-backend/utils"

	"gorm.io/gorm"
)

// PaymentRepo records and reads payment transactions. Payments are
// append-only: there is no update or delete path.
type PaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepo { return &PaymentRepo{db: db} }

type RecordPayment struct {
	CompanyID       string
	InvoiceID       uint
	ContactID       uint
	TransactionDate time.Time
	Amount          float64
	Method          models.PaymentMethod
	Reference       string
	Notes           string
}

type PaymentFilter struct {
	InvoiceID *uint
	ContactID *uint
}

// Record appends a payment against a non-terminal invoice. The amount must be
// positive and must not drive the balance negative. The invoice status is NOT
// touched: the caller receives a reconciliation with a suggested status and
// decides on the transition explicitly.
func (r *PaymentRepo) Record(in RecordPayment) (*models.PaymentTransaction, *billing.Reconciliation, error) {
	if in.CompanyID == "" || in.InvoiceID == 0 || in.ContactID == 0 || in.Amount == 0 || in.TransactionDate.IsZero() {
		return nil, nil, errs.Validationf("Company ID, invoice ID, contact ID, amount, and transaction date are required")
	}
	if in.Amount <= 0 {
		return nil, nil, errs.Validationf("Payment amount must be greater than zero")
	}

	method := in.Method
	if method == "" {
		method = models.PayOther
	}

	payment := models.PaymentTransaction{
		CompanyID:        in.CompanyID,
		InvoiceID:        in.InvoiceID,
		ContactID:        in.ContactID,
		TransactionDate:  in.TransactionDate,
		Amount:           utils.Round2(in.Amount),
		PaymentMethod:    method,
		PaymentReference: in.Reference,
		Notes:            in.Notes,
	}

	var rec billing.Reconciliation
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var inv models.Invoice
		if err := tx.Where("company_id = ? AND id = ?", in.CompanyID, in.InvoiceID).
			First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("Invoice not found or does not belong to this company")
			}
			return errs.Internalf(err, "could not fetch invoice")
		}
		if billing.IsTerminal(inv.Status) {
			return errs.Conflictf("Invoice is in %s status and cannot accept payments", inv.Status)
		}

		var contacts int64
		if err := tx.Model(&models.Contact{}).
			Where("company_id = ? AND id = ?", in.CompanyID, in.ContactID).
			Count(&contacts).Error; err != nil {
			return errs.Internalf(err, "could not verify contact")
		}
		if contacts == 0 {
			return errs.Validationf("Contact not found or does not belong to this company")
		}

		var existing []models.PaymentTransaction
		if err := tx.Where("invoice_id = ?", in.InvoiceID).Find(&existing).Error; err != nil {
			return errs.Internalf(err, "could not load payments")
		}
		balance := billing.BalanceDue(inv.TotalAmount, existing)
		if payment.Amount > balance {
			return errs.Validationf("Payment of %.2f exceeds balance due of %.2f", payment.Amount, balance)
		}

		if err := tx.Create(&payment).Error; err != nil {
			return errs.Internalf(err, "could not record payment")
		}

		rec = billing.Reconcile(&inv, append(existing, payment))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &payment, &rec, nil
}

func (r *PaymentRepo) Get(companyID string, id uint) (*models.PaymentTransaction, error) {
	var p models.PaymentTransaction
	if err := r.db.Where("company_id = ? AND id = ?", companyID, id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("Payment not found or does not belong to this company")
		}
		return nil, errs.Internalf(err, "could not fetch payment")
	}
	return &p, nil
}

func (r *PaymentRepo) List(companyID string, f PaymentFilter) ([]models.PaymentTransaction, error) {
	q := r.db.Where("company_id = ?", companyID)
	if f.InvoiceID != nil {
		q = q.Where("invoice_id = ?", *f.InvoiceID)
	}
	if f.ContactID != nil {
		q = q.Where("contact_id = ?", *f.ContactID)
	}
	payments := []models.PaymentTransaction{}
	if err := q.Order("transaction_date DESC").Find(&payments).Error; err != nil {
		return nil, errs.Internalf(err, "could not list payments")
	}
	return payments, nil
}
