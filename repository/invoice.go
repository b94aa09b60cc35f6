package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hvacdesk-backend/billing"
	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"
	"hvacdesk-backend/utils"

	"gorm.io/gorm"
)

// InvoiceRepo owns all invoice reads and writes. Every query is scoped by
// company ID; cross-tenant hits are indistinguishable from missing rows.
type InvoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

// ItemInput is one line of a create/update request. Items are always applied
// as a wholesale replacement of the previous set.
type ItemInput struct {
	Description        string          `json:"description" validate:"required"`
	Quantity           float64         `json:"quantity"`
	UnitPrice          float64         `json:"unit_price"`
	Amount             float64         `json:"amount"`
	ItemType           models.ItemType `json:"item_type"`
	TaxRate            float64         `json:"tax_rate"`
	TaxAmount          float64         `json:"tax_amount"`
	DiscountPercentage float64         `json:"discount_percentage"`
	DiscountAmount     float64         `json:"discount_amount"`
}

func (in ItemInput) model(invoiceID uint) models.InvoiceItem {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	itemType := in.ItemType
	if itemType == "" {
		itemType = models.ItemService
	}
	return models.InvoiceItem{
		InvoiceID:          invoiceID,
		Description:        in.Description,
		Quantity:           qty,
		UnitPrice:          utils.Round2(in.UnitPrice),
		Amount:             utils.Round2(in.Amount),
		ItemType:           itemType,
		TaxRate:            in.TaxRate,
		TaxAmount:          utils.Round2(in.TaxAmount),
		DiscountPercentage: in.DiscountPercentage,
		DiscountAmount:     utils.Round2(in.DiscountAmount),
	}
}

type InvoiceFilter struct {
	ContactID       *uint
	JobID           *uint
	Status          models.InvoiceStatus
	FromDate        *time.Time
	ToDate          *time.Time
	IncludeItems    bool
	IncludePayments bool
}

type CreateInvoice struct {
	CompanyID           string
	ContactID           uint
	JobID               *uint
	EstimateID          *uint
	InvoiceNumber       string
	SubtotalAmount      float64
	TaxAmount           float64
	DiscountAmount      float64
	TotalAmount         float64
	DateIssued          time.Time
	DueDate             *time.Time
	Status              models.InvoiceStatus
	Notes               string
	Terms               string
	PaymentInstructions string
	Items               []ItemInput
}

// UpdateInvoice carries a partial update: nil fields keep their prior values,
// a non-nil Items slice replaces the item set wholesale.
type UpdateInvoice struct {
	ID                  uint
	CompanyID           string
	ContactID           *uint
	JobID               *uint
	EstimateID          *uint
	InvoiceNumber       *string
	SubtotalAmount      *float64
	TaxAmount           *float64
	DiscountAmount      *float64
	TotalAmount         *float64
	DateIssued          *time.Time
	DueDate             *time.Time
	DatePaid            *time.Time
	Status              *models.InvoiceStatus
	Notes               *string
	Terms               *string
	PaymentInstructions *string
	Items               *[]ItemInput
}

// Get fetches one invoice scoped to the company, optionally eager-loading
// items and payments.
func (r *InvoiceRepo) Get(companyID string, id uint, includeItems, includePayments bool) (*models.Invoice, error) {
	q := r.db.Where("company_id = ? AND id = ?", companyID, id)
	if includeItems {
		q = q.Preload("Items")
	}
	if includePayments {
		q = q.Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("transaction_date DESC")
		})
	}
	var inv models.Invoice
	if err := q.First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("Invoice not found or does not belong to this company")
		}
		return nil, errs.Internalf(err, "could not fetch invoice")
	}
	return &inv, nil
}

// List returns matching invoices ordered by issue date, newest first. No
// matches is an empty slice, not an error.
func (r *InvoiceRepo) List(companyID string, f InvoiceFilter) ([]models.Invoice, error) {
	q := r.db.Where("company_id = ?", companyID)
	if f.ContactID != nil {
		q = q.Where("contact_id = ?", *f.ContactID)
	}
	if f.JobID != nil {
		q = q.Where("job_id = ?", *f.JobID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.FromDate != nil {
		q = q.Where("date_issued >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date_issued <= ?", *f.ToDate)
	}
	if f.IncludeItems {
		q = q.Preload("Items")
	}
	if f.IncludePayments {
		q = q.Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("transaction_date DESC")
		})
	}

	invoices := []models.Invoice{}
	if err := q.Order("date_issued DESC").Find(&invoices).Error; err != nil {
		return nil, errs.Internalf(err, "could not list invoices")
	}
	return invoices, nil
}

// Create inserts an invoice with its items in one transaction. A supplied
// estimate reference is flipped to "converted" inside the same transaction,
// so a failed create leaves the estimate untouched.
func (r *InvoiceRepo) Create(in CreateInvoice) (*models.Invoice, error) {
	if in.CompanyID == "" || in.ContactID == 0 || in.InvoiceNumber == "" || in.TotalAmount == 0 || in.DateIssued.IsZero() {
		return nil, errs.Validationf("Company ID, contact ID, invoice number, total amount, and date issued are required")
	}

	status := in.Status
	if status == "" {
		status = models.InvoiceDraft
	}
	if !models.ValidInvoiceStatus(status) {
		return nil, errs.Validationf("unknown invoice status %q", status)
	}

	if err := r.checkContact(in.CompanyID, in.ContactID); err != nil {
		return nil, err
	}
	if in.JobID != nil {
		if err := r.checkJob(in.CompanyID, *in.JobID); err != nil {
			return nil, err
		}
	}
	if in.EstimateID != nil {
		if err := r.checkEstimate(in.CompanyID, *in.EstimateID); err != nil {
			return nil, err
		}
	}

	inv := models.Invoice{
		CompanyID:           in.CompanyID,
		ContactID:           in.ContactID,
		JobID:               in.JobID,
		EstimateID:          in.EstimateID,
		InvoiceNumber:       in.InvoiceNumber,
		SubtotalAmount:      utils.Round2(in.SubtotalAmount),
		TaxAmount:           utils.Round2(in.TaxAmount),
		DiscountAmount:      utils.Round2(in.DiscountAmount),
		TotalAmount:         utils.Round2(in.TotalAmount),
		DateIssued:          in.DateIssued,
		DueDate:             in.DueDate,
		Status:              status,
		Notes:               in.Notes,
		Terms:               in.Terms,
		PaymentInstructions: in.PaymentInstructions,
	}
	for _, it := range in.Items {
		inv.Items = append(inv.Items, it.model(0))
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inv).Error; err != nil {
			return errs.Internalf(err, "could not create invoice")
		}
		if in.EstimateID != nil {
			res := tx.Model(&models.Estimate{}).
				Where("company_id = ? AND id = ?", in.CompanyID, *in.EstimateID).
				Update("status", models.EstimateConverted)
			if res.Error != nil {
				return errs.Internalf(res.Error, "could not mark estimate converted")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Rehydrate post-commit so the caller sees exactly what was stored.
	return r.Get(in.CompanyID, inv.ID, true, true)
}

// Update applies a partial update under the terminal-state guard, snapshots
// the prior state, and replaces items wholesale when a new set is supplied.
func (r *InvoiceRepo) Update(in UpdateInvoice) (*models.Invoice, error) {
	if in.ID == 0 || in.CompanyID == "" {
		return nil, errs.Validationf("Invoice ID and Company ID are required")
	}

	current, err := r.Get(in.CompanyID, in.ID, true, false)
	if err != nil {
		return nil, err
	}

	newStatus := current.Status
	if in.Status != nil {
		if !models.ValidInvoiceStatus(*in.Status) {
			return nil, errs.Validationf("unknown invoice status %q", *in.Status)
		}
		newStatus = *in.Status
	}

	if billing.IsTerminal(current.Status) && !billing.CanTransition(current.Status, newStatus) {
		return nil, errs.Conflictf("Invoice is in a final state and cannot be modified")
	}

	if in.ContactID != nil && *in.ContactID != current.ContactID {
		if err := r.checkContact(in.CompanyID, *in.ContactID); err != nil {
			return nil, err
		}
	}
	if in.JobID != nil && (current.JobID == nil || *in.JobID != *current.JobID) {
		if err := r.checkJob(in.CompanyID, *in.JobID); err != nil {
			return nil, err
		}
	}
	if in.EstimateID != nil && (current.EstimateID == nil || *in.EstimateID != *current.EstimateID) {
		if err := r.checkEstimate(in.CompanyID, *in.EstimateID); err != nil {
			return nil, err
		}
	}

	updated := *current
	updated.Items = nil
	if in.ContactID != nil {
		updated.ContactID = *in.ContactID
	}
	if in.JobID != nil {
		updated.JobID = in.JobID
	}
	if in.EstimateID != nil {
		updated.EstimateID = in.EstimateID
	}
	if in.InvoiceNumber != nil {
		updated.InvoiceNumber = *in.InvoiceNumber
	}
	if in.SubtotalAmount != nil {
		updated.SubtotalAmount = utils.Round2(*in.SubtotalAmount)
	}
	if in.TaxAmount != nil {
		updated.TaxAmount = utils.Round2(*in.TaxAmount)
	}
	if in.DiscountAmount != nil {
		updated.DiscountAmount = utils.Round2(*in.DiscountAmount)
	}
	if in.TotalAmount != nil {
		updated.TotalAmount = utils.Round2(*in.TotalAmount)
	}
	if in.DateIssued != nil {
		updated.DateIssued = *in.DateIssued
	}
	if in.DueDate != nil {
		updated.DueDate = in.DueDate
	}
	if in.DatePaid != nil {
		updated.DatePaid = in.DatePaid
	}
	updated.Status = newStatus
	if in.Notes != nil {
		updated.Notes = *in.Notes
	}
	if in.Terms != nil {
		updated.Terms = *in.Terms
	}
	if in.PaymentInstructions != nil {
		updated.PaymentInstructions = *in.PaymentInstructions
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.snapshot(tx, current); err != nil {
			return err
		}
		if err := tx.Omit("Items", "Payments").Save(&updated).Error; err != nil {
			return errs.Internalf(err, "could not update invoice")
		}
		if in.Items != nil {
			if err := tx.Where("invoice_id = ?", updated.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
				return errs.Internalf(err, "could not clear invoice items")
			}
			for _, it := range *in.Items {
				item := it.model(updated.ID)
				if err := tx.Create(&item).Error; err != nil {
					return errs.Internalf(err, "could not insert invoice item")
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(in.CompanyID, in.ID, true, true)
}

// Void is the soft delete: terminal invoices are rejected, everything else is
// flipped to void with a timestamped audit line appended to the notes.
func (r *InvoiceRepo) Void(companyID string, id uint, reason string) (*models.Invoice, error) {
	if id == 0 || companyID == "" {
		return nil, errs.Validationf("Invoice ID and Company ID are required")
	}

	current, err := r.Get(companyID, id, false, false)
	if err != nil {
		return nil, err
	}
	if billing.IsTerminal(current.Status) {
		return nil, errs.Conflictf("Invoice is already in %s status and cannot be voided", current.Status)
	}

	voidNote := fmt.Sprintf("Invoice voided on %s.", time.Now().UTC().Format(time.RFC3339))
	if reason != "" {
		voidNote += " Reason: " + reason
	}
	notes := voidNote
	if current.Notes != "" {
		notes = current.Notes + "\n\n" + voidNote
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invoice{}).
			Where("company_id = ? AND id = ?", companyID, id).
			Updates(map[string]any{"status": models.InvoiceVoid, "notes": notes})
		if res.Error != nil {
			return errs.Internalf(res.Error, "could not void invoice")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(companyID, id, true, true)
}

// Versions lists the stored update snapshots for one invoice, oldest first.
func (r *InvoiceRepo) Versions(companyID string, id uint) ([]models.InvoiceVersion, error) {
	if _, err := r.Get(companyID, id, false, false); err != nil {
		return nil, err
	}
	versions := []models.InvoiceVersion{}
	if err := r.db.Where("company_id = ? AND invoice_id = ?", companyID, id).
		Order("version_no ASC").Find(&versions).Error; err != nil {
		return nil, errs.Internalf(err, "could not list invoice versions")
	}
	return versions, nil
}

// snapshot stores the pre-update state (row + items) as the next version.
func (r *InvoiceRepo) snapshot(tx *gorm.DB, current *models.Invoice) error {
	blob, err := json.Marshal(current)
	if err != nil {
		return errs.Internalf(err, "could not encode invoice snapshot")
	}
	var count int64
	if err := tx.Model(&models.InvoiceVersion{}).
		Where("invoice_id = ?", current.ID).Count(&count).Error; err != nil {
		return errs.Internalf(err, "could not count invoice versions")
	}
	version := models.InvoiceVersion{
		CompanyID: current.CompanyID,
		InvoiceID: current.ID,
		VersionNo: int(count) + 1,
		Snapshot:  blob,
	}
	if err := tx.Create(&version).Error; err != nil {
		return errs.Internalf(err, "could not store invoice snapshot")
	}
	return nil
}

func (r *InvoiceRepo) checkContact(companyID string, contactID uint) error {
	var n int64
	if err := r.db.Model(&models.Contact{}).
		Where("company_id = ? AND id = ?", companyID, contactID).Count(&n).Error; err != nil {
		return errs.Internalf(err, "could not verify contact")
	}
	if n == 0 {
		return errs.Validationf("Contact not found or does not belong to this company")
	}
	return nil
}

func (r *InvoiceRepo) checkJob(companyID string, jobID uint) error {
	var n int64
	if err := r.db.Model(&models.Job{}).
		Where("company_id = ? AND id = ?", companyID, jobID).Count(&n).Error; err != nil {
		return errs.Internalf(err, "could not verify job")
	}
	if n == 0 {
		return errs.Validationf("Job not found or does not belong to this company")
	}
	return nil
}

func (r *InvoiceRepo) checkEstimate(companyID string, estimateID uint) error {
	var n int64
	if err := r.db.Model(&models.Estimate{}).
		Where("company_id = ? AND id = ?", companyID, estimateID).Count(&n).Error; err != nil {
		return errs.Internalf(err, "could not verify estimate")
	}
	if n == 0 {
		return errs.Validationf("Estimate not found or does not belong to this company")
	}
	return nil
}
