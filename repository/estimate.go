package repository

import (
	"errors"
	"fmt"
	"time"

	"hvacdesk-backend/billing"
	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"
	"hvacdesk-backend/utils"

	"gorm.io/gorm"
)

// EstimateRepo mirrors the invoice repository for pre-invoice quotes.
// Terminal estimate states are converted and cancelled.
type EstimateRepo struct {
	db *gorm.DB
}

func NewEstimateRepo(db *gorm.DB) *EstimateRepo { return &EstimateRepo{db: db} }

type EstimateFilter struct {
	ContactID    *uint
	Status       models.EstimateStatus
	FromDate     *time.Time
	ToDate       *time.Time
	IncludeItems bool
}

type CreateEstimate struct {
	CompanyID      string
	ContactID      uint
	JobID          *uint
	EstimateNumber string
	SubtotalAmount float64
	TaxAmount      float64
	DiscountAmount float64
	TotalAmount    float64
	DateIssued     time.Time
	DateExpires    *time.Time
	Status         models.EstimateStatus
	Notes          string
	Terms          string
	Items          []ItemInput
}

type UpdateEstimate struct {
	ID             uint
	CompanyID      string
	ContactID      *uint
	JobID          *uint
	EstimateNumber *string
	SubtotalAmount *float64
	TaxAmount      *float64
	DiscountAmount *float64
	TotalAmount    *float64
	DateIssued     *time.Time
	DateExpires    *time.Time
	Status         *models.EstimateStatus
	Notes          *string
	Terms          *string
	Items          *[]ItemInput
}

func (r *EstimateRepo) Get(companyID string, id uint, includeItems bool) (*models.Estimate, error) {
	q := r.db.Where("company_id = ? AND id = ?", companyID, id)
	if includeItems {
		q = q.Preload("Items")
	}
	var est models.Estimate
	if err := q.First(&est).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("Estimate not found or does not belong to this company")
		}
		return nil, errs.Internalf(err, "could not fetch estimate")
	}
	return &est, nil
}

func (r *EstimateRepo) List(companyID string, f EstimateFilter) ([]models.Estimate, error) {
	q := r.db.Where("company_id = ?", companyID)
	if f.ContactID != nil {
		q = q.Where("contact_id = ?", *f.ContactID)
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
	estimates := []models.Estimate{}
	if err := q.Order("date_issued DESC").Find(&estimates).Error; err != nil {
		return nil, errs.Internalf(err, "could not list estimates")
	}
	return estimates, nil
}

func (r *EstimateRepo) Create(in CreateEstimate) (*models.Estimate, error) {
	if in.CompanyID == "" || in.ContactID == 0 || in.EstimateNumber == "" || in.TotalAmount == 0 || in.DateIssued.IsZero() {
		return nil, errs.Validationf("Company ID, contact ID, estimate number, total amount, and date issued are required")
	}

	status := in.Status
	if status == "" {
		status = models.EstimateDraft
	}
	if !models.ValidEstimateStatus(status) {
		return nil, errs.Validationf("unknown estimate status %q", status)
	}

	if err := r.checkContact(in.CompanyID, in.ContactID); err != nil {
		return nil, err
	}
	if in.JobID != nil {
		if err := r.checkJob(in.CompanyID, *in.JobID); err != nil {
			return nil, err
		}
	}

	est := models.Estimate{
		CompanyID:      in.CompanyID,
		ContactID:      in.ContactID,
		JobID:          in.JobID,
		EstimateNumber: in.EstimateNumber,
		SubtotalAmount: utils.Round2(in.SubtotalAmount),
		TaxAmount:      utils.Round2(in.TaxAmount),
		DiscountAmount: utils.Round2(in.DiscountAmount),
		TotalAmount:    utils.Round2(in.TotalAmount),
		DateIssued:     in.DateIssued,
		DateExpires:    in.DateExpires,
		Status:         status,
		Notes:          in.Notes,
		Terms:          in.Terms,
	}
	for _, it := range in.Items {
		est.Items = append(est.Items, estimateItem(it, 0))
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&est).Error; err != nil {
			return errs.Internalf(err, "could not create estimate")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(in.CompanyID, est.ID, true)
}

func (r *EstimateRepo) Update(in UpdateEstimate) (*models.Estimate, error) {
	if in.ID == 0 || in.CompanyID == "" {
		return nil, errs.Validationf("Estimate ID and Company ID are required")
	}

	current, err := r.Get(in.CompanyID, in.ID, false)
	if err != nil {
		return nil, err
	}
	if billing.EstimateTerminal(current.Status) {
		return nil, errs.Conflictf("Estimate is in a final state and cannot be modified")
	}

	if in.Status != nil && !models.ValidEstimateStatus(*in.Status) {
		return nil, errs.Validationf("unknown estimate status %q", *in.Status)
	}
	if in.ContactID != nil && *in.ContactID != current.ContactID {
		if err := r.checkContact(in.CompanyID, *in.ContactID); err != nil {
			return nil, err
		}
	}

	updated := *current
	if in.ContactID != nil {
		updated.ContactID = *in.ContactID
	}
	if in.JobID != nil {
		updated.JobID = in.JobID
	}
	if in.EstimateNumber != nil {
		updated.EstimateNumber = *in.EstimateNumber
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
	if in.DateExpires != nil {
		updated.DateExpires = in.DateExpires
	}
	if in.Status != nil {
		updated.Status = *in.Status
	}
	if in.Notes != nil {
		updated.Notes = *in.Notes
	}
	if in.Terms != nil {
		updated.Terms = *in.Terms
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(&updated).Error; err != nil {
			return errs.Internalf(err, "could not update estimate")
		}
		if in.Items != nil {
			if err := tx.Where("estimate_id = ?", updated.ID).Delete(&models.EstimateItem{}).Error; err != nil {
				return errs.Internalf(err, "could not clear estimate items")
			}
			for _, it := range *in.Items {
				item := estimateItem(it, updated.ID)
				if err := tx.Create(&item).Error; err != nil {
					return errs.Internalf(err, "could not insert estimate item")
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(in.CompanyID, in.ID, true)
}

// Cancel is the estimate counterpart of invoice void.
func (r *EstimateRepo) Cancel(companyID string, id uint, reason string) (*models.Estimate, error) {
	if id == 0 || companyID == "" {
		return nil, errs.Validationf("Estimate ID and Company ID are required")
	}

	current, err := r.Get(companyID, id, false)
	if err != nil {
		return nil, err
	}
	if billing.EstimateTerminal(current.Status) {
		return nil, errs.Conflictf("Estimate is already in %s status and cannot be cancelled", current.Status)
	}

	note := fmt.Sprintf("Estimate cancelled on %s.", time.Now().UTC().Format(time.RFC3339))
	if reason != "" {
		note += " Reason: " + reason
	}
	notes := note
	if current.Notes != "" {
		notes = current.Notes + "\n\n" + note
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Estimate{}).
			Where("company_id = ? AND id = ?", companyID, id).
			Updates(map[string]any{"status": models.EstimateCancelled, "notes": notes})
		if res.Error != nil {
			return errs.Internalf(res.Error, "could not cancel estimate")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(companyID, id, true)
}

func estimateItem(in ItemInput, estimateID uint) models.EstimateItem {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	itemType := in.ItemType
	if itemType == "" {
		itemType = models.ItemService
	}
	return models.EstimateItem{
		EstimateID:         estimateID,
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

func (r *EstimateRepo) checkContact(companyID string, contactID uint) error {
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

func (r *EstimateRepo) checkJob(companyID string, jobID uint) error {
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
