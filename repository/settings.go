package repository

import (
	"errors"

	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"

	"gorm.io/gorm"
)

// SettingsRepo manages per-company billing defaults. A missing row is created
// lazily with defaults on first read.
type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo { return &SettingsRepo{db: db} }

type UpdateSettings struct {
	CompanyID                 string
	NextInvoiceNumber         *int
	NextEstimateNumber        *int
	DefaultTaxRate            *float64
	DefaultDueDays            *int
	DefaultEstimateExpiryDays *int
	InvoiceNotesTemplate      *string
	EstimateNotesTemplate     *string
	InvoiceTermsTemplate      *string
	EstimateTermsTemplate     *string
	LogoURL                   *string
}

func defaultSettings(companyID string) models.InvoiceSettings {
	return models.InvoiceSettings{
		CompanyID:                 companyID,
		NextInvoiceNumber:         1001,
		NextEstimateNumber:        1001,
		DefaultTaxRate:            0,
		DefaultDueDays:            30,
		DefaultEstimateExpiryDays: 30,
		InvoiceNotesTemplate:      "Thank you for your business!",
		EstimateNotesTemplate:     "This estimate is valid for 30 days.",
		InvoiceTermsTemplate:      "Payment due within 30 days.",
		EstimateTermsTemplate:     "This estimate is not a contract or agreement.",
	}
}

func (r *SettingsRepo) GetOrCreate(companyID string) (*models.InvoiceSettings, error) {
	if companyID == "" {
		return nil, errs.Validationf("Company ID is required")
	}
	var settings models.InvoiceSettings
	err := r.db.Where("company_id = ?", companyID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Internalf(err, "could not fetch invoice settings")
	}

	settings = defaultSettings(companyID)
	if err := r.db.Create(&settings).Error; err != nil {
		return nil, errs.Internalf(err, "could not create invoice settings")
	}
	return &settings, nil
}

func (r *SettingsRepo) Update(in UpdateSettings) (*models.InvoiceSettings, error) {
	current, err := r.GetOrCreate(in.CompanyID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if in.NextInvoiceNumber != nil {
		updated.NextInvoiceNumber = *in.NextInvoiceNumber
	}
	if in.NextEstimateNumber != nil {
		updated.NextEstimateNumber = *in.NextEstimateNumber
	}
	if in.DefaultTaxRate != nil {
		updated.DefaultTaxRate = *in.DefaultTaxRate
	}
	if in.DefaultDueDays != nil {
		updated.DefaultDueDays = *in.DefaultDueDays
	}
	if in.DefaultEstimateExpiryDays != nil {
		updated.DefaultEstimateExpiryDays = *in.DefaultEstimateExpiryDays
	}
	if in.InvoiceNotesTemplate != nil {
		updated.InvoiceNotesTemplate = *in.InvoiceNotesTemplate
	}
	if in.EstimateNotesTemplate != nil {
		updated.EstimateNotesTemplate = *in.EstimateNotesTemplate
	}
	if in.InvoiceTermsTemplate != nil {
		updated.InvoiceTermsTemplate = *in.InvoiceTermsTemplate
	}
	if in.EstimateTermsTemplate != nil {
		updated.EstimateTermsTemplate = *in.EstimateTermsTemplate
	}
	if in.LogoURL != nil {
		updated.LogoURL = *in.LogoURL
	}

	if err := r.db.Save(&updated).Error; err != nil {
		return nil, errs.Internalf(err, "could not update invoice settings")
	}
	return &updated, nil
}
