package models

import "time"

// InvoiceSettings holds per-company billing defaults. One row per company,
// created lazily with defaults on first read.
type InvoiceSettings struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CompanyID string `json:"company_id" gorm:"size:64;not null;uniqueIndex"`

	NextInvoiceNumber  int `json:"next_invoice_number" gorm:"default:1001"`
	NextEstimateNumber int `json:"next_estimate_number" gorm:"default:1001"`

	DefaultTaxRate            float64 `json:"default_tax_rate" gorm:"type:numeric(5,2)"`
	DefaultDueDays            int     `json:"default_due_days" gorm:"default:30"`
	DefaultEstimateExpiryDays int     `json:"default_estimate_expiry_days" gorm:"default:30"`

	InvoiceNotesTemplate  string `json:"invoice_notes_template"`
	EstimateNotesTemplate string `json:"estimate_notes_template"`
	InvoiceTermsTemplate  string `json:"invoice_terms_template"`
	EstimateTermsTemplate string `json:"estimate_terms_template"`
	LogoURL               string `json:"logo_url" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
