package models

import (
	"time"

	"gorm.io/datatypes"
)

// Invoice is the live state of a billable document owed by a Contact,
// optionally tied to a Job and/or the Estimate it was converted from.
// Rows are never deleted; "delete" is a status transition to void.
type Invoice struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CompanyID string `json:"company_id" gorm:"size:64;not null;index;uniqueIndex:idx_invoices_company_number,priority:1"`

	ContactID  uint  `json:"contact_id" gorm:"not null;index"`
	JobID      *uint `json:"job_id" gorm:"index"`
	EstimateID *uint `json:"estimate_id"`

	// Unique per company, not globally.
	InvoiceNumber string `json:"invoice_number" gorm:"size:100;not null;uniqueIndex:idx_invoices_company_number,priority:2"`

	Items []InvoiceItem `json:"items,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	SubtotalAmount float64 `json:"subtotal_amount" gorm:"type:numeric(12,2)"`
	TaxAmount      float64 `json:"tax_amount" gorm:"type:numeric(12,2)"`
	DiscountAmount float64 `json:"discount_amount" gorm:"type:numeric(12,2)"`
	TotalAmount    float64 `json:"total_amount" gorm:"type:numeric(12,2)"`

	DateIssued time.Time  `json:"date_issued" gorm:"not null"`
	DueDate    *time.Time `json:"due_date"`
	DatePaid   *time.Time `json:"date_paid"`

	Status InvoiceStatus `json:"status" gorm:"size:50;default:draft;index"`

	Notes               string `json:"notes"`
	Terms               string `json:"terms"`
	PaymentInstructions string `json:"payment_instructions"`

	Payments []PaymentTransaction `json:"payments,omitempty" gorm:"foreignKey:InvoiceID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvoiceItem is one billable line. Items are replaced wholesale whenever an
// invoice update carries a new item list; per-item history lives in
// InvoiceVersion snapshots.
type InvoiceItem struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	InvoiceID uint `json:"invoice_id" gorm:"not null;index"`

	Description string   `json:"description" gorm:"not null"`
	Quantity    float64  `json:"quantity" gorm:"type:numeric(10,2);default:1"`
	UnitPrice   float64  `json:"unit_price" gorm:"type:numeric(12,2)"`
	Amount      float64  `json:"amount" gorm:"type:numeric(12,2)"`
	ItemType    ItemType `json:"item_type" gorm:"size:50;default:service"`

	TaxRate            float64 `json:"tax_rate" gorm:"type:numeric(5,2)"`
	TaxAmount          float64 `json:"tax_amount" gorm:"type:numeric(12,2)"`
	DiscountPercentage float64 `json:"discount_percentage" gorm:"type:numeric(5,2)"`
	DiscountAmount     float64 `json:"discount_amount" gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvoiceVersion is an immutable snapshot of an invoice (row + items) taken
// before each successful update.
type InvoiceVersion struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CompanyID string         `json:"company_id" gorm:"size:64;not null;index"`
	InvoiceID uint           `json:"invoice_id" gorm:"index:idx_invoice_versions_invoice_version,unique,priority:1"`
	VersionNo int            `json:"version_no" gorm:"not null;index:idx_invoice_versions_invoice_version,unique,priority:2"`
	Snapshot  datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
}
