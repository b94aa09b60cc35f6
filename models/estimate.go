package models

import "time"

// Estimate is a pre-invoice quote sharing the line-item and totals shape of
// Invoice. Converting it creates an Invoice referencing it and flips the
// estimate to "converted" inside the same transaction.
type Estimate struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CompanyID string `json:"company_id" gorm:"size:64;not null;index;uniqueIndex:idx_estimates_company_number,priority:1"`

	ContactID uint  `json:"contact_id" gorm:"not null;index"`
	JobID     *uint `json:"job_id"`

	EstimateNumber string `json:"estimate_number" gorm:"size:100;not null;uniqueIndex:idx_estimates_company_number,priority:2"`

	Items []EstimateItem `json:"items,omitempty" gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`

	SubtotalAmount float64 `json:"subtotal_amount" gorm:"type:numeric(12,2)"`
	TaxAmount      float64 `json:"tax_amount" gorm:"type:numeric(12,2)"`
	DiscountAmount float64 `json:"discount_amount" gorm:"type:numeric(12,2)"`
	TotalAmount    float64 `json:"total_amount" gorm:"type:numeric(12,2)"`

	DateIssued  time.Time  `json:"date_issued" gorm:"not null"`
	DateExpires *time.Time `json:"date_expires"`

	Status EstimateStatus `json:"status" gorm:"size:50;default:draft;index"`

	Notes string `json:"notes"`
	Terms string `json:"terms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EstimateItem struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	EstimateID uint `json:"estimate_id" gorm:"not null;index"`

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
