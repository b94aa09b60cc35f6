package models

import "time"

// PaymentTransaction is a single payment applied against an invoice.
// Append-only: there is no edit or delete path once a payment is recorded.
type PaymentTransaction struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CompanyID string `json:"company_id" gorm:"size:64;not null;index"`

	InvoiceID uint `json:"invoice_id" gorm:"not null;index:idx_payments_invoice_date,priority:1"`
	ContactID uint `json:"contact_id" gorm:"not null;index"`

	TransactionDate time.Time `json:"transaction_date" gorm:"not null;index:idx_payments_invoice_date,priority:2"`
	Amount          float64   `json:"amount" gorm:"type:numeric(12,2);not null"`

	PaymentMethod    PaymentMethod `json:"payment_method" gorm:"size:50;default:other"`
	PaymentReference string        `json:"payment_reference" gorm:"size:255"`
	Notes            string        `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
