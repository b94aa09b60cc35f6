package models

import "time"

// Job is a unit of field work an invoice may bill against.
type Job struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CompanyID string `json:"company_id" gorm:"size:64;not null;index"`
	ContactID uint   `json:"contact_id" gorm:"not null;index"`

	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"size:50;default:scheduled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
