package models

import "time"

// Contact is a customer of one HVAC company.
type Contact struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CompanyID string `json:"company_id" gorm:"size:64;not null;index"`

	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
