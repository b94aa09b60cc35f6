package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is one HVAC business (a tenant). Every core entity carries its ID
// as the partition key.
type Company struct {
	ID         string `json:"id" gorm:"primaryKey;size:64"`
	Name       string `json:"name" gorm:"not null;unique"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	LogoURL    string `json:"logo_url" gorm:"size:255"`
}

func (company *Company) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	company.ID = uuid.NewString()
	return
}
