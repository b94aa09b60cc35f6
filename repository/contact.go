package repository

import (
	"errors"

	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"

	"gorm.io/gorm"
)

// ContactRepo is the collaborator lookup the invoice core validates against.
type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Get(companyID string, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.Where("company_id = ? AND id = ?", companyID, id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("Contact not found or does not belong to this company")
		}
		return nil, errs.Internalf(err, "could not fetch contact")
	}
	return &contact, nil
}

func (r *ContactRepo) List(companyID string) ([]models.Contact, error) {
	contacts := []models.Contact{}
	if err := r.db.Where("company_id = ?", companyID).Order("name ASC").Find(&contacts).Error; err != nil {
		return nil, errs.Internalf(err, "could not list contacts")
	}
	return contacts, nil
}

func (r *ContactRepo) Create(contact *models.Contact) error {
	if contact.CompanyID == "" || contact.Name == "" {
		return errs.Validationf("Company ID and name are required")
	}
	if err := r.db.Create(contact).Error; err != nil {
		return errs.Internalf(err, "could not create contact")
	}
	return nil
}
