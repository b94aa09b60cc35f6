package repository

import (
	"errors"

	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"

	"gorm.io/gorm"
)

type JobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) Get(companyID string, id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("company_id = ? AND id = ?", companyID, id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("Job not found or does not belong to this company")
		}
		return nil, errs.Internalf(err, "could not fetch job")
	}
	return &job, nil
}

func (r *JobRepo) List(companyID string, contactID *uint) ([]models.Job, error) {
	q := r.db.Where("company_id = ?", companyID)
	if contactID != nil {
		q = q.Where("contact_id = ?", *contactID)
	}
	jobs := []models.Job{}
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, errs.Internalf(err, "could not list jobs")
	}
	return jobs, nil
}

func (r *JobRepo) Create(job *models.Job) error {
	if job.CompanyID == "" || job.ContactID == 0 || job.Title == "" {
		return errs.Validationf("Company ID, contact ID and title are required")
	}
	var n int64
	if err := r.db.Model(&models.Contact{}).
		Where("company_id = ? AND id = ?", job.CompanyID, job.ContactID).Count(&n).Error; err != nil {
		return errs.Internalf(err, "could not verify contact")
	}
	if n == 0 {
		return errs.Validationf("Contact not found or does not belong to this company")
	}
	if err := r.db.Create(job).Error; err != nil {
		return errs.Internalf(err, "could not create job")
	}
	return nil
}
