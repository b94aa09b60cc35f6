package repository

import (
	"testing"

	"hvacdesk-backend/errs"
	"hvacdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEstimateRequiresFields(t *testing.T) {
	db := testDB(t)
	repo := NewEstimateRepo(db)

	_, err := repo.Create(CreateEstimate{})
	assert.True(t, errs.IsKind(err, errs.Validation))
}

func TestEstimateTerminalGuard(t *testing.T) {
	db := testDB(t)
	repo := NewEstimateRepo(db)
	company := seedCompany(t, db, "Acme HVAC")
	contact := seedContact(t, db, company.ID, "Jane Doe")

	est, err := repo.Create(CreateEstimate{
		CompanyID: company.ID, ContactID: contact.ID,
		EstimateNumber: "EST-1", TotalAmount: 250, DateIssued: issued(),
		Status: models.EstimateConverted,
	})
	require.NoError(t, err)

	_, err = repo.Update(UpdateEstimate{ID: est.ID, CompanyID: company.ID, TotalAmount: ptr(300.0)})
	assert.True(t, errs.IsKind(err, errs.Conflict))

	_, err = repo.Cancel(company.ID, est.ID, "")
	assert.True(t, errs.IsKind(err, errs.Conflict))
}

func TestEstimateUpdateAndCancel(t *testing.T) {
	db := testDB(t)
	repo := NewEstimateRepo(db)
	company := seedCompany(t, db, "Acme HVAC")
	contact := seedContact(t, db, company.ID, "Jane Doe")

	est, err := repo.Create(CreateEstimate{
		CompanyID: company.ID, ContactID: contact.ID,
		EstimateNumber: "EST-1", TotalAmount: 250, DateIssued: issued(),
		Notes: "spring tune-up",
		Items: []ItemInput{{Description: "Inspection", Amount: 250}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EstimateDraft, est.Status)
	assert.Len(t, est.Items, 1)

	updated, err := repo.Update(UpdateEstimate{
		ID: est.ID, CompanyID: company.ID,
		Status: ptr(models.EstimateApproved),
		Items:  &[]ItemInput{{Description: "Inspection", Amount: 200}, {Description: "Filter", Amount: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EstimateApproved, updated.Status)
	assert.Len(t, updated.Items, 2)
	assert.Equal(t, "spring tune-up", updated.Notes)

	cancelled, err := repo.Cancel(company.ID, est.ID, "customer declined")
	require.NoError(t, err)
	assert.Equal(t, models.EstimateCancelled, cancelled.Status)
	assert.Contains(t, cancelled.Notes, "spring tune-up")
	assert.Contains(t, cancelled.Notes, "Estimate cancelled on")
	assert.Contains(t, cancelled.Notes, "Reason: customer declined")
}

func TestEstimateTenantIsolation(t *testing.T) {
	db := testDB(t)
	repo := NewEstimateRepo(db)
	companyA := seedCompany(t, db, "Acme HVAC")
	companyB := seedCompany(t, db, "Borealis Air")
	contact := seedContact(t, db, companyA.ID, "Jane Doe")

	est, err := repo.Create(CreateEstimate{
		CompanyID: companyA.ID, ContactID: contact.ID,
		EstimateNumber: "EST-1", TotalAmount: 250, DateIssued: issued(),
	})
	require.NoError(t, err)

	_, err = repo.Get(companyB.ID, est.ID, false)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}
