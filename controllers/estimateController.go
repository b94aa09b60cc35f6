package controllers

import (
	"hvacdesk-backend/errs"
	"hvacdesk-backend/middlewares"
	"hvacdesk-backend/models"
	"hvacdesk-backend/repository"
	"hvacdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func GetEstimates(c *fiber.Ctx) error {
	companyID := tenantID(c)

	if id, ok := queryUint(c, "id"); ok {
		est, err := estimates().Get(companyID, id, queryBool(c, "include_items"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "estimate": est})
	}

	fromDate, err := queryDatePtr(c, "from_date")
	if err != nil {
		return errs.Validationf("Invalid from_date")
	}
	toDate, err := queryDatePtr(c, "to_date")
	if err != nil {
		return errs.Validationf("Invalid to_date")
	}

	list, err := estimates().List(companyID, repository.EstimateFilter{
		ContactID:    queryUintPtr(c, "contact_id"),
		Status:       models.EstimateStatus(c.Query("status")),
		FromDate:     fromDate,
		ToDate:       toDate,
		IncludeItems: queryBool(c, "include_items"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "estimates": list})
}

type createEstimateRequest struct {
	ContactID      uint                   `json:"contact_id" validate:"required"`
	JobID          *uint                  `json:"job_id"`
	EstimateNumber string                 `json:"estimate_number" validate:"required"`
	SubtotalAmount float64                `json:"subtotal_amount"`
	TaxAmount      float64                `json:"tax_amount"`
	DiscountAmount float64                `json:"discount_amount"`
	TotalAmount    float64                `json:"total_amount" validate:"required"`
	DateIssued     string                 `json:"date_issued" validate:"required"`
	DateExpires    string                 `json:"date_expires"`
	Status         models.EstimateStatus  `json:"status"`
	Notes          string                 `json:"notes"`
	Terms          string                 `json:"terms"`
	Items          []repository.ItemInput `json:"items" validate:"dive"`
}

func CreateEstimate(c *fiber.Ctx) error {
	var req createEstimateRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizeDTO(&req)

	dateIssued, err := parseDate(req.DateIssued)
	if err != nil {
		return errs.Validationf("Invalid date_issued")
	}
	dateExpires, err := parseDatePtr(req.DateExpires)
	if err != nil {
		return errs.Validationf("Invalid date_expires")
	}

	est, err := estimates().Create(repository.CreateEstimate{
		CompanyID:      tenantID(c),
		ContactID:      req.ContactID,
		JobID:          req.JobID,
		EstimateNumber: req.EstimateNumber,
		SubtotalAmount: req.SubtotalAmount,
		TaxAmount:      req.TaxAmount,
		DiscountAmount: req.DiscountAmount,
		TotalAmount:    req.TotalAmount,
		DateIssued:     dateIssued,
		DateExpires:    dateExpires,
		Status:         req.Status,
		Notes:          req.Notes,
		Terms:          req.Terms,
		Items:          req.Items,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Estimate created successfully",
		"estimate": est,
	})
}

type updateEstimateRequest struct {
	ID             uint                    `json:"id" validate:"required"`
	ContactID      *uint                   `json:"contact_id"`
	JobID          *uint                   `json:"job_id"`
	EstimateNumber *string                 `json:"estimate_number"`
	SubtotalAmount *float64                `json:"subtotal_amount"`
	TaxAmount      *float64                `json:"tax_amount"`
	DiscountAmount *float64                `json:"discount_amount"`
	TotalAmount    *float64                `json:"total_amount"`
	DateIssued     *string                 `json:"date_issued"`
	DateExpires    *string                 `json:"date_expires"`
	Status         *models.EstimateStatus  `json:"status"`
	Notes          *string                 `json:"notes"`
	Terms          *string                 `json:"terms"`
	Items          *[]repository.ItemInput `json:"items"`
}

func UpdateEstimate(c *fiber.Ctx) error {
	var req updateEstimateRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&req)

	upd := repository.UpdateEstimate{
		ID:             req.ID,
		CompanyID:      tenantID(c),
		ContactID:      req.ContactID,
		JobID:          req.JobID,
		EstimateNumber: req.EstimateNumber,
		SubtotalAmount: req.SubtotalAmount,
		TaxAmount:      req.TaxAmount,
		DiscountAmount: req.DiscountAmount,
		TotalAmount:    req.TotalAmount,
		Status:         req.Status,
		Notes:          req.Notes,
		Terms:          req.Terms,
		Items:          req.Items,
	}

	if req.DateIssued != nil {
		t, err := parseDate(*req.DateIssued)
		if err != nil {
			return errs.Validationf("Invalid date_issued")
		}
		upd.DateIssued = &t
	}
	if req.DateExpires != nil {
		t, err := parseDate(*req.DateExpires)
		if err != nil {
			return errs.Validationf("Invalid date_expires")
		}
		upd.DateExpires = &t
	}

	est, err := estimates().Update(upd)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Estimate updated successfully",
		"estimate": est,
	})
}

type cancelEstimateRequest struct {
	ID           uint   `json:"id" validate:"required"`
	CancelReason string `json:"cancel_reason"`
}

// CancelEstimate handles DELETE; estimates are cancelled, never removed.
func CancelEstimate(c *fiber.Ctx) error {
	var req cancelEstimateRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	est, err := estimates().Cancel(tenantID(c), req.ID, req.CancelReason)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Estimate cancelled successfully",
		"estimate": est,
	})
}
