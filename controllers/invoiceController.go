package controllers

import (
	"hvacdesk-backend/errs"
	"hvacdesk-backend/metrics"
	"hvacdesk-backend/middlewares"
	"hvacdesk-backend/models"
	"hvacdesk-backend/repository"
	"hvacdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// GetInvoices serves both the single fetch (?id=) and the filtered list.
func GetInvoices(c *fiber.Ctx) error {
	companyID := tenantID(c)

	if id, ok := queryUint(c, "id"); ok {
		inv, err := invoices().Get(companyID, id,
			queryBool(c, "include_items"), queryBool(c, "include_payments"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "invoice": inv})
	}

	fromDate, err := queryDatePtr(c, "from_date")
	if err != nil {
		return errs.Validationf("Invalid from_date")
	}
	toDate, err := queryDatePtr(c, "to_date")
	if err != nil {
		return errs.Validationf("Invalid to_date")
	}

	list, err := invoices().List(companyID, repository.InvoiceFilter{
		ContactID:       queryUintPtr(c, "contact_id"),
		JobID:           queryUintPtr(c, "job_id"),
		Status:          models.InvoiceStatus(c.Query("status")),
		FromDate:        fromDate,
		ToDate:          toDate,
		IncludeItems:    queryBool(c, "include_items"),
		IncludePayments: queryBool(c, "include_payments"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "invoices": list})
}

type createInvoiceRequest struct {
	ContactID           uint                       `json:"contact_id" validate:"required"`
	JobID               *uint                      `json:"job_id"`
	EstimateID          *uint                      `json:"estimate_id"`
	InvoiceNumber       string                     `json:"invoice_number" validate:"required"`
	SubtotalAmount      float64                    `json:"subtotal_amount"`
	TaxAmount           float64                    `json:"tax_amount"`
	DiscountAmount      float64                    `json:"discount_amount"`
	TotalAmount         float64                    `json:"total_amount" validate:"required"`
	DateIssued          string                     `json:"date_issued" validate:"required"`
	DueDate             string                     `json:"due_date"`
	Status              models.InvoiceStatus       `json:"status"`
	Notes               string                     `json:"notes"`
	Terms               string                     `json:"terms"`
	PaymentInstructions string                     `json:"payment_instructions"`
	Items               []repository.ItemInput     `json:"items" validate:"dive"`
}

func CreateInvoice(c *fiber.Ctx) error {
	var req createInvoiceRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizeDTO(&req)

	dateIssued, err := parseDate(req.DateIssued)
	if err != nil {
		return errs.Validationf("Invalid date_issued")
	}
	dueDate, err := parseDatePtr(req.DueDate)
	if err != nil {
		return errs.Validationf("Invalid due_date")
	}

	inv, err := invoices().Create(repository.CreateInvoice{
		CompanyID:           tenantID(c),
		ContactID:           req.ContactID,
		JobID:               req.JobID,
		EstimateID:          req.EstimateID,
		InvoiceNumber:       req.InvoiceNumber,
		SubtotalAmount:      req.SubtotalAmount,
		TaxAmount:           req.TaxAmount,
		DiscountAmount:      req.DiscountAmount,
		TotalAmount:         req.TotalAmount,
		DateIssued:          dateIssued,
		DueDate:             dueDate,
		Status:              req.Status,
		Notes:               req.Notes,
		Terms:               req.Terms,
		PaymentInstructions: req.PaymentInstructions,
		Items:               req.Items,
	})
	if err != nil {
		metrics.InvoiceOperationsCounter.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.InvoiceOperationsCounter.WithLabelValues("create", "ok").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Invoice created successfully",
		"invoice": inv,
	})
}

type updateInvoiceRequest struct {
	ID                  uint                       `json:"id" validate:"required"`
	ContactID           *uint                      `json:"contact_id"`
	JobID               *uint                      `json:"job_id"`
	EstimateID          *uint                      `json:"estimate_id"`
	InvoiceNumber       *string                    `json:"invoice_number"`
	SubtotalAmount      *float64                   `json:"subtotal_amount"`
	TaxAmount           *float64                   `json:"tax_amount"`
	DiscountAmount      *float64                   `json:"discount_amount"`
	TotalAmount         *float64                   `json:"total_amount"`
	DateIssued          *string                    `json:"date_issued"`
	DueDate             *string                    `json:"due_date"`
	DatePaid            *string                    `json:"date_paid"`
	Status              *models.InvoiceStatus      `json:"status"`
	Notes               *string                    `json:"notes"`
	Terms               *string                    `json:"terms"`
	PaymentInstructions *string                    `json:"payment_instructions"`
	Items               *[]repository.ItemInput    `json:"items"`
}

func UpdateInvoice(c *fiber.Ctx) error {
	var req updateInvoiceRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&req)

	upd := repository.UpdateInvoice{
		ID:                  req.ID,
		CompanyID:           tenantID(c),
		ContactID:           req.ContactID,
		JobID:               req.JobID,
		EstimateID:          req.EstimateID,
		InvoiceNumber:       req.InvoiceNumber,
		SubtotalAmount:      req.SubtotalAmount,
		TaxAmount:           req.TaxAmount,
		DiscountAmount:      req.DiscountAmount,
		TotalAmount:         req.TotalAmount,
		Status:              req.Status,
		Notes:               req.Notes,
		Terms:               req.Terms,
		PaymentInstructions: req.PaymentInstructions,
		Items:               req.Items,
	}

	if req.DateIssued != nil {
		t, err := parseDate(*req.DateIssued)
		if err != nil {
			return errs.Validationf("Invalid date_issued")
		}
		upd.DateIssued = &t
	}
	if req.DueDate != nil {
		t, err := parseDate(*req.DueDate)
		if err != nil {
			return errs.Validationf("Invalid due_date")
		}
		upd.DueDate = &t
	}
	if req.DatePaid != nil {
		t, err := parseDate(*req.DatePaid)
		if err != nil {
			return errs.Validationf("Invalid date_paid")
		}
		upd.DatePaid = &t
	}

	inv, err := invoices().Update(upd)
	if err != nil {
		metrics.InvoiceOperationsCounter.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.InvoiceOperationsCounter.WithLabelValues("update", "ok").Inc()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice updated successfully",
		"invoice": inv,
	})
}

type voidInvoiceRequest struct {
	ID         uint   `json:"id" validate:"required"`
	VoidReason string `json:"void_reason"`
}

// VoidInvoice handles DELETE: invoices are never removed, only voided.
func VoidInvoice(c *fiber.Ctx) error {
	var req voidInvoiceRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	inv, err := invoices().Void(tenantID(c), req.ID, req.VoidReason)
	if err != nil {
		metrics.InvoiceOperationsCounter.WithLabelValues("void", "error").Inc()
		return err
	}

	metrics.InvoiceOperationsCounter.WithLabelValues("void", "ok").Inc()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice voided successfully",
		"invoice": inv,
	})
}

// GetInvoiceVersions lists the stored snapshots for one invoice.
func GetInvoiceVersions(c *fiber.Ctx) error {
	id, ok := queryUint(c, "id")
	if !ok {
		return errs.Validationf("Invoice ID is required")
	}
	versions, err := invoices().Versions(tenantID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "versions": versions})
}
