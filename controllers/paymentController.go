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

// GetPayments serves single fetch (?id=) and list filtered by invoice/contact.
func GetPayments(c *fiber.Ctx) error {
	companyID := tenantID(c)

	if id, ok := queryUint(c, "id"); ok {
		p, err := payments().Get(companyID, id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "payment": p})
	}

	list, err := payments().List(companyID, repository.PaymentFilter{
		InvoiceID: queryUintPtr(c, "invoice_id"),
		ContactID: queryUintPtr(c, "contact_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "payments": list})
}

type recordPaymentRequest struct {
	InvoiceID        uint                 `json:"invoice_id" validate:"required"`
	ContactID        uint                 `json:"contact_id" validate:"required"`
	TransactionDate  string               `json:"transaction_date" validate:"required"`
	Amount           float64              `json:"amount" validate:"required,gt=0"`
	PaymentMethod    models.PaymentMethod `json:"payment_method"`
	PaymentReference string               `json:"payment_reference"`
	Notes            string               `json:"notes"`
}

// RecordPayment appends a payment and returns the resulting reconciliation.
// The invoice status is left untouched; the suggested status in the response
// tells the caller what transition the arithmetic supports.
func RecordPayment(c *fiber.Ctx) error {
	var req recordPaymentRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizeDTO(&req)

	txDate, err := parseDate(req.TransactionDate)
	if err != nil {
		return errs.Validationf("Invalid transaction_date")
	}

	payment, rec, err := payments().Record(repository.RecordPayment{
		CompanyID:       tenantID(c),
		InvoiceID:       req.InvoiceID,
		ContactID:       req.ContactID,
		TransactionDate: txDate,
		Amount:          req.Amount,
		Method:          req.PaymentMethod,
		Reference:       req.PaymentReference,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedCounter.Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":        true,
		"message":        "Payment recorded successfully",
		"payment":        payment,
		"reconciliation": rec,
	})
}
