package controllers

import (
	"hvacdesk-backend/middlewares"
	"hvacdesk-backend/repository"
	"hvacdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// GetInvoiceSettings returns the company defaults, creating them on first read.
func GetInvoiceSettings(c *fiber.Ctx) error {
	s, err := settings().GetOrCreate(tenantID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "settings": s})
}

type updateSettingsRequest struct {
	NextInvoiceNumber         *int     `json:"next_invoice_number" validate:"omitempty,gt=0"`
	NextEstimateNumber        *int     `json:"next_estimate_number" validate:"omitempty,gt=0"`
	DefaultTaxRate            *float64 `json:"default_tax_rate" validate:"omitempty,gte=0"`
	DefaultDueDays            *int     `json:"default_due_days" validate:"omitempty,gte=0"`
	DefaultEstimateExpiryDays *int     `json:"default_estimate_expiry_days" validate:"omitempty,gte=0"`
	InvoiceNotesTemplate      *string  `json:"invoice_notes_template"`
	EstimateNotesTemplate     *string  `json:"estimate_notes_template"`
	InvoiceTermsTemplate      *string  `json:"invoice_terms_template"`
	EstimateTermsTemplate     *string  `json:"estimate_terms_template"`
	LogoURL                   *string  `json:"logo_url"`
}

func UpdateInvoiceSettings(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&req)

	s, err := settings().Update(repository.UpdateSettings{
		CompanyID:                 tenantID(c),
		NextInvoiceNumber:         req.NextInvoiceNumber,
		NextEstimateNumber:        req.NextEstimateNumber,
		DefaultTaxRate:            req.DefaultTaxRate,
		DefaultDueDays:            req.DefaultDueDays,
		DefaultEstimateExpiryDays: req.DefaultEstimateExpiryDays,
		InvoiceNotesTemplate:      req.InvoiceNotesTemplate,
		EstimateNotesTemplate:     req.EstimateNotesTemplate,
		InvoiceTermsTemplate:      req.InvoiceTermsTemplate,
		EstimateTermsTemplate:     req.EstimateTermsTemplate,
		LogoURL:                   req.LogoURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Settings updated successfully",
		"settings": s,
	})
}
