package controllers

import (
	"fmt"
	"strings"

	"hvacdesk-backend/database"
	"hvacdesk-backend/errs"
	"hvacdesk-backend/metrics"
	"hvacdesk-backend/models"
	"hvacdesk-backend/pdf"

	"github.com/gofiber/fiber/v2"
)

// GeneratePDF renders an invoice or estimate document and streams it back as
// an attachment. Rendering is deterministic: the same record produces the
// same bytes.
func GeneratePDF(c *fiber.Ctx) error {
	companyID := tenantID(c)

	docType := strings.ToLower(c.Query("type", "invoice"))
	id, ok := queryUint(c, "id")
	if !ok {
		return errs.Validationf("Document ID is required")
	}

	var company models.Company
	if err := database.DB.First(&company, "id = ?", companyID).Error; err != nil {
		return errs.NotFoundf("Company not found")
	}

	var (
		blob     []byte
		filename string
		err      error
	)
	switch docType {
	case "invoice":
		inv, gerr := invoices().Get(companyID, id, true, true)
		if gerr != nil {
			return gerr
		}
		contact, gerr := contacts().Get(companyID, inv.ContactID)
		if gerr != nil {
			return gerr
		}
		blob, err = pdf.Invoice(inv, contact, &company, inv.Payments)
		filename = fmt.Sprintf("Invoice_%s.pdf", inv.InvoiceNumber)
	case "estimate":
		est, gerr := estimates().Get(companyID, id, true)
		if gerr != nil {
			return gerr
		}
		contact, gerr := contacts().Get(companyID, est.ContactID)
		if gerr != nil {
			return gerr
		}
		blob, err = pdf.Estimate(est, contact, &company)
		filename = fmt.Sprintf("Estimate_%s.pdf", est.EstimateNumber)
	default:
		return errs.Validationf("Unknown document type %q", docType)
	}
	if err != nil {
		return errs.Internalf(err, "could not render document")
	}

	metrics.PDFGeneratedCounter.WithLabelValues(docType).Inc()
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(blob)
}
