package controllers

import (
	"strconv"
	"time"

	"hvacdesk-backend/database"
	"hvacdesk-backend/repository"

	"github.com/gofiber/fiber/v2"
)

// tenantID returns the authenticated company for this request. Clients never
// choose their tenant; it always comes from the token.
func tenantID(c *fiber.Ctx) string {
	companyID, _ := c.Locals("companyID").(string)
	return companyID
}

func invoices() *repository.InvoiceRepo   { return repository.NewInvoiceRepo(database.DB) }
func payments() *repository.PaymentRepo   { return repository.NewPaymentRepo(database.DB) }
func estimates() *repository.EstimateRepo { return repository.NewEstimateRepo(database.DB) }
func contacts() *repository.ContactRepo   { return repository.NewContactRepo(database.DB) }
func jobs() *repository.JobRepo           { return repository.NewJobRepo(database.DB) }
func settings() *repository.SettingsRepo  { return repository.NewSettingsRepo(database.DB) }

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func queryUint(c *fiber.Ctx, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func queryUintPtr(c *fiber.Ctx, name string) *uint {
	if n, ok := queryUint(c, name); ok {
		return &n
	}
	return nil
}

func queryBool(c *fiber.Ctx, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}

func queryDatePtr(c *fiber.Ctx, name string) (*time.Time, error) {
	return parseDatePtr(c.Query(name))
}
