package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hvacdesk-backend/controllers"
	"hvacdesk-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	// Operational endpoints (no auth)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	hvac := api.Group("/hvac")
	hvac.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard runs after auth so keys are scoped per company
	hvac.Use(middlewares.Idempotency())

	// Invoices
	hvac.Get("/invoices", controllers.GetInvoices)
	hvac.Post("/invoices", controllers.CreateInvoice)
	hvac.Put("/invoices", controllers.UpdateInvoice)
	hvac.Delete("/invoices", controllers.VoidInvoice)
	hvac.Get("/invoices/versions", controllers.GetInvoiceVersions)

	// Payments (append-only)
	hvac.Get("/payments", controllers.GetPayments)
	hvac.Post("/payments", controllers.RecordPayment)

	// Estimates
	hvac.Get("/estimates", controllers.GetEstimates)
	hvac.Post("/estimates", controllers.CreateEstimate)
	hvac.Put("/estimates", controllers.UpdateEstimate)
	hvac.Delete("/estimates", controllers.CancelEstimate)

	// Documents
	hvac.Get("/generate-pdf", controllers.GeneratePDF)

	// Settings
	hvac.Get("/invoice-settings", controllers.GetInvoiceSettings)
	hvac.Post("/invoice-settings", controllers.UpdateInvoiceSettings)
	hvac.Put("/invoice-settings", controllers.UpdateInvoiceSettings)

	// Contacts & jobs
	hvac.Get("/contacts", controllers.GetContacts)
	hvac.Post("/contacts", controllers.CreateContact)
	hvac.Get("/jobs", controllers.GetJobs)
	hvac.Post("/jobs", controllers.CreateJob)
}
