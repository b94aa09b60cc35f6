package controllers

import (
	"hvacdesk-backend/middlewares"
	"hvacdesk-backend/models"

	"github.com/gofiber/fiber/v2"
)

func GetJobs(c *fiber.Ctx) error {
	companyID := tenantID(c)

	if id, ok := queryUint(c, "id"); ok {
		job, err := jobs().Get(companyID, id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "job": job})
	}

	list, err := jobs().List(companyID, queryUintPtr(c, "contact_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "jobs": list})
}

type createJobRequest struct {
	ContactID   uint   `json:"contact_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func CreateJob(c *fiber.Ctx) error {
	var req createJobRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	job := models.Job{
		CompanyID:   tenantID(c),
		ContactID:   req.ContactID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := jobs().Create(&job); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Job created successfully",
		"job":     job,
	})
}
