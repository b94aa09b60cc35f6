package controllers

import (
	"hvacdesk-backend/middlewares"
	"hvacdesk-backend/models"

	"github.com/gofiber/fiber/v2"
)

func GetContacts(c *fiber.Ctx) error {
	companyID := tenantID(c)

	if id, ok := queryUint(c, "id"); ok {
		contact, err := contacts().Get(companyID, id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "contact": contact})
	}

	list, err := contacts().List(companyID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "contacts": list})
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

func CreateContact(c *fiber.Ctx) error {
	var req createContactRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	contact := models.Contact{
		CompanyID: tenantID(c),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
	}
	if err := contacts().Create(&contact); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contact created successfully",
		"contact": contact,
	})
}
