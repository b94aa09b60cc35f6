package middlewares

import (
	"errors"

	"hvacdesk-backend/errs"
	"hvacdesk-backend/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler centralizes error responses in the API envelope and keeps
// internal details out of client-facing messages.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1) Typed application errors
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case errs.Validation, errs.Conflict:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": appErr.Message,
			})
		case errs.NotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": appErr.Message,
			})
		default:
			logger.Get().Error("internal error",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "internal server error",
			})
		}
	}

	// 2) Validation errors from BindAndValidate (400 + per-field info)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make(map[string]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"errors":  out,
		})
	}

	// 3) Fiber errors (use their status code + message)
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}

	// 4) Unknown errors (500)
	logger.Get().Error("unhandled error",
		zap.String("path", c.Path()),
		zap.String("method", c.Method()),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "internal server error",
	})
}
