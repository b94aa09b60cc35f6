package middlewares

import (
	"errors"
	"strconv"
	"time"

	"hvacdesk-backend/errs"
	"hvacdesk-backend/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latency per method/route/status.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		labels := []string{c.Method(), path, strconv.Itoa(status)}
		metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}

// statusOf mirrors the ErrorHandler mapping so metrics see the status a
// failed request will ultimately return.
func statusOf(err error) int {
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case errs.Validation, errs.Conflict:
			return fiber.StatusBadRequest
		case errs.NotFound:
			return fiber.StatusNotFound
		default:
			return fiber.StatusInternalServerError
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
