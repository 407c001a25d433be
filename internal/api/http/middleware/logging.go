package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dkulagin/bookmarkd/internal/apierr"
	"github.com/dkulagin/bookmarkd/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()

	l.logger.Info("HTTP request started",
		"method", c.Method(),
		"path", c.Path())

	err := c.Next()

	duration := time.Since(start)

	statusCode := c.Response().StatusCode()
	if err != nil {
		var apiErr *apierr.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &apiErr):
			statusCode = apiErr.HTTPStatus
		case errors.As(err, &fiberErr):
			statusCode = fiberErr.Code
		default:
			statusCode = fiber.StatusInternalServerError
		}
	}

	l.logger.Info("HTTP request completed",
		"method", c.Method(),
		"path", c.Path(),
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)

	if err != nil {
		l.logger.Error("HTTP request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
			"status", statusCode)
	}

	return err
}
