package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dkulagin/bookmarkd/internal/apierr"
	"github.com/dkulagin/bookmarkd/internal/logger"
	"github.com/dkulagin/bookmarkd/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NewErrorHandler returns the app-wide fiber error handler. It is the single
// place where service errors become transport statuses; no error kind is
// silently swallowed, and nothing secret ends up in a response body.
func NewErrorHandler(logger *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			return c.Status(apiErr.HTTPStatus).JSON(errorResponse{
				Error: apiErr.Message,
				Code:  string(apiErr.Code),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorResponse{Error: fiberErr.Message})
		}

		if errors.Is(err, model.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "not found"})
		}

		logger.Error("HTTP handler: unexpected error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error())

		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal server error"})
	}
}
