package server

import (
	"errors"
	"fmt"

	"devbits/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// paramUUID parses a UUID route parameter.
func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, models.NewValidationError(fmt.Sprintf("Invalid %s", name))
	}
	return id, nil
}

// currentUserID returns the authenticated user's ID stored by AuthRequired.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	return c.Locals("userID").(uuid.UUID)
}

// respondError maps application error codes onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeAlreadyDeleted:
		status = fiber.StatusConflict
	case models.CodeValidation:
		status = fiber.StatusBadRequest
	case models.CodeUnauthorized:
		status = fiber.StatusUnauthorized
	}
	return models.RespondWithError(c, status, appErr)
}
