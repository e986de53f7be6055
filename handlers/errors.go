package handlers

import (
	"errors"

	"intelliforms_backend/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case apperrors.IsClientError(err):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError translates a service error into the flat {success,error}
// envelope. Internal detail is suppressed outside development.
func respondError(c *fiber.Ctx, err error, prod bool) error {
	status := statusForError(err)
	msg := err.Error()
	if prod && status == fiber.StatusInternalServerError {
		msg = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
