package handlers

import (
	"fmt"

	"intelliforms_backend/models"
	"intelliforms_backend/services"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService *services.UploadService
	prod          bool
}

func NewUploadHandler(uploadService *services.UploadService, prod bool) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, prod: prod}
}

func (h *UploadHandler) GenerateUploadURL(c *fiber.Ctx) error {
	var req models.UploadURLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid JSON body: fileName and fileExtension are required",
		})
	}

	grant, err := h.uploadService.IssueUploadURL(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, h.prod)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"signedUrl":      grant.SignedURL,
		"fields":         grant.Fields,
		"fileName":       grant.FileName,
		"mimeType":       grant.MimeType,
		"expirationTime": grant.ExpirationTime,
		"message":        "URL generated; use it to upload your file.",
	})
}

func (h *UploadHandler) NotifyFileUploaded(c *fiber.Ctx) error {
	var req models.NotifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid JSON body: fileName and template are required",
		})
	}

	messageID, err := h.uploadService.Notify(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, h.prod)
	}

	// accepted for processing, not processed
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   fmt.Sprintf("File %s accepted for processing.", req.FileName),
		"messageId": messageID,
	})
}
