package handlers

import (
	"io"

	"intelliforms_backend/services"

	"github.com/gofiber/fiber/v2"
)

type FormHandler struct {
	pipelineService *services.PipelineService
	templateService *services.TemplateService
	maxFileSize     int64
	prod            bool
}

func NewFormHandler(pipelineService *services.PipelineService, templateService *services.TemplateService, maxFileSize int64, prod bool) *FormHandler {
	return &FormHandler{
		pipelineService: pipelineService,
		templateService: templateService,
		maxFileSize:     maxFileSize,
		prod:            prod,
	}
}

// GenerateForm is the synchronous flow: multipart file in, form out.
func (h *FormHandler) GenerateForm(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "no file received",
		})
	}
	template := c.FormValue("plantilla")
	if template == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "no template specified",
		})
	}
	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "file exceeds the maximum allowed size",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err, h.prod)
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return respondError(c, err, h.prod)
	}

	form, err := h.pipelineService.GenerateFromBuffer(c.UserContext(), fileHeader.Filename, data, template)
	if err != nil {
		return respondError(c, err, h.prod)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"formulario": form,
	})
}

func (h *FormHandler) GetTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"templates": h.templateService.ListTemplates(),
	})
}

// GetSampleForm returns a canned form for frontend development.
func (h *FormHandler) GetSampleForm(c *fiber.Ctx) error {
	return c.JSON(h.templateService.SampleForm())
}
