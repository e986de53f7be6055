package routes

import (
	"intelliforms_backend/handlers"
	"intelliforms_backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterFormRoutes(app *fiber.App, upload *handlers.UploadHandler, form *handlers.FormHandler, apiKey string) {
	// async flow
	app.Post("/generateUploadUrl", middleware.APIKey(apiKey), upload.GenerateUploadURL)
	app.Post("/notifyFileUploaded", middleware.APIKey(apiKey), upload.NotifyFileUploaded)

	// sync flow
	app.Post("/generarFormularioHttp", form.GenerateForm)

	// utility endpoints
	app.Get("/getTemplates", form.GetTemplates)
	app.Get("/generarFormularioSimulado", form.GetSampleForm)
}
