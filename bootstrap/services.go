package bootstrap

import (
	"intelliforms_backend/config"
	"intelliforms_backend/services"
	"intelliforms_backend/utils"
)

type Services struct {
	UploadService   *services.UploadService
	ExtractService  *services.ExtractService
	FormService     *services.FormService
	PipelineService *services.PipelineService
	TemplateService *services.TemplateService
}

func NewServices(cfg *config.Config, infra *Infrastructure) *Services {
	res := &Services{}

	uploadService := services.NewUploadService(cfg, infra.Storage, infra.Queue)
	res.UploadService = uploadService

	extractService := services.NewExtractService(infra.Storage, services.NewExecRunner(), cfg.TesseractPath, cfg.TesseractLang)
	res.ExtractService = extractService

	// form service (inject the Gemini client)
	gemini := utils.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	formService := services.NewFormService(gemini)
	res.FormService = formService

	pipelineService := services.NewPipelineService(extractService, formService, cfg.MaxPromptChars)
	res.PipelineService = pipelineService

	res.TemplateService = services.NewTemplateService()
	return res
}
