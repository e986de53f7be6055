package bootstrap

import (
	"intelliforms_backend/config"
	"intelliforms_backend/handlers"
)

type Handlers struct {
	UploadHandler *handlers.UploadHandler
	FormHandler   *handlers.FormHandler
}

func NewHandlers(cfg *config.Config, services *Services) *Handlers {
	prod := cfg.AppEnv == "prod"
	res := &Handlers{}
	res.UploadHandler = handlers.NewUploadHandler(services.UploadService, prod)
	res.FormHandler = handlers.NewFormHandler(services.PipelineService, services.TemplateService, cfg.MaxFileSize, prod)
	return res
}
